package synonomous

import (
	"fmt"
	"sort"
	"sync"
)

// Name identifies a decorator instance for events, metrics, and traces.
type Name = string

// Transformer rewrites a label into an alternate string form (a "synonym").
// Transformers must be pure: no state, no side effects, and safe to call
// repeatedly with the same input.
type Transformer func(string) string

// UnknownTransformerError is returned when a synonym computation references
// a transformer name that has not been registered. The failure aborts the
// whole computation; no partial synonym list is produced.
type UnknownTransformerError struct {
	Name string
}

func (e *UnknownTransformerError) Error() string {
	return fmt.Sprintf("unknown transformer %q", e.Name)
}

// Registry maps transformer names to Transformer functions. It is safe for
// concurrent use. NewRegistry returns a registry pre-populated with the four
// built-in transformers; callers extend it with Register or derive a private
// copy with Clone.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]Transformer
}

// NewRegistry creates a registry carrying the built-in transformers
// (verbatim, toCamelCase, toAllCaps, toTitle).
func NewRegistry() *Registry {
	return &Registry{
		transformers: map[string]Transformer{
			TransformVerbatim:  Verbatim,
			TransformCamelCase: ToCamelCase,
			TransformAllCaps:   ToAllCaps,
			TransformTitle:     ToTitle,
		},
	}
}

// Register adds or replaces a named transformer.
func (r *Registry) Register(name string, fn Transformer) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transformers[name] = fn
	return r
}

// Resolve returns the transformer registered under name, or an
// *UnknownTransformerError naming the missing key.
func (r *Registry) Resolve(name string) (Transformer, error) {
	r.mu.RLock()
	fn, ok := r.transformers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownTransformerError{Name: name}
	}
	return fn, nil
}

// Names returns the registered transformer names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transformers))
	for name := range r.transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry. Registering on the
// clone does not affect the original, so a Decorator can carry private
// transformers without mutating the shared default set.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	transformers := make(map[string]Transformer, len(r.transformers))
	for name, fn := range r.transformers {
		transformers[name] = fn
	}
	return &Registry{transformers: transformers}
}

// defaultRegistry is the process-wide transformer set shared by decorators
// that are not given a private registry via WithRegistry.
var defaultRegistry = NewRegistry()

// Register adds or replaces a named transformer in the shared default
// registry used by all decorators without a private registry.
func Register(name string, fn Transformer) {
	defaultRegistry.Register(name, fn)
}

// Resolve looks up a transformer in the shared default registry.
func Resolve(name string) (Transformer, error) {
	return defaultRegistry.Resolve(name)
}

// Default returns the shared default registry.
func Default() *Registry {
	return defaultRegistry
}
