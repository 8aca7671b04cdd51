package synonomous

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Decorator observability.
const (
	SynonymsComputedTotal    = metricz.Key("synonyms.computed.total")
	SynonymsProducedTotal    = metricz.Key("synonyms.produced.total")
	DecorateKeysAddedTotal   = metricz.Key("decorate.keys.added.total")
	DecorateKeysSkippedTotal = metricz.Key("decorate.keys.skipped.total")
)

// Span names for Decorator operations.
const (
	SynonymsSpan = tracez.Key("decorator.synonyms")
	DecorateSpan = tracez.Key("decorator.decorate")
)

// Span tags for Decorator operations.
const (
	DecoratorTagName  = tracez.Tag("decorator.name")
	DecoratorTagLabel = tracez.Tag("decorator.label")
	DecoratorTagKeys  = tracez.Tag("decorator.keys")
	DecoratorTagError = tracez.Tag("decorator.error")

	// Hook event keys.
	DecorateEventKeyAdded   = hookz.Key("decorate.key_added")
	DecorateEventKeySkipped = hookz.Key("decorate.key_skipped")
)

// DecorateEvent describes one synonym key decision during decoration. It is
// emitted via hookz whenever a key is attached to a container or skipped
// because the slot was already taken, letting external systems audit how a
// sequence became addressable.
type DecorateEvent struct {
	Name      Name      // Decorator instance name
	Key       string    // Synonym key that was added or skipped
	Label     string    // Label the synonym was derived from
	Index     int       // Positional index of the element, -1 when unknown
	DictPath  string    // Target path the key was written under, "" for the list itself
	Collision bool      // True when the key was skipped because the slot was taken
	Timestamp time.Time // When the decision was made
}

// Decorator computes synonyms for labeled elements and attaches them as
// lookup keys onto a List, so the sequence can be addressed both
// positionally and by any of its elements' name-derived keys.
//
// A zero-configured decorator applies the verbatim and toCamelCase
// transformers, reads each record element's label from its "name" property,
// and writes keys onto the list itself. Each of these defaults is
// configurable on the instance, and per call where the operation allows.
//
// Key attachment is strictly first-writer-wins: a synonym that collides
// with an existing key, or with an existing positional slot, is silently
// skipped and surfaced as a collision event, never overwritten.
//
// Configuration accessors are guarded for concurrent reads, but decoration
// mutates its target list in place; callers sharing one list must serialize
// externally.
//
// # Observability
//
// Metrics:
//   - synonyms.computed.total: Counter of synonym computations
//   - synonyms.produced.total: Counter of synonym strings produced
//   - decorate.keys.added.total: Counter of keys attached
//   - decorate.keys.skipped.total: Counter of keys skipped on collision
//
// Traces:
//   - decorator.synonyms: Span per synonym computation
//   - decorator.decorate: Span per decoration operation
//
// Events (via hooks):
//   - decorate.key_added: Fired when a synonym key is attached
//   - decorate.key_skipped: Fired when a synonym key collides and is skipped
//
// Example:
//
//	d := synonomous.NewDecorator("columns",
//	    synonomous.TransformVerbatim,
//	    synonomous.TransformAllCaps,
//	    synonomous.TransformCamelCase,
//	)
//	list := synonomous.NewList("borderLeft", "background-color")
//	if _, err := d.DecorateAll(ctx, list); err != nil {
//	    return err
//	}
//	elem, _ := list.Lookup("BACKGROUND_COLOR") // same element as list.At(1)
type Decorator struct {
	name            Name
	registry        *Registry
	transformations []string
	propPath        Path
	dictPath        Path
	clock           clockz.Clock
	mu              sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[DecorateEvent]
}

// NewDecorator creates a decorator with the given transformer selection.
// With no selection it falls back to the default pair: verbatim and
// toCamelCase. Transformers resolve against the shared default registry
// unless WithRegistry installs a private one.
func NewDecorator(name Name, transformations ...string) *Decorator {
	if len(transformations) == 0 {
		transformations = []string{TransformVerbatim, TransformCamelCase}
	}

	registry := metricz.New()
	registry.Counter(SynonymsComputedTotal)
	registry.Counter(SynonymsProducedTotal)
	registry.Counter(DecorateKeysAddedTotal)
	registry.Counter(DecorateKeysSkippedTotal)

	return &Decorator{
		name:            name,
		registry:        defaultRegistry,
		transformations: transformations,
		propPath:        NewPath("name"),
		dictPath:        Path{},
		metrics:         registry,
		tracer:          tracez.New(),
		hooks:           hookz.New[DecorateEvent](),
	}
}

// Synonyms computes the de-duplicated, order-preserving list of non-blank
// synonym strings for label. The variadic selection overrides the
// decorator's configured transformer selection for this call; with no
// override the configured selection runs. A blank or whitespace-only label
// yields an empty list and no error. An unknown transformer name aborts the
// whole computation with an *UnknownTransformerError; no partial list is
// returned.
func (d *Decorator) Synonyms(ctx context.Context, label string, transformations ...string) ([]string, error) {
	d.mu.RLock()
	registry := d.registry
	selection := transformations
	if len(selection) == 0 {
		selection = d.transformations
	}
	d.mu.RUnlock()

	_, span := d.tracer.StartSpan(ctx, SynonymsSpan)
	defer span.Finish()
	span.SetTag(DecoratorTagName, string(d.name))
	span.SetTag(DecoratorTagLabel, label)

	d.metrics.Counter(SynonymsComputedTotal).Inc()

	if strings.TrimSpace(label) == "" {
		span.SetTag(DecoratorTagKeys, "0")
		return nil, nil
	}

	var synonyms []string
	seen := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		fn, err := registry.Resolve(name)
		if err != nil {
			span.SetTag(DecoratorTagError, err.Error())
			return nil, err
		}
		synonym := fn(label)
		if strings.TrimSpace(synonym) == "" {
			continue
		}
		if _, dup := seen[synonym]; dup {
			continue
		}
		seen[synonym] = struct{}{}
		synonyms = append(synonyms, synonym)
		d.metrics.Counter(SynonymsProducedTotal).Inc()
	}

	span.SetTag(DecoratorTagKeys, strconv.Itoa(len(synonyms)))
	return synonyms, nil
}

// Decorate attaches keys to the list's configured target (the list itself,
// or the nested mapping addressed by the configured dict path), each
// pointing at element. Keys whose slot is already taken are skipped. The
// list is returned for chaining.
func (d *Decorator) Decorate(ctx context.Context, list *List, keys []string, element any) (*List, error) {
	ctx, span := d.tracer.StartSpan(ctx, DecorateSpan)
	defer span.Finish()
	span.SetTag(DecoratorTagName, string(d.name))
	span.SetTag(DecoratorTagKeys, strconv.Itoa(len(keys)))

	if err := d.attach(ctx, list, keys, element, -1, ""); err != nil {
		span.SetTag(DecoratorTagError, err.Error())
		return list, err
	}
	return list, nil
}

// DecorateAll decorates the list using every element. The optional propPath
// overrides, for this call, which property of each record element supplies
// the label; raw string elements are used directly.
func (d *Decorator) DecorateAll(ctx context.Context, list *List, propPath ...Path) (*List, error) {
	ctx, span := d.tracer.StartSpan(ctx, DecorateSpan)
	defer span.Finish()
	span.SetTag(DecoratorTagName, string(d.name))

	for i := 0; i < list.Len(); i++ {
		if err := d.decorateElement(ctx, list, i, propPath); err != nil {
			span.SetTag(DecoratorTagError, err.Error())
			return list, err
		}
	}
	return list, nil
}

// DecorateOne decorates the list using only the element at index. The
// optional propPath has the same meaning as in DecorateAll. An out-of-range
// index is an error.
func (d *Decorator) DecorateOne(ctx context.Context, list *List, index int, propPath ...Path) (*List, error) {
	ctx, span := d.tracer.StartSpan(ctx, DecorateSpan)
	defer span.Finish()
	span.SetTag(DecoratorTagName, string(d.name))

	if index < 0 || index >= list.Len() {
		err := fmt.Errorf("decorate %q: index %d out of range [0,%d)", d.name, index, list.Len())
		span.SetTag(DecoratorTagError, err.Error())
		return list, err
	}
	if err := d.decorateElement(ctx, list, index, propPath); err != nil {
		span.SetTag(DecoratorTagError, err.Error())
		return list, err
	}
	return list, nil
}

// decorateElement computes synonyms for one element's label and attaches
// them at the configured target.
func (d *Decorator) decorateElement(ctx context.Context, list *List, index int, propOverride []Path) error {
	d.mu.RLock()
	prop := d.propPath
	if len(propOverride) > 0 {
		prop = propOverride[0]
	}
	d.mu.RUnlock()

	element := list.At(index)
	label := elementLabel(element, prop)
	keys, err := d.Synonyms(ctx, label)
	if err != nil {
		return err
	}
	return d.attach(ctx, list, keys, element, index, label)
}

// attach writes keys at the configured target with first-writer-wins
// semantics, emitting an event per key decision.
func (d *Decorator) attach(ctx context.Context, list *List, keys []string, element any, index int, label string) error {
	d.mu.RLock()
	dictPath := d.dictPath
	d.mu.RUnlock()

	if dictPath.IsEmpty() {
		for _, key := range keys {
			added := list.putIfAbsent(key, element)
			d.recordKey(ctx, key, label, index, "", added)
		}
		return nil
	}

	target, err := dictPath.Drilldown(list.dictRoot())
	if err != nil {
		return err
	}
	rendered := dictPath.String()
	for _, key := range keys {
		_, taken := target[key]
		if !taken {
			target[key] = element
		}
		d.recordKey(ctx, key, label, index, rendered, !taken)
	}
	return nil
}

// recordKey bumps the add/skip counters and emits the matching hook event.
func (d *Decorator) recordKey(ctx context.Context, key, label string, index int, dictPath string, added bool) {
	event := DecorateEvent{
		Name:      d.name,
		Key:       key,
		Label:     label,
		Index:     index,
		DictPath:  dictPath,
		Collision: !added,
		Timestamp: d.getClock().Now(),
	}
	if added {
		d.metrics.Counter(DecorateKeysAddedTotal).Inc()
		_ = d.hooks.Emit(ctx, DecorateEventKeyAdded, event) //nolint:errcheck
		return
	}
	d.metrics.Counter(DecorateKeysSkippedTotal).Inc()
	_ = d.hooks.Emit(ctx, DecorateEventKeySkipped, event) //nolint:errcheck
}

// elementLabel extracts the string a synonym computation should run on.
// With a non-empty property path and a record element, the path is walked
// read-only; a missing or non-string value yields no label. Any other
// element is coerced to a string and used directly.
func elementLabel(element any, prop Path) string {
	if !prop.IsEmpty() {
		if record, ok := element.(map[string]any); ok {
			value, ok := prop.Lookup(record)
			if !ok {
				return ""
			}
			label, ok := value.(string)
			if !ok {
				return ""
			}
			return label
		}
	}
	switch v := element.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// DecorateMap attaches keys to a plain mapping, each pointing at element,
// skipping keys that are already present. The mapping is returned for
// chaining.
func DecorateMap(m map[string]any, keys []string, element any) map[string]any {
	for _, key := range keys {
		if _, taken := m[key]; !taken {
			m[key] = element
		}
	}
	return m
}

// SetTransformations replaces the configured transformer selection. The
// selection order is the synonym production order.
func (d *Decorator) SetTransformations(transformations ...string) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transformations = transformations
	return d
}

// Transformations returns a copy of the configured transformer selection.
func (d *Decorator) Transformations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	copied := make([]string, len(d.transformations))
	copy(copied, d.transformations)
	return copied
}

// SetPropPath updates which property of each record element supplies the
// label. The empty path means the element itself.
func (d *Decorator) SetPropPath(p Path) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.propPath = p
	return d
}

// PropPath returns the configured source property path.
func (d *Decorator) PropPath() Path {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.propPath
}

// SetDictPath updates where generated keys are written: the empty path
// decorates the list itself, a non-empty path addresses a nested mapping
// created on demand inside the list's key table.
func (d *Decorator) SetDictPath(p Path) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dictPath = p
	return d
}

// DictPath returns the configured target path.
func (d *Decorator) DictPath() Path {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dictPath
}

// WithRegistry installs a private transformer registry, leaving the shared
// default untouched.
func (d *Decorator) WithRegistry(r *Registry) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.registry = r
	return d
}

// Registry returns the registry this decorator resolves transformers
// against.
func (d *Decorator) Registry() *Registry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.registry
}

// WithClock sets a custom clock for event timestamps. Primarily used in
// tests with clockz.NewFakeClock().
func (d *Decorator) WithClock(clock clockz.Clock) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = clock
	return d
}

// getClock returns the clock to use.
func (d *Decorator) getClock() clockz.Clock {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.clock == nil {
		return clockz.RealClock
	}
	return d.clock
}

// Name returns the name of this decorator.
func (d *Decorator) Name() Name {
	return d.name
}

// Metrics returns the metrics registry for this decorator.
func (d *Decorator) Metrics() *metricz.Registry {
	return d.metrics
}

// Tracer returns the tracer for this decorator.
func (d *Decorator) Tracer() *tracez.Tracer {
	return d.tracer
}

// Close gracefully shuts down observability components.
func (d *Decorator) Close() error {
	if d.tracer != nil {
		d.tracer.Close()
	}
	d.hooks.Close()
	return nil
}

// OnKeyAdded registers a handler for every synonym key attached to a
// container. Handlers run asynchronously.
func (d *Decorator) OnKeyAdded(handler func(context.Context, DecorateEvent) error) error {
	_, err := d.hooks.Hook(DecorateEventKeyAdded, handler)
	return err
}

// OnKeySkipped registers a handler for every synonym key skipped because
// its slot was already taken. Handlers run asynchronously.
func (d *Decorator) OnKeySkipped(handler func(context.Context, DecorateEvent) error) error {
	_, err := d.hooks.Hook(DecorateEventKeySkipped, handler)
	return err
}
