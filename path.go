package synonomous

import (
	"fmt"
	"strings"
)

// Path locates a nested value inside a mapping graph as an ordered sequence
// of string segments. An empty path addresses the root itself. Paths render
// to their dot-joined form on demand via String rather than eagerly.
type Path struct {
	segments []string
}

// NewPath builds a path from literal segments. The segments are copied, so
// later mutation of the caller's slice does not affect the path.
func NewPath(segments ...string) Path {
	if len(segments) == 0 {
		return Path{}
	}
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Path{segments: copied}
}

// ParsePath splits a dot-delimited string into a path. The empty string
// parses to the empty path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path{segments: strings.Split(s, ".")}
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	copied := make([]string, len(p.segments))
	copy(copied, p.segments)
	return copied
}

// IsEmpty reports whether the path addresses the root itself.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// String renders the path in dot-delimited form.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Drilldown walks the path from root, creating an empty mapping at every
// absent or nil slot, and returns the mapping at the end of the path (root
// itself for the empty path). Existing non-nil values are never overwritten;
// an existing intermediate that is not a mapping is an error.
func (p Path) Drilldown(root map[string]any) (map[string]any, error) {
	cur := root
	for _, seg := range p.segments {
		next, ok := cur[seg]
		if !ok || next == nil {
			created := map[string]any{}
			cur[seg] = created
			cur = created
			continue
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("drilldown %q: segment %q holds %T, not a mapping", p.String(), seg, next)
		}
		cur = nested
	}
	return cur, nil
}

// Lookup walks the path from root without creating anything. The second
// return value reports whether every segment resolved.
func (p Path) Lookup(root map[string]any) (any, bool) {
	var cur any = root
	for _, seg := range p.segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
