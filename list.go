package synonomous

import (
	"sort"
	"strconv"
)

// List is an ordered sequence of elements that doubles as a dictionary:
// besides positional indices it carries auxiliary named keys (synonyms),
// each referencing one of its elements. Elements are raw strings or
// structured records (map[string]any); no further schema is imposed.
//
// List is not safe for concurrent mutation; callers sharing one list must
// serialize externally.
type List struct {
	elems []any
	dict  map[string]any
}

// NewList builds a list from the given elements.
func NewList(elems ...any) *List {
	return &List{elems: elems}
}

// Len returns the number of positional elements.
func (l *List) Len() int {
	return len(l.elems)
}

// At returns the element at position i, or nil when i is out of range.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.elems) {
		return nil
	}
	return l.elems[i]
}

// Append adds elements to the end of the list.
func (l *List) Append(elems ...any) *List {
	l.elems = append(l.elems, elems...)
	return l
}

// Lookup resolves a key against the list. Synonym keys resolve to the
// element they were decorated with; a key that is the canonical decimal form
// of an in-range index resolves to that positional element.
func (l *List) Lookup(key string) (any, bool) {
	if v, ok := l.dict[key]; ok {
		return v, true
	}
	if i, ok := positionalKey(key, len(l.elems)); ok {
		return l.elems[i], true
	}
	return nil, false
}

// Keys returns the attached synonym keys in sorted order. Positional
// indices are not included.
func (l *List) Keys() []string {
	keys := make([]string, 0, len(l.dict))
	for key := range l.dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// putIfAbsent attaches key to element unless the key is already taken,
// either by an earlier synonym or by an existing positional slot. Reports
// whether the key was added.
func (l *List) putIfAbsent(key string, element any) bool {
	if _, taken := l.dict[key]; taken {
		return false
	}
	if _, taken := positionalKey(key, len(l.elems)); taken {
		return false
	}
	if l.dict == nil {
		l.dict = map[string]any{}
	}
	l.dict[key] = element
	return true
}

// dictRoot returns the list's key table, creating it on first use. Nested
// decoration targets hang off this mapping.
func (l *List) dictRoot() map[string]any {
	if l.dict == nil {
		l.dict = map[string]any{}
	}
	return l.dict
}

// positionalKey reports whether key is the canonical decimal form of an
// index within [0, n). "007" does not address slot 7.
func positionalKey(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
