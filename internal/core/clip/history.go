// Package clip defines the clipboard history domain: named histories of key/value
// entries, the merge policy for imported data, and substring search.
package clip

import (
	"iter"
	"maps"
	"slices"
)

// Record is a flattened (history, key, value) triple, the unit of import and export.
type Record struct {
	History string
	Key     string
	Value   string
}

// History is a named mapping from key to value. Keys are unique; setting an
// existing key overwrites its value.
type History struct {
	name    string
	entries map[string]string
}

func newHistory(name string) *History {
	return &History{name: name, entries: make(map[string]string)}
}

// Name returns the history name.
func (h *History) Name() string {
	return h.name
}

// Set inserts or overwrites value under key. It reports whether the key was new.
func (h *History) Set(key, value string) bool {
	_, exists := h.entries[key]
	h.entries[key] = value
	return !exists
}

// Get returns the value stored under key.
func (h *History) Get(key string) (string, bool) {
	v, ok := h.entries[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (h *History) Delete(key string) bool {
	if _, ok := h.entries[key]; !ok {
		return false
	}
	delete(h.entries, key)
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Keys returns the entry keys in sorted order.
func (h *History) Keys() []string {
	return slices.Sorted(maps.Keys(h.entries))
}

// All yields every (key, value) pair in key order.
func (h *History) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range h.Keys() {
			if !yield(k, h.entries[k]) {
				return
			}
		}
	}
}

func (h *History) clone() *History {
	return &History{name: h.name, entries: maps.Clone(h.entries)}
}
