package clip

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// DefaultHistory is the history selected when nothing else has been chosen.
const DefaultHistory = "default"

// Store holds every history in memory. It performs no I/O; persisting it is the
// caller's job (see the jsonfile package).
type Store struct {
	histories map[string]*History
	current   string
}

// NewStore returns an empty Store whose current history is DefaultHistory.
func NewStore() *Store {
	return &Store{
		histories: make(map[string]*History),
		current:   DefaultHistory,
	}
}

// Current returns the history name used as the default selection.
func (s *Store) Current() string {
	return s.current
}

// SetCurrent changes the default selection. The history does not need to exist.
func (s *Store) SetCurrent(name string) {
	s.current = name
}

// EnsureHistory returns the named history, creating an empty one if absent.
func (s *Store) EnsureHistory(name string) *History {
	h, ok := s.histories[name]
	if !ok {
		h = newHistory(name)
		s.histories[name] = h
	}
	return h
}

// History returns the named history. Returns ErrNotFound if it does not exist.
func (s *Store) History(name string) (*History, error) {
	h, ok := s.histories[name]
	if !ok {
		return nil, fmt.Errorf("history %q: %w", name, ErrNotFound)
	}
	return h, nil
}

// SaveEntry inserts or overwrites value under key in the named history,
// creating the history if needed.
func (s *Store) SaveEntry(history, key, value string) {
	s.EnsureHistory(history).Set(key, value)
}

// GetEntry returns the value stored under key. Returns ErrNotFound if the
// history or the key is absent.
func (s *Store) GetEntry(history, key string) (string, error) {
	h, err := s.History(history)
	if err != nil {
		return "", err
	}

	v, ok := h.Get(key)
	if !ok {
		return "", fmt.Errorf("key %q in history %q: %w", key, history, ErrNotFound)
	}
	return v, nil
}

// DeleteEntry removes key from the named history. Returns ErrNotFound if the
// history or the key is absent. The history itself is kept even when it
// becomes empty.
func (s *Store) DeleteEntry(history, key string) error {
	h, err := s.History(history)
	if err != nil {
		return err
	}

	if !h.Delete(key) {
		return fmt.Errorf("key %q in history %q: %w", key, history, ErrNotFound)
	}
	return nil
}

// Histories yields every history name exactly once, in sorted order. The
// sequence can be ranged over any number of times.
func (s *Store) Histories() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range s.HistoryNames() {
			if !yield(name) {
				return
			}
		}
	}
}

// HistoryNames returns the sorted history names.
func (s *Store) HistoryNames() []string {
	return slices.Sorted(maps.Keys(s.histories))
}

// Entries yields the (key, value) pairs of one history. Returns ErrNotFound if
// the history does not exist.
func (s *Store) Entries(history string) (iter.Seq2[string, string], error) {
	h, err := s.History(history)
	if err != nil {
		return nil, err
	}
	return h.All(), nil
}

// Records returns the flattened store ordered by history name, then key.
func (s *Store) Records() []Record {
	records := make([]Record, 0, s.Len())
	for _, name := range s.HistoryNames() {
		for k, v := range s.histories[name].All() {
			records = append(records, Record{History: name, Key: k, Value: v})
		}
	}
	return records
}

// Len returns the total number of entries across all histories.
func (s *Store) Len() int {
	n := 0
	for _, h := range s.histories {
		n += h.Len()
	}
	return n
}

// Empty reports whether the store holds no histories at all.
func (s *Store) Empty() bool {
	return len(s.histories) == 0
}

// Equal reports whether both stores hold the same histories, keys, and values.
// The current selection is session state and is not compared.
func (s *Store) Equal(other *Store) bool {
	if len(s.histories) != len(other.histories) {
		return false
	}
	for name, h := range s.histories {
		oh, ok := other.histories[name]
		if !ok || !maps.Equal(h.entries, oh.entries) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		histories: make(map[string]*History, len(s.histories)),
		current:   s.current,
	}
	for name, h := range s.histories {
		c.histories[name] = h.clone()
	}
	return c
}
