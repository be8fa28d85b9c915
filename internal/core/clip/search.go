package clip

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Results maps a history name to the entries of that history that matched.
type Results map[string]map[string]string

// Len returns the number of matched entries.
func (r Results) Len() int {
	n := 0
	for _, entries := range r {
		n += len(entries)
	}
	return n
}

// Histories returns the matched history names in sorted order.
func (r Results) Histories() []string {
	return slices.Sorted(maps.Keys(r))
}

// Records flattens the results ordered by history, then key.
func (r Results) Records() []Record {
	records := make([]Record, 0, r.Len())
	for _, name := range r.Histories() {
		for _, k := range slices.Sorted(maps.Keys(r[name])) {
			records = append(records, Record{History: name, Key: k, Value: r[name][k]})
		}
	}
	return records
}

// Search returns every entry whose history name, key, or value contains term.
// Matching is case-sensitive. Only the matching entries are returned, never the
// rest of their history. An empty term is rejected with ErrInvalidInput.
func Search(s *Store, term string) (Results, error) {
	if term == "" {
		return nil, fmt.Errorf("search term is empty: %w", ErrInvalidInput)
	}

	results := make(Results)
	for name, h := range s.histories {
		nameMatch := strings.Contains(name, term)
		for k, v := range h.entries {
			if nameMatch || strings.Contains(k, term) || strings.Contains(v, term) {
				if results[name] == nil {
					results[name] = make(map[string]string)
				}
				results[name][k] = v
			}
		}
	}

	return results, nil
}
