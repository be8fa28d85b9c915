package clip

// Dataset is the result of reading an import file. Records keep the order they
// appeared in the source; Histories lists every history name seen, including
// ones that carried no entries.
type Dataset struct {
	Records   []Record
	Histories []string
}

// MergeStats summarizes what a merge changed.
type MergeStats struct {
	Added            int
	Updated          int
	Unchanged        int
	HistoriesCreated int
}

// Total returns the number of records processed.
func (m MergeStats) Total() int {
	return m.Added + m.Updated + m.Unchanged
}

// Merge applies records to s in slice order. Imported values always replace
// existing ones, and when records repeat a (history, key) pair the later record
// wins. The result does not depend on the iteration order of s.
func Merge(s *Store, records []Record) MergeStats {
	var stats MergeStats

	for _, r := range records {
		h := ensureCounted(s, r.History, &stats)

		old, exists := h.Get(r.Key)
		switch {
		case !exists:
			stats.Added++
		case old == r.Value:
			stats.Unchanged++
		default:
			stats.Updated++
		}

		h.Set(r.Key, r.Value)
	}

	return stats
}

// MergeDataset merges d into s and also creates the dataset's empty histories.
func MergeDataset(s *Store, d Dataset) MergeStats {
	var stats MergeStats
	for _, name := range d.Histories {
		ensureCounted(s, name, &stats)
	}

	rs := Merge(s, d.Records)
	stats.Added += rs.Added
	stats.Updated += rs.Updated
	stats.Unchanged += rs.Unchanged
	stats.HistoriesCreated += rs.HistoriesCreated
	return stats
}

func ensureCounted(s *Store, name string, stats *MergeStats) *History {
	if _, ok := s.histories[name]; !ok {
		stats.HistoriesCreated++
	}
	return s.EnsureHistory(name)
}
