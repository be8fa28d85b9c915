package clip

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndGet(t *testing.T) {
	s := NewStore()
	s.SaveEntry("work", "snippet", "echo hi")

	got, err := s.GetEntry("work", "snippet")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := NewStore()
	s.SaveEntry("work", "k", "old")
	s.SaveEntry("work", "k", "new")

	got, err := s.GetEntry("work", "k")
	require.NoError(t, err)
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_SaveIdempotent(t *testing.T) {
	once := NewStore()
	once.SaveEntry("h", "k", "v")

	twice := NewStore()
	twice.SaveEntry("h", "k", "v")
	twice.SaveEntry("h", "k", "v")

	assert.True(t, once.Equal(twice))
}

func TestStore_EmptyValue(t *testing.T) {
	s := NewStore()
	s.SaveEntry("h", "blank", "")

	got, err := s.GetEntry("h", "blank")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_GetNotFound(t *testing.T) {
	s := NewStore()
	s.SaveEntry("work", "k", "v")

	_, err := s.GetEntry("missing", "k")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetEntry("work", "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteThenGet(t *testing.T) {
	s := NewStore()
	s.SaveEntry("h", "k", "v")

	require.NoError(t, s.DeleteEntry("h", "k"))

	_, err := s.GetEntry("h", "k")
	require.ErrorIs(t, err, ErrNotFound)

	// The history survives with zero entries.
	h, err := s.History("h")
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestStore_DeleteNotFound(t *testing.T) {
	s := NewStore()
	s.SaveEntry("h", "k", "v")

	require.ErrorIs(t, s.DeleteEntry("nope", "k"), ErrNotFound)
	require.ErrorIs(t, s.DeleteEntry("h", "nope"), ErrNotFound)
}

func TestStore_HistoriesRestartable(t *testing.T) {
	s := NewStore()
	s.SaveEntry("b", "k", "v")
	s.SaveEntry("a", "k", "v")
	s.EnsureHistory("c")

	first := slices.Collect(s.Histories())
	second := slices.Collect(s.Histories())

	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestStore_Entries(t *testing.T) {
	s := NewStore()
	s.SaveEntry("h", "b", "2")
	s.SaveEntry("h", "a", "1")

	seq, err := s.Entries("h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, maps.Collect(seq))

	_, err = s.Entries("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Records(t *testing.T) {
	s := NewStore()
	s.SaveEntry("work", "z", "1")
	s.SaveEntry("home", "a", "2")
	s.SaveEntry("work", "b", "3")
	s.EnsureHistory("empty")

	want := []Record{
		{History: "home", Key: "a", Value: "2"},
		{History: "work", Key: "b", Value: "3"},
		{History: "work", Key: "z", Value: "1"},
	}
	assert.Equal(t, want, s.Records())
}

func TestStore_EqualAndClone(t *testing.T) {
	s := NewStore()
	s.SaveEntry("h", "k", "v")
	s.EnsureHistory("empty")

	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.SaveEntry("h", "k", "changed")
	assert.False(t, s.Equal(c))

	other := NewStore()
	other.SaveEntry("h", "k", "v")
	assert.False(t, s.Equal(other), "empty history must count")
}

func TestStore_Current(t *testing.T) {
	s := NewStore()
	assert.Equal(t, DefaultHistory, s.Current())

	s.SetCurrent("work")
	assert.Equal(t, "work", s.Current())
	assert.True(t, s.Empty(), "selecting a history does not create it")
}
