package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() *Store {
	s := NewStore()
	s.SaveEntry("work", "deploy", "kubectl apply -f .")
	s.SaveEntry("work", "greeting", "echo hi")
	s.SaveEntry("personal", "address", "221B Baker Street")
	s.SaveEntry("personal", "phone", "555-0100")
	s.EnsureHistory("empty")
	return s
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		term string
		want Results
	}{
		{
			name: "value match only returns matching entry",
			term: "echo",
			want: Results{"work": {"greeting": "echo hi"}},
		},
		{
			name: "key match",
			term: "phone",
			want: Results{"personal": {"phone": "555-0100"}},
		},
		{
			name: "history name match returns all its entries",
			term: "pers",
			want: Results{"personal": {"address": "221B Baker Street", "phone": "555-0100"}},
		},
		{
			name: "matches across histories",
			term: "e",
			want: Results{
				"work":     {"deploy": "kubectl apply -f .", "greeting": "echo hi"},
				"personal": {"address": "221B Baker Street", "phone": "555-0100"},
			},
		},
		{
			name: "case sensitive",
			term: "ECHO",
			want: Results{},
		},
		{
			name: "no match",
			term: "zz",
			want: Results{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(searchFixture(), tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	_, err := Search(searchFixture(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch_NoMatchDistinctFromEmptyStore(t *testing.T) {
	s := searchFixture()
	got, err := Search(s, "zz")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.False(t, s.Empty())

	empty := NewStore()
	got, err = Search(empty, "zz")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.True(t, empty.Empty())
}

func TestResults_Records(t *testing.T) {
	r := Results{
		"b": {"y": "2", "x": "1"},
		"a": {"k": "v"},
	}

	want := []Record{
		{History: "a", Key: "k", Value: "v"},
		{History: "b", Key: "x", Value: "1"},
		{History: "b", Key: "y", Value: "2"},
	}
	assert.Equal(t, want, r.Records())
	assert.Equal(t, []string{"a", "b"}, r.Histories())
	assert.Equal(t, 3, r.Len())
}
