package jsonfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Format(t *testing.T) {
	s := clip.NewStore()
	s.SaveEntry("work", "snippet", "echo hi")
	s.SaveEntry("work", "html", "<a href=\"x\">&</a>")
	s.EnsureHistory("empty")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	want := `{
  "empty": {},
  "work": {
    "html": "<a href=\"x\">&</a>",
    "snippet": "echo hi"
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestEncode_Deterministic(t *testing.T) {
	build := func(keys []string) *clip.Store {
		s := clip.NewStore()
		for _, k := range keys {
			s.SaveEntry("h-"+k, k, "v-"+k)
		}
		return s
	}

	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, build([]string{"a", "b", "c", "d"})))
	require.NoError(t, Encode(&b, build([]string{"d", "c", "b", "a"})))
	assert.Equal(t, a.String(), b.String())
}

func TestRoundTrip(t *testing.T) {
	s := clip.NewStore()
	s.SaveEntry("work", "snippet", "echo hi")
	s.SaveEntry("work", "", "empty key")
	s.SaveEntry("", "k", "empty history name")
	s.SaveEntry("unicode ✂", "emoji 📋", "line one\nline two\ttabbed \"quoted\" \\ slash")
	s.SaveEntry("blank", "v", "")
	s.EnsureHistory("empty")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(s), "got %v, want %v", got.Records(), s.Records())
}

func TestDecode_Example(t *testing.T) {
	got, err := Decode(strings.NewReader(`{"work":{"snippet":"echo hi"}}`))
	require.NoError(t, err)

	v, err := got.GetEntry("work", "snippet")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", v)
}

func TestReadDocument_Order(t *testing.T) {
	ds, err := ReadDocument(strings.NewReader(`{
		"b": {"k": "first", "z": "1"},
		"a": {"x": "1", "x": "2"},
		"c": {"y": "1"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, ds.Histories)
	assert.Equal(t, []clip.Record{
		{History: "b", Key: "k", Value: "first"},
		{History: "b", Key: "z", Value: "1"},
		{History: "a", Key: "x", Value: "1"},
		{History: "a", Key: "x", Value: "2"},
		{History: "c", Key: "y", Value: "1"},
	}, ds.Records)

	s := clip.NewStore()
	clip.MergeDataset(s, ds)
	v, err := s.GetEntry("a", "x")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestReadDocument_RepeatedHistoryReplaces(t *testing.T) {
	ds, err := ReadDocument(strings.NewReader(`{
		"b": {"k": "first", "z": "1"},
		"a": {"x": "1"},
		"b": {"k": "second"},
		"a": {}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, ds.Histories)
	assert.Equal(t, []clip.Record{
		{History: "b", Key: "k", Value: "second"},
	}, ds.Records)

	s, err := Decode(strings.NewReader(`{"a":{"x":"1"},"a":{}}`))
	require.NoError(t, err)
	h, err := s.History("a")
	require.NoError(t, err)
	assert.Zero(t, h.Len())
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"invalid json", "{invalid json"},
		{"top level array", `[{"h":{"k":"v"}}]`},
		{"top level string", `"hello"`},
		{"history is string", `{"h":"v"}`},
		{"history is null", `{"h":null}`},
		{"history is array", `{"h":["v"]}`},
		{"value is number", `{"h":{"k":1}}`},
		{"value is null", `{"h":{"k":null}}`},
		{"value is object", `{"h":{"k":{"deep":"v"}}}`},
		{"value is bool", `{"h":{"k":true}}`},
		{"truncated", `{"h":{"k":"v"}`},
		{"trailing data", `{"h":{"k":"v"}} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.ErrorIs(t, err, clip.ErrCorruptData)
		})
	}
}
