package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// ReadDocument parses the canonical document, an object mapping history names
// to objects mapping keys to string values. Records are returned in document
// order so a key repeated within a history resolves to its last occurrence
// when merged. A history name repeated at the top level replaces the earlier
// object entirely. Any other shape is reported as clip.ErrCorruptData.
func ReadDocument(r io.Reader) (clip.Dataset, error) {
	var (
		ds   clip.Dataset
		seen = make(map[string]bool)
		dec  = json.NewDecoder(r)
	)

	if err := expectDelim(dec, '{', "document"); err != nil {
		return clip.Dataset{}, err
	}

	for dec.More() {
		history, err := readString(dec, "history name")
		if err != nil {
			return clip.Dataset{}, err
		}

		if seen[history] {
			ds.Records = slices.DeleteFunc(ds.Records, func(r clip.Record) bool {
				return r.History == history
			})
		} else {
			seen[history] = true
			ds.Histories = append(ds.Histories, history)
		}

		if err := expectDelim(dec, '{', fmt.Sprintf("history %q", history)); err != nil {
			return clip.Dataset{}, err
		}

		for dec.More() {
			key, err := readString(dec, fmt.Sprintf("key in history %q", history))
			if err != nil {
				return clip.Dataset{}, err
			}

			value, err := readString(dec, fmt.Sprintf("value of %q in history %q", key, history))
			if err != nil {
				return clip.Dataset{}, err
			}

			ds.Records = append(ds.Records, clip.Record{History: history, Key: key, Value: value})
		}

		if err := expectDelim(dec, '}', fmt.Sprintf("end of history %q", history)); err != nil {
			return clip.Dataset{}, err
		}
	}

	if err := expectDelim(dec, '}', "end of document"); err != nil {
		return clip.Dataset{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return clip.Dataset{}, fmt.Errorf("unexpected data after document: %w", clip.ErrCorruptData)
	}

	return ds, nil
}

// Decode reads a canonical document into a new Store.
func Decode(r io.Reader) (*clip.Store, error) {
	ds, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}

	s := clip.NewStore()
	clip.MergeDataset(s, ds)
	return s, nil
}

// Encode writes s as the canonical document: two-space indented, keys sorted,
// empty histories written as {}. Output is identical for equal stores.
func Encode(w io.Writer, s *clip.Store) error {
	doc := make(map[string]map[string]string)
	for name := range s.Histories() {
		entries := make(map[string]string)
		seq, err := s.Entries(name)
		if err != nil {
			return err
		}
		for k, v := range seq {
			entries[k] = v
		}
		doc[name] = entries
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshal clipboard data: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write clipboard data: %w: %w", clip.ErrIO, err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim, what string) error {
	tok, err := dec.Token()
	if err != nil {
		return corrupt(what, err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%s: expected %q, got %s: %w", what, want, describe(tok), clip.ErrCorruptData)
	}
	return nil
}

func readString(dec *json.Decoder, what string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", corrupt(what, err)
	}

	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s: %w", what, describe(tok), clip.ErrCorruptData)
	}
	return s, nil
}

func corrupt(what string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: unexpected end of input: %w", what, clip.ErrCorruptData)
	}
	return fmt.Errorf("%s: %w: %w", what, clip.ErrCorruptData, err)
}

func describe(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		return fmt.Sprintf("%q", v.String())
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
