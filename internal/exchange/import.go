package exchange

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

// Read parses r in the given format. Records keep their input order.
func Read(r io.Reader, format Format) (clip.Dataset, error) {
	switch format {
	case JSON:
		return jsonfile.ReadDocument(r)
	case CSV:
		return readCSV(r)
	default:
		return clip.Dataset{}, fmt.Errorf("import %q: %w", format, clip.ErrUnsupportedFormat)
	}
}

// Import reads the file at path in the given format.
func Import(path string, format Format) (clip.Dataset, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return clip.Dataset{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return clip.Dataset{}, fmt.Errorf("read import file: %w: %w", clip.ErrIO, err)
	}

	ds, err := Read(bytes.NewReader(data), format)
	if err != nil {
		return clip.Dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

func readCSV(r io.Reader) (clip.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return clip.Dataset{}, fmt.Errorf("read csv: %w: %w", clip.ErrIO, err)
	}

	var (
		ds   clip.Dataset
		seen = make(map[string]bool)
		p    = newCSVParser(data)
	)

	for {
		line, fields, err := p.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return clip.Dataset{}, fmt.Errorf("%w: %w", clip.ErrCorruptData, err)
		}

		if len(fields) != 3 {
			return clip.Dataset{}, fmt.Errorf("line %d: expected 3 fields, got %d: %w", line, len(fields), clip.ErrCorruptData)
		}

		for _, f := range fields {
			if !utf8.ValidString(f) {
				return clip.Dataset{}, fmt.Errorf("line %d: field is not valid UTF-8: %w", line, clip.ErrCorruptData)
			}
		}

		rec := clip.Record{History: fields[0], Key: fields[1], Value: fields[2]}
		if !seen[rec.History] {
			seen[rec.History] = true
			ds.Histories = append(ds.Histories, rec.History)
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}
