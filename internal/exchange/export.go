package exchange

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

// Write serializes s to w in the given format.
func Write(w io.Writer, s *clip.Store, format Format) error {
	switch format {
	case JSON:
		return jsonfile.Encode(w, s)
	case CSV:
		return writeCSV(w, s.Records())
	default:
		return fmt.Errorf("export %q: %w", format, clip.ErrUnsupportedFormat)
	}
}

// Export writes s to path, replacing any existing file.
func Export(s *clip.Store, path string, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, s, format); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w: %w", clip.ErrIO, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export file: %w: %w", clip.ErrIO, err)
	}
	return nil
}

func writeCSV(w io.Writer, records []clip.Record) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write([]string{r.History, r.Key, r.Value}); err != nil {
			return fmt.Errorf("write csv record: %w: %w", clip.ErrIO, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w: %w", clip.ErrIO, err)
	}
	return nil
}
