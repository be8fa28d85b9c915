package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

func TestErrorTitle(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("get: %w", clip.ErrNotFound), "Not Found"},
		{fmt.Errorf("parse: %w", clip.ErrCorruptData), "Corrupt Data"},
		{clip.ErrClipboardUnavailable, "Clipboard Unavailable"},
		{clip.ErrInvalidInput, "Invalid Input"},
		{clip.ErrIO, "I/O Failure"},
		{clip.ErrUnsupportedFormat, "Unsupported Format"},
		{errors.New("other"), "Error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorTitle(tt.err), tt.err.Error())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Error(fmt.Errorf("history %q: %w", "work", clip.ErrNotFound))
	p.Error(nil)

	assert.Contains(t, buf.String(), `Not Found: history "work": not found`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestFatalError_FieldErrors(t *testing.T) {
	var buf bytes.Buffer
	var errs criterio.FieldErrorsBuilder
	errs = errs.Append("export_format", errors.New("must be json or csv"))

	New(&buf).FatalError(fmt.Errorf("invalid config: %w", errs.ToError()))

	assert.Contains(t, buf.String(), "export_format")
	assert.Contains(t, buf.String(), "must be json or csv")
}
