package clip

import "errors"

// Sentinel errors shared by every clipstash layer. Callers match them with errors.Is;
// producers wrap them with context via fmt.Errorf("...: %w", err).
var (
	// ErrNotFound is returned when a history or key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCorruptData is returned when persisted or imported content has the wrong shape.
	ErrCorruptData = errors.New("corrupt data")
	// ErrClipboardUnavailable is returned when the OS clipboard cannot be read or written.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrInvalidInput is returned when a required value is empty or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO is returned for file create/read/write failures.
	ErrIO = errors.New("i/o failure")
	// ErrUnsupportedFormat is returned for export/import formats other than JSON and CSV.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUserCancelled is returned when the user aborts a prompt.
	ErrUserCancelled = errors.New("cancelled")
)
