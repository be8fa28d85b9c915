// Package utils holds small helpers shared by the command line entrypoint.
package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter buffers log output while the interactive menu owns the
// terminal. Flush replays it afterwards.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes the buffered output to w one line at a time and resets the
// buffer. zerolog.ConsoleWriter expects a single event per Write.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	scanner := bufio.NewScanner(&d.buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if _, err := w.Write(append(bytes.Clone(line), '\n')); err != nil {
			return fmt.Errorf("flush log line: %w", err)
		}
	}

	d.buf.Reset()
	return scanner.Err()
}
