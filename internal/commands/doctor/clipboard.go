package doctor

import (
	"context"

	"github.com/hay-kot/clipstash/internal/clipboard"
)

// availability is implemented by gateways that can tell whether a backend
// exists without touching the clipboard.
type availability interface {
	Available() bool
}

// ClipboardCheck verifies that the clipboard can be read.
type ClipboardCheck struct {
	gateway clipboard.Gateway
}

// NewClipboardCheck creates a clipboard check.
func NewClipboardCheck(gateway clipboard.Gateway) *ClipboardCheck {
	return &ClipboardCheck{gateway: gateway}
}

func (c *ClipboardCheck) Name() string {
	return "Clipboard"
}

func (c *ClipboardCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if a, ok := c.gateway.(availability); ok && !a.Available() {
		result.fail("Backend", "no clipboard utility found; install xclip, xsel, or wl-clipboard")
		return result
	}

	if _, err := c.gateway.Read(ctx); err != nil {
		result.fail("Read", err.Error())
		return result
	}

	result.pass("Read", "")
	return result
}
