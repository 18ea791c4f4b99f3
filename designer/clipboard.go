package designer

import "github.com/atotto/clipboard"

// Clipboard receives generated artifacts on the copy bindings.
//
// Errors must not crash the UI; a failed write surfaces as a status notice
// and in-memory state is untouched.
type Clipboard interface {
	WriteText(s string) error
}

// SystemClipboard writes through the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
