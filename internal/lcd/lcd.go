// Package lcd drives the character display that shows the motion state.
//
// The real implementation talks to an HD44780 compatible 16x2 module wired in
// 4-bit mode to GPIO output lines. The console implementation prints to a
// writer for machines without a display; the fake records calls for tests.
package lcd

import "fmt"

// Display is a character display sink.
type Display interface {
	// Clear blanks the display and homes the cursor.
	Clear() error
	// SetCursor moves the cursor to the given zero-based column and row.
	SetCursor(col, row int) error
	// Print writes text at the cursor.
	Print(text string) error
	// Close releases the display hardware.
	Close() error
}

// Default geometry of the 1602 module.
const (
	DefaultCols = 16
	DefaultRows = 2
)

// Show replaces the display contents with text on the top-left cell:
// Clear, SetCursor(0, 0), Print(text).
func Show(d Display, text string) error {
	if err := d.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := d.SetCursor(0, 0); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	if err := d.Print(text); err != nil {
		return fmt.Errorf("print %q: %w", text, err)
	}
	return nil
}
