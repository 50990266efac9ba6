package lcd

import (
	"fmt"
	"io"
	"strings"
)

// Console emulates a character display on a writer. Every Print emits the
// affected row framed by bars, e.g. "|Motion          |".
type Console struct {
	w    io.Writer
	cols int
	buf  [][]byte
	col  int
	row  int
}

// NewConsole returns a cleared console display of the given size.
func NewConsole(w io.Writer, cols, rows int) *Console {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	c := &Console{w: w, cols: cols, buf: make([][]byte, rows)}
	c.Clear()
	return c
}

// Clear blanks every row and homes the cursor.
func (c *Console) Clear() error {
	for i := range c.buf {
		c.buf[i] = []byte(strings.Repeat(" ", c.cols))
	}
	c.col, c.row = 0, 0
	return nil
}

// SetCursor moves the cursor.
func (c *Console) SetCursor(col, row int) error {
	if col < 0 || col >= c.cols || row < 0 || row >= len(c.buf) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", errCursorOutOfRange, col, row, c.cols, len(c.buf))
	}
	c.col, c.row = col, row
	return nil
}

// Print writes text at the cursor; characters past the last column are dropped.
func (c *Console) Print(text string) error {
	line := c.buf[c.row]
	for i := 0; i < len(text) && c.col < c.cols; i++ {
		line[c.col] = text[i]
		c.col++
	}
	_, err := fmt.Fprintf(c.w, "|%s|\n", line)
	return err
}

// Row returns the current contents of a row without the padding.
func (c *Console) Row(row int) string {
	if row < 0 || row >= len(c.buf) {
		return ""
	}
	return strings.TrimRight(string(c.buf[row]), " ")
}

// Close is a no-op; the writer belongs to the caller.
func (c *Console) Close() error {
	return nil
}
