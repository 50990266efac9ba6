package lcd

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/hd44780"
)

var errCursorOutOfRange = errors.New("cursor out of range")

// Pins groups the six lines of a 4-bit HD44780 interface.
type Pins struct {
	RS LineWriter
	E  LineWriter
	D  [4]LineWriter // D4..D7

	// Offsets are only used to name the lines in errors and logs.
	Offsets [6]int
}

// HD44780 implements Display over periph's hd44780 driver.
type HD44780 struct {
	dev  *hd44780.Dev
	cols int
	rows int

	// closer releases the underlying lines; nil when the caller owns them.
	closer func() error
}

// NewHD44780 initializes the controller on the given pins and returns a
// cleared display.
func NewHD44780(pins Pins, cols, rows int) (*HD44780, error) {
	if pins.RS == nil || pins.E == nil {
		return nil, errors.New("hd44780: RS and E lines are required")
	}
	data := make([]gpio.PinOut, len(pins.D))
	for i, d := range pins.D {
		if d == nil {
			return nil, fmt.Errorf("hd44780: data line D%d is required", i+4)
		}
		data[i] = newLineOut(fmt.Sprintf("D%d", i+4), pins.Offsets[i+2], d)
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 || rows > 2 {
		rows = DefaultRows
	}

	dev, err := hd44780.New(data, newLineOut("RS", pins.Offsets[0], pins.RS), newLineOut("E", pins.Offsets[1], pins.E))
	if err != nil {
		return nil, fmt.Errorf("hd44780 init: %w", err)
	}
	return &HD44780{dev: dev, cols: cols, rows: rows}, nil
}

// Clear blanks the display and returns the cursor home.
func (h *HD44780) Clear() error {
	return h.dev.Halt()
}

// SetCursor moves the cursor to (col, row).
func (h *HD44780) SetCursor(col, row int) error {
	if col < 0 || col >= h.cols || row < 0 || row >= h.rows {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", errCursorOutOfRange, col, row, h.cols, h.rows)
	}
	return h.dev.SetCursor(uint8(row), uint8(col))
}

// Print writes text at the cursor.
func (h *HD44780) Print(text string) error {
	return h.dev.Print(text)
}

// Close releases the lines if this display opened them.
func (h *HD44780) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer()
}
