//go:build linux

package lcd

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// OpenHD44780 requests the LCD lines as outputs and initializes the display.
func OpenHD44780(cfg PinConfig) (*HD44780, error) {
	chip, err := gpiocdev.NewChip(cfg.Chip)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", cfg.Chip, err)
	}

	var lines []*gpiocdev.Line
	release := func() error {
		var errs []error
		for _, l := range lines {
			if err := l.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		if err := chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
		if len(errs) > 0 {
			return fmt.Errorf("close errors: %v", errs)
		}
		return nil
	}

	for _, offset := range cfg.offsets() {
		l, err := chip.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("motion-display"))
		if err != nil {
			release()
			return nil, fmt.Errorf("request LCD pin %d: %w", offset, err)
		}
		lines = append(lines, l)
	}

	pins := Pins{
		RS: lines[0],
		E:  lines[1],
		D:  [4]LineWriter{lines[2], lines[3], lines[4], lines[5]},
	}
	copy(pins.Offsets[:], cfg.offsets())
	h, err := NewHD44780(pins, cfg.Cols, cfg.Rows)
	if err != nil {
		release()
		return nil, err
	}
	h.closer = release
	return h, nil
}
