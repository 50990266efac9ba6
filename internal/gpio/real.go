//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads the PIR output from actual hardware using Linux GPIO character device.
type RealReader struct {
	chip *gpiocdev.Chip
	pin  *gpiocdev.Line
}

// NewRealReader creates a PIR reader on the given chip and BCM pin.
func NewRealReader(chipName string, pin int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	// Pull-down keeps the line low (no motion) if the sensor is unplugged.
	line, err := chip.RequestLine(pin, gpiocdev.AsInput, gpiocdev.WithPullDown, gpiocdev.WithConsumer("motion-display"))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request PIR pin %d: %w", pin, err)
	}

	return &RealReader{
		chip: chip,
		pin:  line,
	}, nil
}

// Read returns true if the PIR output is high.
func (r *RealReader) Read() (bool, error) {
	v, err := r.pin.Value()
	if err != nil {
		return false, fmt.Errorf("read PIR pin: %w", err)
	}
	return v == 1, nil
}

// Close releases GPIO resources.
func (r *RealReader) Close() error {
	var errs []error

	if r.pin != nil {
		if err := r.pin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close PIR pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
