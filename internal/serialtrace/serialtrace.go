// Package serialtrace echoes each displayed state to a serial console, one
// line per display change, for watching the sensor from a USB UART.
package serialtrace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial"
)

// Options describes the serial port used for tracing. Frames are always
// eight data bits and one stop bit.
type Options struct {
	// Device is the port path, e.g. /dev/ttyUSB0. Empty disables tracing.
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	// Parity is N, E or O; empty means N.
	Parity string `yaml:"parity"`
}

// DefaultBaudRate matches the sketch this display was first built with.
const DefaultBaudRate = 9600

var errParity = errors.New("parity must be N, E or O")

// Normalize validates the options and applies defaults for any unset values.
func (o Options) Normalize() (Options, error) {
	if o.BaudRate <= 0 {
		o.BaudRate = DefaultBaudRate
	}
	switch strings.ToUpper(strings.TrimSpace(o.Parity)) {
	case "", "N", "NONE":
		o.Parity = "N"
	case "E", "EVEN":
		o.Parity = "E"
	case "O", "ODD":
		o.Parity = "O"
	default:
		return o, fmt.Errorf("%w, got %q", errParity, o.Parity)
	}
	return o, nil
}

// Mode converts the options into the go.bug.st/serial port mode.
func (o Options) Mode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	parity := serial.NoParity
	switch opts.Parity {
	case "E":
		parity = serial.EvenParity
	case "O":
		parity = serial.OddParity
	}
	return &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: 8,
		Parity:   parity,
		StopBits: serial.OneStopBit,
	}, nil
}

// Tracer writes trace lines to a port.
type Tracer struct {
	port io.WriteCloser
}

var errNoDevice = errors.New("serial trace device not set")

// Open opens the serial port described by opts.
func Open(opts Options) (*Tracer, error) {
	if opts.Device == "" {
		return nil, errNoDevice
	}
	mode, err := opts.Mode()
	if err != nil {
		return nil, fmt.Errorf("serial options: %w", err)
	}

	port, err := serial.Open(opts.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", opts.Device, err)
	}
	return New(port), nil
}

// New wraps an already open port.
func New(port io.WriteCloser) *Tracer {
	return &Tracer{port: port}
}

// Trace writes text followed by CRLF.
func (t *Tracer) Trace(text string) error {
	if _, err := io.WriteString(t.port, text+"\r\n"); err != nil {
		return fmt.Errorf("serial trace: %w", err)
	}
	return nil
}

// Close closes the port.
func (t *Tracer) Close() error {
	return t.port.Close()
}
