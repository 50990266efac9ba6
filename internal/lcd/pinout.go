package lcd

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// LineWriter drives a single output line. *gpiocdev.Line satisfies it.
type LineWriter interface {
	SetValue(v int) error
}

var errNoPWM = errors.New("pwm not supported on a character device line")

// lineOut presents a LineWriter as a periph gpio.PinOut so the periph
// hd44780 driver can run on gpiocdev lines.
type lineOut struct {
	name   string
	offset int
	line   LineWriter
}

var _ gpio.PinOut = (*lineOut)(nil)

func newLineOut(name string, offset int, line LineWriter) *lineOut {
	return &lineOut{name: name, offset: offset, line: line}
}

// Out sets the line high or low.
func (p *lineOut) Out(l gpio.Level) error {
	v := 0
	if l == gpio.High {
		v = 1
	}
	if err := p.line.SetValue(v); err != nil {
		return fmt.Errorf("set %s: %w", p.name, err)
	}
	return nil
}

// PWM is not available on character device lines.
func (p *lineOut) PWM(gpio.Duty, physic.Frequency) error {
	return errNoPWM
}

func (p *lineOut) String() string   { return fmt.Sprintf("%s(%d)", p.name, p.offset) }
func (p *lineOut) Name() string     { return p.name }
func (p *lineOut) Number() int      { return p.offset }
func (p *lineOut) Function() string { return "Out" }
func (p *lineOut) Halt() error      { return nil }
