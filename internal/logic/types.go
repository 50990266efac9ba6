// Package logic contains the pure motion classification state machine.
// This package has NO external dependencies (no GPIO, LCD, serial, OS, or time.Sleep).
package logic

// Command is the display instruction produced for a single tick.
type Command string

const (
	CommandNoChange     Command = "NO_CHANGE"
	CommandMotion       Command = "MOTION"
	CommandNoMotion     Command = "NO_MOTION"
	CommandExcessMotion Command = "EXCESS_MOTION"
)

// Display texts written to the LCD for each command.
const (
	TextMotion       = "Motion"
	TextNoMotion     = "No Motion"
	TextExcessMotion = "TM Motion"
)

// Text returns the literal written to the display, or "" for CommandNoChange.
func (c Command) Text() string {
	switch c {
	case CommandMotion:
		return TextMotion
	case CommandNoMotion:
		return TextNoMotion
	case CommandExcessMotion:
		return TextExcessMotion
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return string(c)
}

// Changed reports whether the command requires a display write.
func (c Command) Changed() bool {
	return c != CommandNoChange && c != ""
}

// Input is a single PIR sample together with the excess-motion settings in force.
type Input struct {
	Motion bool // true = sensor output high

	// ExcessMode enables the consecutive-motion alert.
	ExcessMode bool
	// ExcessThreshold is the number of consecutive motion ticks that triggers
	// the alert. Zero alerts on the first motion tick.
	ExcessThreshold uint8
}

// Counts tracks the number of each display command emitted since startup.
type Counts struct {
	Motion       int
	NoMotion     int
	ExcessMotion int
	Unchanged    int
}
