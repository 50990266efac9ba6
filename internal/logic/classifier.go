package logic

import "math"

// Classifier turns one boolean sample per tick into a display command.
// It remembers what the display currently shows so unchanged states are not
// redrawn, and counts consecutive motion ticks for the excess-motion alert.
//
// Not safe for concurrent use; the tick driver owns it.
type Classifier struct {
	showingMotion   bool
	showingNoMotion bool
	excessCount     uint8
	// alerted is set once the excess alert fired for the current motion run.
	alerted bool
	counts  Counts
}

// NewClassifier returns a classifier with both display flags cleared and a zero counter.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify processes one sample and returns the command for this tick.
func (c *Classifier) Classify(sample, excessMode bool, excessThreshold uint8) Command {
	cmd := c.classify(sample, excessMode, excessThreshold)
	c.count(cmd)
	return cmd
}

// Process is Classify taking an Input.
func (c *Classifier) Process(in Input) Command {
	return c.Classify(in.Motion, in.ExcessMode, in.ExcessThreshold)
}

func (c *Classifier) classify(sample, excessMode bool, excessThreshold uint8) Command {
	if !sample {
		c.excessCount = 0
		c.alerted = false
		if c.showingNoMotion {
			return CommandNoChange
		}
		c.showingMotion = false
		c.showingNoMotion = true
		return CommandNoMotion
	}

	if excessMode {
		if c.excessCount < math.MaxUint8 {
			c.excessCount++
		}
		if c.excessCount >= excessThreshold {
			// One alert per motion run; only a no-motion tick re-arms it.
			if c.alerted {
				return CommandNoChange
			}
			c.alerted = true
			c.showingMotion = false
			c.showingNoMotion = false
			return CommandExcessMotion
		}
	}

	if c.showingMotion {
		return CommandNoChange
	}
	c.showingMotion = true
	c.showingNoMotion = false
	return CommandMotion
}

func (c *Classifier) count(cmd Command) {
	switch cmd {
	case CommandMotion:
		c.counts.Motion++
	case CommandNoMotion:
		c.counts.NoMotion++
	case CommandExcessMotion:
		c.counts.ExcessMotion++
	default:
		c.counts.Unchanged++
	}
}

// Flags returns the debounce flags: whether the display shows "Motion" and
// whether it shows "No Motion". Both false is valid (initial state, or after
// an excess alert).
func (c *Classifier) Flags() (motion, noMotion bool) {
	return c.showingMotion, c.showingNoMotion
}

// ExcessCount returns the number of consecutive motion ticks seen in excess
// mode, saturated at 255.
func (c *Classifier) ExcessCount() uint8 {
	return c.excessCount
}

// Counts returns a copy of the per-command counters.
func (c *Classifier) Counts() Counts {
	return c.counts
}
