package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// run feeds samples through a fresh classifier and returns the commands.
func run(c *Classifier, excessMode bool, threshold uint8, samples ...bool) []Command {
	var got []Command
	for _, s := range samples {
		got = append(got, c.Classify(s, excessMode, threshold))
	}
	return got
}

func TestNewClassifier(t *testing.T) {
	c := NewClassifier()
	if c == nil {
		t.Fatal("NewClassifier returned nil")
	}
	motion, noMotion := c.Flags()
	if motion || noMotion {
		t.Errorf("expected flags (false,false), got (%v,%v)", motion, noMotion)
	}
	if c.ExcessCount() != 0 {
		t.Errorf("expected excess count 0, got %d", c.ExcessCount())
	}
	if c.Counts() != (Counts{}) {
		t.Errorf("expected zero counts, got %+v", c.Counts())
	}
}

func TestFirstSample(t *testing.T) {
	tests := []struct {
		name   string
		sample bool
		want   Command
	}{
		{"motion", true, CommandMotion},
		{"no motion", false, CommandNoMotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier()
			if got := c.Classify(tt.sample, false, 0); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRepeatedSampleIsSuppressed(t *testing.T) {
	for _, sample := range []bool{true, false} {
		c := NewClassifier()
		got := run(c, false, 0, sample, sample, sample, sample, sample)
		for i, cmd := range got[1:] {
			if cmd != CommandNoChange {
				t.Errorf("sample=%v tick %d: expected NO_CHANGE, got %s", sample, i+1, cmd)
			}
		}
	}
}

func TestStateChangeIsNotSuppressed(t *testing.T) {
	c := NewClassifier()
	got := run(c, false, 0, true, false, true)
	want := []Command{CommandMotion, CommandNoMotion, CommandMotion}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagsFollowDisplayedState(t *testing.T) {
	c := NewClassifier()

	c.Classify(true, false, 0)
	if m, nm := c.Flags(); !m || nm {
		t.Errorf("after motion: expected (true,false), got (%v,%v)", m, nm)
	}

	c.Classify(false, false, 0)
	if m, nm := c.Flags(); m || !nm {
		t.Errorf("after no motion: expected (false,true), got (%v,%v)", m, nm)
	}
}

func TestNoMotionResetsCounter(t *testing.T) {
	for _, excessMode := range []bool{true, false} {
		c := NewClassifier()
		run(c, true, 200, true, true, true, true, true)
		if c.ExcessCount() != 5 {
			t.Fatalf("expected excess count 5, got %d", c.ExcessCount())
		}

		c.Classify(false, excessMode, 200)
		if c.ExcessCount() != 0 {
			t.Errorf("excessMode=%v: expected counter reset to 0, got %d", excessMode, c.ExcessCount())
		}
	}
}

func TestCounterIgnoredWhenExcessModeOff(t *testing.T) {
	c := NewClassifier()
	run(c, false, 1, true, true, true)
	if c.ExcessCount() != 0 {
		t.Errorf("expected counter untouched with excess mode off, got %d", c.ExcessCount())
	}
}

func TestExcessMotionThreshold3(t *testing.T) {
	c := NewClassifier()
	got := run(c, true, 3, true, true, true)
	want := []Command{CommandMotion, CommandNoChange, CommandExcessMotion}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	if c.ExcessCount() != 3 {
		t.Errorf("expected excess count 3, got %d", c.ExcessCount())
	}
	if m, nm := c.Flags(); m || nm {
		t.Errorf("expected flags (false,false) after alert, got (%v,%v)", m, nm)
	}
}

func TestExcessMotionThresholdZero(t *testing.T) {
	c := NewClassifier()
	if got := c.Classify(true, true, 0); got != CommandExcessMotion {
		t.Errorf("expected EXCESS_MOTION on first motion tick, got %s", got)
	}
}

func TestExcessMotionThresholdOne(t *testing.T) {
	c := NewClassifier()
	if got := c.Classify(true, true, 1); got != CommandExcessMotion {
		t.Errorf("expected EXCESS_MOTION on first motion tick, got %s", got)
	}
}

func TestExcessAlertFiresOncePerRun(t *testing.T) {
	c := NewClassifier()
	got := run(c, true, 2, true, true, true, true, true)
	want := []Command{
		CommandMotion,
		CommandExcessMotion,
		CommandNoChange,
		CommandNoChange,
		CommandNoChange,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if m, nm := c.Flags(); m || nm {
		t.Errorf("expected flags (false,false) while alert holds, got (%v,%v)", m, nm)
	}
}

func TestMotionAfterAlertIsFreshTransition(t *testing.T) {
	c := NewClassifier()
	got := run(c, true, 2, true, true, false, true, true)
	want := []Command{
		CommandMotion,
		CommandExcessMotion,
		CommandNoMotion,
		CommandMotion,
		CommandExcessMotion,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestAlertThenExcessModeDisabled(t *testing.T) {
	c := NewClassifier()
	run(c, true, 1, true)

	// Flags were cleared by the alert, so plain motion redraws "Motion".
	if got := c.Classify(true, false, 1); got != CommandMotion {
		t.Errorf("expected MOTION, got %s", got)
	}
}

func TestCounterSaturates(t *testing.T) {
	c := NewClassifier()

	var excess int
	for i := 0; i < 300; i++ {
		cmd := c.Classify(true, true, 255)
		if cmd == CommandExcessMotion {
			excess++
			if i != 254 {
				t.Errorf("EXCESS_MOTION at tick %d, want tick 254", i)
			}
		}
		if i >= 254 {
			if c.ExcessCount() != 255 {
				t.Fatalf("tick %d: counter wrapped to %d", i, c.ExcessCount())
			}
			if m, nm := c.Flags(); m || nm {
				t.Fatalf("tick %d: expected flags (false,false), got (%v,%v)", i, m, nm)
			}
		}
	}

	if excess != 1 {
		t.Errorf("expected exactly 1 EXCESS_MOTION, got %d", excess)
	}

	c.Classify(false, true, 255)
	if c.ExcessCount() != 0 {
		t.Errorf("expected counter reset after no motion, got %d", c.ExcessCount())
	}
}

func TestFlagsNeverBothTrue(t *testing.T) {
	// Deterministic pseudo-random walk over samples and modes.
	c := NewClassifier()
	x := uint32(2463534242)
	for i := 0; i < 2000; i++ {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		sample := x&1 == 1
		excessMode := x&2 == 2
		threshold := uint8(x>>8) % 8

		cmd := c.Classify(sample, excessMode, threshold)
		switch cmd {
		case CommandNoChange, CommandMotion, CommandNoMotion, CommandExcessMotion:
		default:
			t.Fatalf("tick %d: unexpected command %q", i, cmd)
		}
		if m, nm := c.Flags(); m && nm {
			t.Fatalf("tick %d: both flags true", i)
		}
		if !sample && c.ExcessCount() != 0 {
			t.Fatalf("tick %d: counter %d after no-motion sample", i, c.ExcessCount())
		}
	}
}

func TestCounts(t *testing.T) {
	c := NewClassifier()
	run(c, true, 3, true, true, true, false, false, true)

	want := Counts{Motion: 2, NoMotion: 1, ExcessMotion: 1, Unchanged: 2}
	if diff := cmp.Diff(want, c.Counts()); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess(t *testing.T) {
	c := NewClassifier()
	if got := c.Process(Input{Motion: true, ExcessMode: true, ExcessThreshold: 0}); got != CommandExcessMotion {
		t.Errorf("expected EXCESS_MOTION, got %s", got)
	}
	if got := c.Process(Input{Motion: false}); got != CommandNoMotion {
		t.Errorf("expected NO_MOTION, got %s", got)
	}
}

func TestCommandText(t *testing.T) {
	tests := []struct {
		cmd     Command
		text    string
		changed bool
	}{
		{CommandMotion, "Motion", true},
		{CommandNoMotion, "No Motion", true},
		{CommandExcessMotion, "TM Motion", true},
		{CommandNoChange, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			if got := tt.cmd.Text(); got != tt.text {
				t.Errorf("Text: got %q, want %q", got, tt.text)
			}
			if got := tt.cmd.Changed(); got != tt.changed {
				t.Errorf("Changed: got %v, want %v", got, tt.changed)
			}
		})
	}
}
