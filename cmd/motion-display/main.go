// Command motion-display polls a PIR motion sensor and shows "Motion",
// "No Motion" or "TM Motion" on a character LCD.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sweeney/motion-display/internal/config"
	"github.com/sweeney/motion-display/internal/gpio"
	"github.com/sweeney/motion-display/internal/lcd"
	"github.com/sweeney/motion-display/internal/logger"
	"github.com/sweeney/motion-display/internal/logic"
	"github.com/sweeney/motion-display/internal/serialtrace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// tracer receives the text of every display change.
type tracer interface {
	Trace(text string) error
}

// hardware opens the boundaries; swapped in tests.
type hardware struct {
	openReader  func(cfg *config.Config) (gpio.Reader, error)
	openDisplay func(cfg *config.Config, stdout io.Writer) (lcd.Display, error)
	openTracer  func(opts serialtrace.Options) (*serialtrace.Tracer, error)
}

func realHardware() hardware {
	return hardware{
		openReader: func(cfg *config.Config) (gpio.Reader, error) {
			r, err := gpio.NewRealReader(cfg.GPIOChip, cfg.PIRPin)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		openDisplay: openDisplay,
		openTracer:  serialtrace.Open,
	}
}

func openDisplay(cfg *config.Config, stdout io.Writer) (lcd.Display, error) {
	switch cfg.Display {
	case config.DisplayConsole:
		return lcd.NewConsole(stdout, cfg.LCD.Cols, cfg.LCD.Rows), nil
	default:
		h, err := lcd.OpenHD44780(cfg.LCD)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

func run(ctx context.Context, cfg *config.Config, hw hardware, printState bool, stdout io.Writer) error {
	reader, err := hw.openReader(cfg)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer reader.Close()
	ctx = logger.WithKV(ctx, "pin", cfg.PIRPin)

	// Print state mode
	if printState {
		motion, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		fmt.Fprintf(stdout, "PIR: %s\n", stateString(motion))
		return nil
	}

	display, err := hw.openDisplay(cfg, stdout)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer display.Close()
	logger.Infof(ctx, "display %s ready (%dx%d)", cfg.Display, cfg.LCD.Cols, cfg.LCD.Rows)

	var tr tracer
	if cfg.SerialTrace.Device != "" {
		t, err := hw.openTracer(cfg.SerialTrace)
		if err != nil {
			return fmt.Errorf("init serial trace: %w", err)
		}
		defer t.Close()
		tr = t
		logger.Infof(ctx, "tracing to %s at %d baud", cfg.SerialTrace.Device, cfg.SerialTrace.BaudRate)
	}

	logger.InfoKV(ctx, "started",
		"tick", cfg.TickPeriod,
		"duration", cfg.RunDuration,
		"display", cfg.Display,
		"excess_mode", cfg.ExcessMode,
		"excess_threshold", cfg.ExcessThreshold,
	)

	ticker := time.NewTicker(cfg.TickPeriod)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if cfg.RunDuration > 0 {
		timer := time.NewTimer(cfg.RunDuration)
		defer timer.Stop()
		deadline = timer.C
	}

	settings := logic.Input{ExcessMode: cfg.ExcessMode, ExcessThreshold: cfg.Threshold()}
	_, err = runLoop(ctx, reader, display, tr, settings, ticker.C, deadline)
	return err
}

// runLoop samples the sensor once per tick and redraws the display when the
// classifier asks for it. It returns on deadline or context cancellation.
func runLoop(ctx context.Context, reader gpio.Reader, display lcd.Display, tr tracer, settings logic.Input, tick, deadline <-chan time.Time) (logic.Counts, error) {
	classifier := logic.NewClassifier()

	for {
		select {
		case <-ctx.Done():
			counts := classifier.Counts()
			logger.InfoKV(ctx, "shutting down", "reason", ctx.Err(), "counts", counts)
			return counts, nil

		case <-deadline:
			counts := classifier.Counts()
			logger.InfoKV(ctx, "run duration elapsed", "counts", counts)
			return counts, nil

		case <-tick:
			motion, err := reader.Read()
			if err != nil {
				logger.Warnf(ctx, "gpio read error: %v", err)
				continue
			}

			in := settings
			in.Motion = motion
			cmd := classifier.Process(in)
			if !cmd.Changed() {
				logger.Debugf(ctx, "motion=%t unchanged, excess count %d", motion, classifier.ExcessCount())
				continue
			}

			logger.InfoKV(ctx, "display", "command", cmd, "text", cmd.Text(), "excess_count", classifier.ExcessCount())
			if err := lcd.Show(display, cmd.Text()); err != nil {
				logger.Errorf(ctx, "display error: %v", err)
			}
			if tr != nil {
				if err := tr.Trace(cmd.Text()); err != nil {
					logger.WarnKV(ctx, "serial trace error", "text", cmd.Text(), "error", err)
				}
			}
		}
	}
}

func stateString(motion bool) string {
	if motion {
		return "MOTION"
	}
	return "NO MOTION"
}
