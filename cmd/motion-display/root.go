package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sweeney/motion-display/internal/config"
	"github.com/sweeney/motion-display/internal/logger"
)

// flags mirrors the config keys that can be overridden on the command line.
type flags struct {
	configPath      string
	excessMode      bool
	excessThreshold int
	tick            time.Duration
	duration        time.Duration
	pin             int
	display         string
	serialDevice    string
	serialBaud      int
	logLevel        string
	printState      bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "motion-display",
		Short: "Show PIR motion state on a character LCD.",
		Long: `Polls a PIR motion sensor once per tick and shows "Motion", "No Motion"
or, with --excess-mode, "TM Motion" after --excess-threshold consecutive
motion ticks. The display is only redrawn when the state changes.

Exits after --duration (0 runs until SIGINT or SIGTERM).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if err := f.apply(cmd.Flags(), cfg); err != nil {
				return err
			}

			lvl, _ := logger.ParseLogLevel(cfg.LogLevel)
			logger.SetLevel(lvl)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logger.WithName(ctx, "motion-display")

			return run(ctx, cfg, realHardware(), f.printState, cmd.OutOrStdout())
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func (f *flags) register(fl *pflag.FlagSet) {
	fl.StringVarP(&f.configPath, "config", "c", "", "path to YAML configuration file")
	fl.BoolVar(&f.excessMode, "excess-mode", false, "show TM Motion after sustained motion")
	fl.IntVar(&f.excessThreshold, "excess-threshold", 0, "consecutive motion ticks before TM Motion (0-255)")
	fl.DurationVar(&f.tick, "tick", config.DefaultTickPeriod, "sensor polling interval")
	fl.DurationVar(&f.duration, "duration", config.DefaultRunDuration, "exit after this long (0 to run until signalled)")
	fl.IntVar(&f.pin, "pin", 0, "BCM pin of the PIR output")
	fl.StringVar(&f.display, "display", "", "display backend: hd44780 or console")
	fl.StringVar(&f.serialDevice, "serial", "", "serial device to echo display changes to")
	fl.IntVar(&f.serialBaud, "serial-baud", 0, "serial trace baud rate")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.BoolVar(&f.printState, "print-state", false, "print current sensor state and exit")
}

// apply copies explicitly set flags over cfg and revalidates it.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("excess-mode") {
		cfg.ExcessMode = f.excessMode
	}
	if fs.Changed("excess-threshold") {
		cfg.ExcessThreshold = f.excessThreshold
	}
	if fs.Changed("tick") {
		cfg.TickPeriod = f.tick
	}
	if fs.Changed("duration") {
		cfg.RunDuration = f.duration
	}
	if fs.Changed("pin") {
		cfg.PIRPin = f.pin
	}
	if fs.Changed("display") {
		cfg.Display = f.display
	}
	if fs.Changed("serial") {
		cfg.SerialTrace.Device = f.serialDevice
	}
	if fs.Changed("serial-baud") {
		cfg.SerialTrace.BaudRate = f.serialBaud
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
