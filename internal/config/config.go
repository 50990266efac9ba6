// Package config loads the motion-display settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sweeney/motion-display/internal/gpio"
	"github.com/sweeney/motion-display/internal/lcd"
	"github.com/sweeney/motion-display/internal/logger"
	"github.com/sweeney/motion-display/internal/serialtrace"
)

// Display backends.
const (
	DisplayHD44780 = "hd44780"
	DisplayConsole = "console"
)

const (
	// DefaultTickPeriod is the interval between PIR samples.
	DefaultTickPeriod = time.Second
	// DefaultRunDuration stops the daemon after ten seconds.
	DefaultRunDuration = 10 * time.Second
)

var (
	errThresholdRange = errors.New("excess_threshold must be between 0 and 255")
	errTickPeriod     = errors.New("tick_period must be positive")
	errRunDuration    = errors.New("run_duration must not be negative")
	errDisplay        = errors.New("display must be hd44780 or console")
	errLogLevel       = errors.New("unknown log_level")
)

// Config holds the daemon settings.
type Config struct {
	// ExcessMode enables the "TM Motion" alert for sustained motion.
	ExcessMode bool `yaml:"excess_mode"`
	// ExcessThreshold is the number of consecutive motion ticks that raises the alert.
	ExcessThreshold int `yaml:"excess_threshold"`
	// TickPeriod is the sampling interval.
	TickPeriod time.Duration `yaml:"tick_period"`
	// RunDuration ends the process after this long; 0 runs until signalled.
	RunDuration time.Duration `yaml:"run_duration"`

	GPIOChip string `yaml:"gpio_chip"`
	PIRPin   int    `yaml:"pir_pin"`

	// Display selects the sink: hd44780 or console.
	Display     string              `yaml:"display"`
	LCD         lcd.PinConfig       `yaml:"lcd"`
	SerialTrace serialtrace.Options `yaml:"serial_trace"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickPeriod:  DefaultTickPeriod,
		RunDuration: DefaultRunDuration,
		GPIOChip:    gpio.DefaultChip,
		PIRPin:      gpio.DefaultPinPIR,
		Display:     DisplayHD44780,
		LCD:         lcd.DefaultPinConfig(),
		LogLevel:    "info",
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and fills zero values that have defaults.
func Validate(cfg *Config) error {
	if cfg.ExcessThreshold < 0 || cfg.ExcessThreshold > math.MaxUint8 {
		return fmt.Errorf("%w: got %d", errThresholdRange, cfg.ExcessThreshold)
	}
	if cfg.TickPeriod <= 0 {
		return fmt.Errorf("%w: got %v", errTickPeriod, cfg.TickPeriod)
	}
	if cfg.RunDuration < 0 {
		return fmt.Errorf("%w: got %v", errRunDuration, cfg.RunDuration)
	}

	switch cfg.Display {
	case "":
		cfg.Display = DisplayHD44780
	case DisplayHD44780, DisplayConsole:
	default:
		return fmt.Errorf("%w: got %q", errDisplay, cfg.Display)
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errLogLevel, cfg.LogLevel)
	}

	if cfg.GPIOChip == "" {
		cfg.GPIOChip = gpio.DefaultChip
	}
	if cfg.LCD.Chip == "" {
		cfg.LCD.Chip = cfg.GPIOChip
	}

	if cfg.SerialTrace.Device != "" {
		opts, err := cfg.SerialTrace.Normalize()
		if err != nil {
			return fmt.Errorf("serial_trace: %w", err)
		}
		cfg.SerialTrace = opts
	}
	return nil
}

// Threshold returns ExcessThreshold as the classifier's counter type.
// Validate must have accepted cfg.
func (c *Config) Threshold() uint8 {
	return uint8(c.ExcessThreshold)
}
