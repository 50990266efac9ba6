// Package gpio provides PIR sensor input reading with hardware abstraction.
// The real implementation uses Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the PIR sensor output.
type Reader interface {
	// Read returns true while the sensor reports motion.
	// The HC-SR501 output is active high: raw 1 = motion.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Defaults (BCM numbering)
const (
	DefaultChip   = "gpiochip0"
	DefaultPinPIR = 4
)
