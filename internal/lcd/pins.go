package lcd

// PinConfig names the BCM offsets of the LCD lines on a GPIO chip.
type PinConfig struct {
	// Chip defaults to the PIR sensor's chip when empty.
	Chip string `yaml:"chip"`
	RS   int    `yaml:"rs"`
	E    int    `yaml:"e"`
	D4   int    `yaml:"d4"`
	D5   int    `yaml:"d5"`
	D6   int    `yaml:"d6"`
	D7   int    `yaml:"d7"`
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

// DefaultPinConfig is the common Pi wiring for a 1602 module in 4-bit mode.
func DefaultPinConfig() PinConfig {
	return PinConfig{
		RS:   25,
		E:    24,
		D4:   23,
		D5:   17,
		D6:   18,
		D7:   22,
		Cols: DefaultCols,
		Rows: DefaultRows,
	}
}

func (p PinConfig) offsets() []int {
	return []int{p.RS, p.E, p.D4, p.D5, p.D6, p.D7}
}
