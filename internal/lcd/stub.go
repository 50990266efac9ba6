//go:build !linux

package lcd

import "errors"

// OpenHD44780 returns an error on non-Linux platforms.
func OpenHD44780(cfg PinConfig) (*HD44780, error) {
	return nil, errors.New("lcd: hd44780 not supported on this platform (requires Linux)")
}
