//go:build !ws281x

package display

import "errors"

// Strip is only available in builds with the ws281x tag
type Strip struct {
	*Framebuffer
}

// NewStrip fails in builds without the ws281x tag
func NewStrip(rows, cols, gpioPin, brightness int) (*Strip, error) {
	return nil, errors.New("WS281x display not built in, rebuild with -tags ws281x")
}
