//go:build !sdl

package display

import "errors"

// SDL is only available in builds with the sdl tag
type SDL struct {
	*Framebuffer
}

// NewSDL fails in builds without the sdl tag
func NewSDL(rows, cols, scale int) (*SDL, error) {
	return nil, errors.New("SDL display not built in, rebuild with -tags sdl")
}
