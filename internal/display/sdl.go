//go:build sdl

package display

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL shows the matrix in a window, each pixel drawn as a scale x scale
// square. It must be created and shown from the same goroutine.
type SDL struct {
	*Framebuffer

	scale    int32
	window   *sdl.Window
	renderer *sdl.Renderer
}

// NewSDL opens a window for a rows x cols matrix
func NewSDL(rows, cols, scale int) (*SDL, error) {
	if scale < 1 {
		scale = 1
	}

	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow("matrix-display",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cols*scale), int32(rows*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %v", err)
	}

	return &SDL{
		Framebuffer: NewFramebuffer(rows, cols),
		scale:       int32(scale),
		window:      window,
		renderer:    renderer,
	}, nil
}

// Show draws the staged pixels. It returns ErrClosed once the window has
// been closed.
func (s *SDL) Show() error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return ErrClosed
		}
	}

	_ = s.renderer.SetDrawColor(0, 0, 0, 255)
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear window: %v", err)
	}

	frame := s.Frame()
	for row := 0; row < frame.Height(); row++ {
		for col := 0; col < frame.Width(); col++ {
			px := frame.At(row, col)
			if !px.Lit() {
				continue
			}
			_ = s.renderer.SetDrawColor(px.R, px.G, px.B, 255)
			rect := &sdl.Rect{X: int32(col) * s.scale, Y: int32(row) * s.scale, W: s.scale, H: s.scale}
			if err := s.renderer.FillRect(rect); err != nil {
				return fmt.Errorf("failed to draw pixel: %v", err)
			}
		}
	}

	s.renderer.Present()
	return nil
}

// Close destroys the window
func (s *SDL) Close() error {
	if s.renderer != nil {
		_ = s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		_ = s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()
	return nil
}
