// Package display provides the matrices rows are drawn onto: an in-memory
// framebuffer, a terminal emulation, HUB75 panels driven over GPIO, an SDL
// window and WS281x strips.
package display

import (
	"fmt"
	"sync"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// MaxBrightness is full brightness
const MaxBrightness = 255

// Framebuffer stages pixels in memory. Used on its own it is the null
// display; the other displays embed it and output its pixels on Show.
type Framebuffer struct {
	mu         sync.Mutex
	rows, cols int
	brightness int
	rotation   int
	pixels     *canvas.Canvas
}

// NewFramebuffer creates a framebuffer for a physical matrix of rows x cols
func NewFramebuffer(rows, cols int) *Framebuffer {
	return &Framebuffer{
		rows:       rows,
		cols:       cols,
		brightness: MaxBrightness,
		pixels:     canvas.New(canvas.WithRows(rows), canvas.WithLeftPad(cols)),
	}
}

// Size returns the dimensions as seen after rotation
func (f *Framebuffer) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rotation == 90 || f.rotation == 270 {
		return f.cols, f.rows
	}
	return f.rows, f.cols
}

// Clear sets all pixels to black
func (f *Framebuffer) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pixels = canvas.New(canvas.WithRows(f.rows), canvas.WithLeftPad(f.cols))
	return nil
}

// SetPixel stages a pixel. Coordinates outside the matrix are ignored.
func (f *Framebuffer) SetPixel(row, col int, c canvas.RGB) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, cl := f.physical(row, col)
	f.pixels.Set(r, cl, c)
	return nil
}

// physical maps a rotated coordinate onto the unrotated matrix
func (f *Framebuffer) physical(row, col int) (int, int) {
	switch f.rotation {
	case 90:
		return col, f.cols - 1 - row
	case 180:
		return f.rows - 1 - row, f.cols - 1 - col
	case 270:
		return f.rows - 1 - col, row
	default:
		return row, col
	}
}

// Show does nothing; a bare framebuffer has no output
func (f *Framebuffer) Show() error {
	return nil
}

// Close does nothing
func (f *Framebuffer) Close() error {
	return nil
}

// SetBrightness sets the level, 0-255, all pixels are scaled by
func (f *Framebuffer) SetBrightness(brightness int) error {
	if brightness < 0 || brightness > MaxBrightness {
		return fmt.Errorf("brightness must be between 0 and %d", MaxBrightness)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.brightness = brightness
	return nil
}

// Brightness returns the current brightness
func (f *Framebuffer) Brightness() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brightness
}

// SetRotation rotates the output clockwise by 0, 90, 180 or 270 degrees.
// Staged pixels are kept where they are on the physical matrix.
func (f *Framebuffer) SetRotation(degrees int) error {
	switch degrees {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("rotation must be 0, 90, 180 or 270, got %d", degrees)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotation = degrees
	return nil
}

// Pixel returns the physical pixel at row, col with brightness applied
func (f *Framebuffer) Pixel(row, col int) canvas.RGB {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixels.At(row, col).Scale(uint8(f.brightness))
}

// Frame returns a copy of the physical matrix with brightness applied
func (f *Framebuffer) Frame() *canvas.Canvas {
	f.mu.Lock()
	defer f.mu.Unlock()

	frame := f.pixels.Clone()
	if f.brightness == MaxBrightness {
		return frame
	}
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			frame.Set(row, col, frame.At(row, col).Scale(uint8(f.brightness)))
		}
	}
	return frame
}
