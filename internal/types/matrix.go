package types

import "github.com/fcurrie/matrix-display-golang/pkg/canvas"

// Matrix represents a display matrix
type Matrix interface {
	// Size returns the fixed pixel dimensions of the matrix
	Size() (rows, cols int)
	// Clear sets every staged pixel to black
	Clear() error
	// SetPixel stages a pixel; out of range coordinates are ignored
	SetPixel(row, col int, c canvas.RGB) error
	// Show updates the display with the staged pixels
	Show() error
	// Close releases the matrix
	Close() error
}

// Dimmer is implemented by matrices with adjustable brightness
type Dimmer interface {
	SetBrightness(brightness int) error
}

// Rotator is implemented by matrices that can rotate their output
type Rotator interface {
	SetRotation(degrees int) error
}
