package display

import "github.com/fcurrie/matrix-display-golang/pkg/canvas"

// SerpentineIndex returns the strip position of row, col on a matrix wired
// as one strip that runs left to right on even rows and right to left on
// odd rows. It returns -1 outside the matrix.
func SerpentineIndex(row, col, rows, cols int) int {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return -1
	}
	if row%2 == 0 {
		return row*cols + col
	}
	return row*cols + (cols - 1 - col)
}

// PackGRB packs a pixel into the 0x00RRGGBB word WS281x drivers expect
func PackGRB(c canvas.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// serpentineFrame flattens a frame into strip order
func serpentineFrame(frame *canvas.Canvas, leds []uint32) {
	rows, cols := frame.Height(), frame.Width()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if i := SerpentineIndex(row, col, rows, cols); i >= 0 && i < len(leds) {
				leds[i] = PackGRB(frame.At(row, col))
			}
		}
	}
}
