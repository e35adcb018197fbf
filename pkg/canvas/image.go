package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image returns the canvas as an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for y, row := range c.rows {
		for x, px := range row {
			img.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
	return img
}

// FromImage converts img into a canvas of width x height pixels, scaling
// with nearest neighbour sampling when the sizes differ. A width or height
// of zero keeps the image's own size. Transparent pixels become black.
func FromImage(img image.Image, width, height int, opts ...Option) *Canvas {
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	}

	opts = append(opts, WithRows(height), WithLeftPad(width))
	c := New(opts...)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// premultiplied alpha already darkens translucent pixels
			px := dst.RGBAAt(x, y)
			c.rows[y][x] = RGB{R: px.R, G: px.G, B: px.B}
		}
	}
	return c
}
