package glyph

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ASCII is the printable ASCII range, the default rune set for FromFace.
func ASCII() []rune {
	runes := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		runes = append(runes, r)
	}
	return runes
}

// FromFace rasterises runes from a font face into a table. A pixel is lit
// when the glyph mask covers at least half of it. Runes the face cannot draw
// are left out.
func FromFace(name string, face font.Face, runes []rune) (*Table, error) {
	if runes == nil {
		runes = ASCII()
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	if height <= 0 {
		return nil, fmt.Errorf("font face %q has no height: %w", name, ErrInvalidRaster)
	}

	glyphs := make(map[rune]Raster, len(runes))
	for _, r := range runes {
		dot := fixed.Point26_6{X: 0, Y: fixed.I(ascent)}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		width := advance.Ceil()
		if width <= 0 {
			continue
		}

		raster := make(Raster, height)
		for y := 0; y < height; y++ {
			raster[y] = make([]uint8, width)
			for x := 0; x < width; x++ {
				p := image.Pt(x, y)
				if mask == nil || !p.In(dr) {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					raster[y][x] = 1
				}
			}
		}
		glyphs[r] = raster
	}

	return New(name, glyphs)
}

// Basic7x13 returns a table built from the x/image 7x13 bitmap face.
func Basic7x13() (*Table, error) {
	return FromFace("basic7x13", basicfont.Face7x13, nil)
}

// LoadOpenType parses a TrueType or OpenType font file and rasterises its
// printable ASCII glyphs at the given point size (72 DPI, so points equal
// pixels).
func LoadOpenType(path string, size float64) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", path, err)
	}
	defer face.Close()

	return FromFace(path, face, nil)
}

// Named resolves a table by name: "font5", "basic7x13", or a path to a font
// file rendered at size points.
func Named(name string, size float64) (*Table, error) {
	switch name {
	case "", "font5":
		return Font5(), nil
	case "basic7x13":
		return Basic7x13()
	default:
		if size <= 0 {
			size = 8
		}
		return LoadOpenType(name, size)
	}
}
