package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a raw 8-bit colour triple. It implements image/color.Color as a
// fully opaque colour.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Lit reports whether any channel is non-zero
func (c RGB) Lit() bool {
	return c.R != 0 || c.G != 0 || c.B != 0
}

// Scale multiplies every channel by level/255
func (c RGB) Scale(level uint8) RGB {
	return RGB{
		R: uint8(uint16(c.R) * uint16(level) / 255),
		G: uint8(uint16(c.G) * uint16(level) / 255),
		B: uint8(uint16(c.B) * uint16(level) / 255),
	}
}

// String returns the colour as #rrggbb
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette colours
var (
	Black = RGB{0, 0, 0}

	Red  = RGB{255, 0, 0}
	Lime = RGB{0, 255, 0}
	Blue = RGB{0, 0, 255}

	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Yellow  = RGB{255, 255, 0}

	Maroon = RGB{128, 0, 0}
	Green  = RGB{0, 128, 0}
	Navy   = RGB{0, 0, 128}

	Teal   = RGB{0, 128, 128}
	Purple = RGB{128, 0, 128}
	Olive  = RGB{128, 128, 0}

	Orange = RGB{255, 165, 0}

	Gray   = RGB{128, 128, 128}
	Silver = RGB{192, 192, 192}
	White  = RGB{255, 255, 255}
)

var palette = map[string]RGB{
	"black":   Black,
	"red":     Red,
	"lime":    Lime,
	"blue":    Blue,
	"cyan":    Cyan,
	"magenta": Magenta,
	"yellow":  Yellow,
	"maroon":  Maroon,
	"green":   Green,
	"navy":    Navy,
	"teal":    Teal,
	"purple":  Purple,
	"olive":   Olive,
	"orange":  Orange,
	"gray":    Gray,
	"grey":    Gray,
	"silver":  Silver,
	"white":   White,
}

// ParseColor accepts a palette name (case-insensitive) or a #rrggbb hex
// string.
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := palette[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return RGB{}, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
