package canvas

import (
	"strings"

	"github.com/fatih/color"
)

// Default characters for Render
const (
	PixelOn  = "█"
	PixelOff = " "
)

var (
	hiBlack   = forced(color.FgHiBlack)
	hiRed     = forced(color.FgHiRed)
	hiGreen   = forced(color.FgHiGreen)
	hiBlue    = forced(color.FgHiBlue)
	hiCyan    = forced(color.FgHiCyan)
	hiMagenta = forced(color.FgHiMagenta)
	hiYellow  = forced(color.FgHiYellow)
	hiWhite   = forced(color.FgHiWhite)
)

// forced returns a colour that always emits escape codes; callers choose
// whether colour is wanted, not the tty detection in fatih/color.
func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// termColour approximates px with one of the eight bright terminal colours
// by looking only at which channels are zero.
func termColour(px RGB) *color.Color {
	r, g, b := px.R > 0, px.G > 0, px.B > 0
	switch {
	case !r && !g && !b:
		return hiBlack
	case r && !g && !b:
		return hiRed
	case !r && g && !b:
		return hiGreen
	case !r && !g && b:
		return hiBlue
	case !r && g && b:
		return hiCyan
	case r && !g && b:
		return hiMagenta
	case r && g && !b:
		return hiYellow
	default:
		return hiWhite
	}
}

// Render returns one bracketed line per row. Lit pixels are drawn as on and
// black pixels as off; with showColour each lit pixel is wrapped in an
// approximating terminal colour escape. Lines are separated by '\n' with no
// trailing newline.
func (c *Canvas) Render(showColour bool, on, off string) string {
	var sb strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for _, px := range row {
			switch {
			case !px.Lit():
				sb.WriteString(off)
			case showColour:
				sb.WriteString(termColour(px).Sprint(on))
			default:
				sb.WriteString(on)
			}
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// String renders the canvas without colour
func (c *Canvas) String() string {
	return c.Render(false, PixelOn, PixelOff)
}
