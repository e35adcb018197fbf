package conveyor

import (
	"errors"
	"fmt"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
	"github.com/fcurrie/matrix-display-golang/pkg/glyph"
)

// ErrUnsupportedContent is returned when content resolves to a value that is
// not text, coloured text or a canvas.
var ErrUnsupportedContent = errors.New("unsupported content type")

// Content is the definition of a row's content. It is one of Text, Colored,
// List, Func or Block.
type Content interface {
	content()
}

// Text is drawn in white
type Text string

// Colored is text drawn in a colour
type Colored struct {
	Text  string
	Color canvas.RGB
}

// List is drawn item by item from left to right
type List []Content

// Func generates content each time the row is rendered. It receives the
// arguments given to AddRow.
type Func func(args ...any) (Content, error)

// Block is a pre-drawn canvas
type Block struct {
	Canvas *canvas.Canvas
}

func (Text) content()    {}
func (Colored) content() {}
func (List) content()    {}
func (Func) content()    {}
func (Block) content()   {}

// FromCanvas wraps c as content
func FromCanvas(c *canvas.Canvas) Content {
	return Block{Canvas: c}
}

// regenerable reports whether content contains a Func anywhere, so that
// rendering it again may give a different result.
func regenerable(c Content) bool {
	switch v := c.(type) {
	case Func:
		return true
	case List:
		for _, item := range v {
			if regenerable(item) {
				return true
			}
		}
	}
	return false
}

// renderer turns content into a canvas. height is -1 until the first render
// has fixed it.
type renderer struct {
	content Content
	args    []any
	glyphs  *glyph.Table
	width   int
	height  int
}

// render draws the content. On the first render the canvas takes its height
// from the first terminal value: a block's own height or the glyph height.
// Later renders keep that height and truncate taller blocks.
func (r *renderer) render() (*canvas.Canvas, error) {
	first := r.height < 0
	rows := r.height
	if first {
		rows = 0
	}
	c := canvas.New(canvas.WithGlyphs(r.glyphs), canvas.WithRows(rows))

	if err := r.process(c, r.content, first); err != nil {
		return nil, err
	}

	if c.Width() > r.width {
		padded := canvas.New(
			canvas.WithGlyphs(r.glyphs),
			canvas.WithRows(c.Height()),
			canvas.WithLeftPad(r.width),
		)
		if err := padded.AppendCanvas(c); err != nil {
			return nil, err
		}
		c = padded
	}
	return c, nil
}

func (r *renderer) process(c *canvas.Canvas, value Content, first bool) error {
	switch v := value.(type) {
	case List:
		for _, item := range v {
			if err := r.process(c, item, first); err != nil {
				return err
			}
		}
		return nil
	case Func:
		if v == nil {
			return fmt.Errorf("nil content func: %w", ErrUnsupportedContent)
		}
		generated, err := v(r.args...)
		if err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}
		return r.process(c, generated, first)
	case Text:
		r.size(c, 0, first)
		return c.AppendText(string(v), canvas.White)
	case Colored:
		r.size(c, 0, first)
		return c.AppendText(v.Text, v.Color)
	case Block:
		if v.Canvas == nil {
			return fmt.Errorf("nil canvas: %w", ErrUnsupportedContent)
		}
		r.size(c, v.Canvas.Height(), first)
		block := v.Canvas
		if !first && block.Height() > c.Height() {
			block = block.Clone()
			if err := block.DeleteRows(block.Height() - c.Height()); err != nil {
				return err
			}
		}
		return c.AppendCanvas(block)
	default:
		return fmt.Errorf("%T: %w", value, ErrUnsupportedContent)
	}
}

// size gives an empty canvas its rows on the first render. blockRows is 0
// for text.
func (r *renderer) size(c *canvas.Canvas, blockRows int, first bool) {
	if !first || c.Height() != 0 {
		return
	}
	if blockRows > 0 {
		c.AddRows(blockRows, c.Pad())
		return
	}
	c.AddRows(r.glyphs.Height(), c.Pad())
}
