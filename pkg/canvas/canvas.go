// Package canvas implements a mutable pixel matrix that is built up by
// appending rasterised text and other canvases from left to right.
package canvas

import (
	"errors"
	"fmt"

	"github.com/fcurrie/matrix-display-golang/pkg/glyph"
)

var (
	// ErrSizeMismatch is returned when text is appended to a canvas whose row
	// count differs from the glyph table height.
	ErrSizeMismatch = errors.New("glyph height does not match canvas row count")
	// ErrRowCountExceeds is returned when appending a canvas taller than the
	// target.
	ErrRowCountExceeds = errors.New("appended canvas row count exceeds target")
	// ErrDeleteUnderflow is returned when deleting more rows than exist.
	ErrDeleteUnderflow = errors.New("delete count exceeds canvas row count")
)

// Canvas is a matrix of RGB pixels indexed [row][col]. Every public method
// leaves all rows the same length.
type Canvas struct {
	rows [][]RGB

	// appendSpace is 0 until the first append, then 1: every later append is
	// preceded by one pad column.
	appendSpace int

	pad     RGB
	glyphs  *glyph.Table
	unknown rune
}

type options struct {
	rows    int
	rowsSet bool
	lpad    int
	pad     RGB
	glyphs  *glyph.Table
	unknown rune
}

// Option configures a new canvas
type Option func(*options)

// WithRows sets the row count. Without it the canvas has as many rows as
// its glyph table is high.
func WithRows(n int) Option {
	return func(o *options) {
		o.rows = n
		o.rowsSet = true
	}
}

// WithLeftPad pre-fills every row with n pad columns
func WithLeftPad(n int) Option {
	return func(o *options) {
		o.lpad = n
	}
}

// WithPad sets the pad colour used for padding and unlit glyph pixels
func WithPad(c RGB) Option {
	return func(o *options) {
		o.pad = c
	}
}

// WithGlyphs sets the glyph table used by AppendText
func WithGlyphs(t *glyph.Table) Option {
	return func(o *options) {
		o.glyphs = t
	}
}

// WithUnknown sets the character drawn in place of characters missing from
// the glyph table
func WithUnknown(r rune) Option {
	return func(o *options) {
		o.unknown = r
	}
}

// New creates a canvas. By default it uses glyph.Font5, black padding, no
// columns and as many rows as the glyph table is high.
func New(opts ...Option) *Canvas {
	o := options{
		pad:     Black,
		unknown: glyph.Block,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.glyphs == nil {
		o.glyphs = glyph.Font5()
	}
	if !o.rowsSet {
		o.rows = o.glyphs.Height()
	}
	if o.rows < 0 {
		o.rows = 0
	}
	if o.lpad < 0 {
		o.lpad = 0
	}

	rows := make([][]RGB, o.rows)
	for i := range rows {
		rows[i] = filled(o.lpad, o.pad)
	}

	return &Canvas{
		rows:    rows,
		pad:     o.pad,
		glyphs:  o.glyphs,
		unknown: o.unknown,
	}
}

func filled(n int, c RGB) []RGB {
	row := make([]RGB, n)
	for i := range row {
		row[i] = c
	}
	return row
}

// Height returns the number of rows
func (c *Canvas) Height() int {
	return len(c.rows)
}

// Width returns the number of columns, 0 for a canvas without rows
func (c *Canvas) Width() int {
	if len(c.rows) == 0 {
		return 0
	}
	return len(c.rows[0])
}

// Glyphs returns the canvas's glyph table
func (c *Canvas) Glyphs() *glyph.Table {
	return c.glyphs
}

// Pad returns the canvas's pad colour
func (c *Canvas) Pad() RGB {
	return c.pad
}

// At returns the pixel at row, col or the pad colour when out of range
func (c *Canvas) At(row, col int) RGB {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return c.pad
	}
	return c.rows[row][col]
}

// Set changes the pixel at row, col. Out of range coordinates are ignored.
func (c *Canvas) Set(row, col int, px RGB) {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return
	}
	c.rows[row][col] = px
}

// Clone returns a deep copy
func (c *Canvas) Clone() *Canvas {
	rows := make([][]RGB, len(c.rows))
	for i, row := range c.rows {
		rows[i] = append([]RGB(nil), row...)
	}
	return &Canvas{
		rows:        rows,
		appendSpace: c.appendSpace,
		pad:         c.pad,
		glyphs:      c.glyphs,
		unknown:     c.unknown,
	}
}

// AppendText draws text in colour c after the canvas's current content.
// Characters missing from the glyph table are drawn as the canvas's unknown
// character, or as a solid block.
func (c *Canvas) AppendText(text string, col RGB) error {
	if text == "" {
		return nil
	}
	if c.glyphs.Height() != len(c.rows) {
		return fmt.Errorf("table %s has %d rows, canvas has %d: %w",
			c.glyphs.Name(), c.glyphs.Height(), len(c.rows), ErrSizeMismatch)
	}

	for _, ch := range text {
		raster := c.glyphs.Lookup(ch, c.unknown)
		for i := range c.rows {
			if c.appendSpace == 1 {
				c.rows[i] = append(c.rows[i], c.pad)
			}
			for j := 0; j < raster.Width(); j++ {
				if raster.Lit(i, j) {
					c.rows[i] = append(c.rows[i], col)
				} else {
					c.rows[i] = append(c.rows[i], c.pad)
				}
			}
		}
		c.appendSpace = 1
	}
	return nil
}

// AppendCanvas appends other to the right of the current content, preceded
// by one pad column unless the canvas is still empty.
func (c *Canvas) AppendCanvas(other *Canvas) error {
	return c.AppendCanvasPad(other, c.appendSpace, c.pad)
}

// AppendCanvasPad appends other after lpad columns of pad. A shorter canvas
// is aligned to the top and the rows below it are filled with pad.
func (c *Canvas) AppendCanvasPad(other *Canvas, lpad int, pad RGB) error {
	if other.Height() > c.Height() {
		return fmt.Errorf("cannot append %d rows to %d: %w", other.Height(), c.Height(), ErrRowCountExceeds)
	}
	if other == c {
		other = c.Clone()
	}
	if lpad < 0 {
		lpad = 0
	}

	if other.Height() > 0 {
		width := c.Width() + lpad + other.Width()
		for i := range c.rows {
			if i < other.Height() {
				c.rows[i] = append(c.rows[i], filled(lpad, pad)...)
				c.rows[i] = append(c.rows[i], other.rows[i]...)
				continue
			}
			c.rows[i] = append(c.rows[i], filled(width-len(c.rows[i]), pad)...)
		}
	}

	c.appendSpace = 1
	return nil
}

// AddRows appends count rows at the bottom, filled to the current width
// with pad.
func (c *Canvas) AddRows(count int, pad RGB) {
	width := c.Width()
	for i := 0; i < count; i++ {
		c.rows = append(c.rows, filled(width, pad))
	}
}

// DeleteRows removes count rows from the bottom
func (c *Canvas) DeleteRows(count int) error {
	if count > len(c.rows) {
		return fmt.Errorf("cannot delete %d of %d rows: %w", count, len(c.rows), ErrDeleteUnderflow)
	}
	if count < 0 {
		count = 0
	}
	c.rows = c.rows[:len(c.rows)-count]
	return nil
}
