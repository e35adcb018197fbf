// Package glyph maps characters to small binary rasters used to draw text on
// an LED matrix.
package glyph

import (
	"errors"
	"fmt"
)

// Block is the fully lit glyph used when neither a character nor its
// substitute exist in a table.
const Block = '█'

// ErrInvalidRaster is returned when a glyph raster is empty, not rectangular,
// or does not share the table's row count.
var ErrInvalidRaster = errors.New("invalid glyph raster")

// Raster is a glyph bitmap indexed [row][col]; non-zero cells are lit.
type Raster [][]uint8

// Height returns the number of rows in the raster
func (r Raster) Height() int {
	return len(r)
}

// Width returns the number of columns in the raster
func (r Raster) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Lit reports whether the cell at row, col is lit
func (r Raster) Lit(row, col int) bool {
	return r[row][col] != 0
}

// Parse builds a raster from row strings where '#' marks a lit pixel and any
// other byte is unlit.
func Parse(rows ...string) Raster {
	raster := make(Raster, len(rows))
	for i, row := range rows {
		raster[i] = make([]uint8, len(row))
		for j := 0; j < len(row); j++ {
			if row[j] == '#' {
				raster[i][j] = 1
			}
		}
	}
	return raster
}

// Table is a character to raster lookup where every raster has the same
// number of rows.
type Table struct {
	name   string
	height int
	glyphs map[rune]Raster
	block  Raster
}

// New creates a glyph table, validating that every raster is non-empty,
// rectangular and of equal height.
func New(name string, glyphs map[rune]Raster) (*Table, error) {
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("glyph table %q is empty: %w", name, ErrInvalidRaster)
	}

	height := -1
	for r, raster := range glyphs {
		if raster.Height() == 0 || raster.Width() == 0 {
			return nil, fmt.Errorf("glyph %q in table %q has no pixels: %w", r, name, ErrInvalidRaster)
		}
		for _, row := range raster {
			if len(row) != raster.Width() {
				return nil, fmt.Errorf("glyph %q in table %q is not rectangular: %w", r, name, ErrInvalidRaster)
			}
		}
		if height == -1 {
			height = raster.Height()
		}
		if raster.Height() != height {
			return nil, fmt.Errorf("glyph %q in table %q has %d rows, want %d: %w",
				r, name, raster.Height(), height, ErrInvalidRaster)
		}
	}

	block := make(Raster, height)
	for i := range block {
		block[i] = make([]uint8, height)
		for j := range block[i] {
			block[i][j] = 1
		}
	}

	return &Table{
		name:   name,
		height: height,
		glyphs: glyphs,
		block:  block,
	}, nil
}

// Name returns the table's name
func (t *Table) Name() string {
	return t.name
}

// Height returns the row count shared by every glyph in the table
func (t *Table) Height() int {
	return t.height
}

// Has reports whether the table contains a glyph for r
func (t *Table) Has(r rune) bool {
	_, ok := t.glyphs[r]
	return ok
}

// Lookup returns the raster for r. Missing characters fall back to unknown,
// then to Block, then to a synthesised square block, so Lookup always
// returns a raster of the table's height.
func (t *Table) Lookup(r, unknown rune) Raster {
	if raster, ok := t.glyphs[r]; ok {
		return raster
	}
	if raster, ok := t.glyphs[unknown]; ok {
		return raster
	}
	if raster, ok := t.glyphs[Block]; ok {
		return raster
	}
	return t.block
}
