package glyph

import "sync"

var (
	font5Once  sync.Once
	font5Table *Table
)

// Font5 returns the built-in 5 row table. It holds digits, both letter cases,
// common punctuation, currency signs and Block.
func Font5() *Table {
	font5Once.Do(func() {
		glyphs := make(map[rune]Raster, len(font5))
		for r, rows := range font5 {
			glyphs[r] = Parse(rows...)
		}
		t, err := New("font5", glyphs)
		if err != nil {
			panic(err)
		}
		font5Table = t
	})
	return font5Table
}
