package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		glyphs  map[rune]Raster
		wantErr bool
	}{
		{
			name:   "valid table",
			glyphs: map[rune]Raster{'a': Parse("#.", ".#"), 'b': Parse("#", "#")},
		},
		{
			name:    "empty table",
			glyphs:  map[rune]Raster{},
			wantErr: true,
		},
		{
			name:    "empty raster",
			glyphs:  map[rune]Raster{'a': {}},
			wantErr: true,
		},
		{
			name:    "ragged raster",
			glyphs:  map[rune]Raster{'a': Parse("##", "#")},
			wantErr: true,
		},
		{
			name:    "mixed heights",
			glyphs:  map[rune]Raster{'a': Parse("#", "#"), 'b': Parse("#")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New("test", tt.glyphs)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRaster)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, table.Height())
		})
	}
}

func TestLookupFallback(t *testing.T) {
	table, err := New("test", map[rune]Raster{
		'a': Parse("#.", ".#"),
		'?': Parse("##", "##"),
	})
	require.NoError(t, err)

	assert.Equal(t, Parse("#.", ".#"), table.Lookup('a', '?'))
	assert.Equal(t, Parse("##", "##"), table.Lookup('z', '?'), "unknown substitute")

	// neither the rune, the substitute nor Block exist
	block := table.Lookup('z', '!')
	require.Equal(t, 2, block.Height())
	for row := 0; row < block.Height(); row++ {
		for col := 0; col < block.Width(); col++ {
			assert.True(t, block.Lit(row, col))
		}
	}
}

func TestFont5(t *testing.T) {
	table := Font5()
	assert.Equal(t, 5, table.Height())
	assert.Equal(t, "font5", table.Name())

	for _, r := range "09azAZ.:!█¬@€" {
		assert.True(t, table.Has(r), "missing %q", r)
	}

	assert.Equal(t, Parse("#..", "#..", "#..", "#..", "###"), table.Lookup('L', Block))
	assert.Equal(t, Parse(".", ".", ".", ".", "#"), table.Lookup('.', Block))
	assert.Equal(t, 5, table.Lookup('¶', Block).Width(), "unknown falls back to block")
}

func TestBasic7x13(t *testing.T) {
	table, err := Basic7x13()
	require.NoError(t, err)
	assert.Equal(t, 13, table.Height())

	raster := table.Lookup('A', Block)
	assert.Equal(t, 7, raster.Width())

	lit := 0
	for row := range raster {
		for col := range raster[row] {
			if raster.Lit(row, col) {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)

	space := table.Lookup(' ', Block)
	for row := range space {
		for col := range space[row] {
			assert.False(t, space.Lit(row, col))
		}
	}
}

func TestNamed(t *testing.T) {
	table, err := Named("", 0)
	require.NoError(t, err)
	assert.Equal(t, "font5", table.Name())

	_, err = Named("/does/not/exist.ttf", 8)
	assert.Error(t, err)
}
