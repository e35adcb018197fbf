package generators

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcurrie/matrix-display-golang/internal/conveyor"
	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

var fixed = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.FixedZone("CET", 3600))

func fixedNow() time.Time { return fixed }

func TestClock(t *testing.T) {
	got, err := Clock(fixedNow)()
	require.NoError(t, err)
	assert.Equal(t, conveyor.List{
		conveyor.Colored{Text: "Tue 03 Mar", Color: canvas.Cyan},
		conveyor.Colored{Text: " 14:07:09", Color: canvas.Yellow},
		conveyor.Colored{Text: " CET +0100", Color: canvas.Green},
	}, got)
}

func TestSeconds(t *testing.T) {
	got, err := Seconds(fixedNow)()
	require.NoError(t, err)
	assert.Equal(t, conveyor.Colored{Text: "s:09", Color: canvas.Blue}, got)
}

func blockOf(t *testing.T, content conveyor.Content) *canvas.Canvas {
	t.Helper()
	b, ok := content.(conveyor.Block)
	require.True(t, ok, "%T", content)
	require.NotNil(t, b.Canvas)
	return b.Canvas
}

func TestSineWave(t *testing.T) {
	wave := SineWave()
	want := []canvas.RGB{canvas.Red, canvas.Green, canvas.Blue, canvas.Red}

	for i, colour := range want {
		got, err := wave(16, 6)
		require.NoError(t, err)
		c := blockOf(t, got)
		require.Equal(t, 6, c.Height())
		require.Equal(t, 32, c.Width(), "two periods")

		assert.Equal(t, colour, c.At(2, 0), "call %d", i)
		assert.Equal(t, colour, c.At(2, 16), "call %d", i)
		for col := 0; col < c.Width(); col++ {
			lit := 0
			for row := 0; row < c.Height(); row++ {
				if c.At(row, col).Lit() {
					lit++
				}
			}
			assert.Equal(t, 1, lit, "column %d", col)
		}
	}
}

func TestSineWaveStateIsPerGenerator(t *testing.T) {
	a, b := SineWave(), SineWave()
	_, err := a()
	require.NoError(t, err)

	got, err := b()
	require.NoError(t, err)
	assert.Equal(t, canvas.Red, blockOf(t, got).At(2, 0))
}

func TestRandomBlock(t *testing.T) {
	gen := RandomBlock(rand.New(rand.NewSource(1)))

	got, err := gen()
	require.NoError(t, err)
	c := blockOf(t, got)
	assert.Equal(t, 16, c.Height())
	assert.Equal(t, 16, c.Width())

	got, err = gen(4, 2)
	require.NoError(t, err)
	c = blockOf(t, got)
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, 4, c.Width())

	_, err = gen("wide")
	assert.Error(t, err)
	_, err = gen(0)
	assert.Error(t, err)
}

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestSVGIcon(t *testing.T) {
	c, err := SVGIcon(strings.NewReader(redSquare), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Height())
	assert.Equal(t, 4, c.Width())

	px := c.At(1, 1)
	assert.Greater(t, px.R, uint8(200))
	assert.Zero(t, px.G)
	assert.Zero(t, px.B)

	_, err = SVGIcon(strings.NewReader(redSquare), 0, 4)
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, "icon.svg")
	require.NoError(t, os.WriteFile(icon, []byte(redSquare), 0o644))

	tests := []struct {
		name     string
		cfg      types.RowConfig
		wantWait time.Duration
		wantArgs []any
		wantErr  bool
	}{
		{name: "text", cfg: types.RowConfig{Kind: "text", Text: "Hi"}, wantWait: 15 * time.Second},
		{name: "coloured text", cfg: types.RowConfig{Kind: "text", Text: "Hi", Color: "red", ReloadWait: types.Duration(time.Minute)}, wantWait: time.Minute},
		{name: "bad colour", cfg: types.RowConfig{Kind: "text", Text: "Hi", Color: "plaid"}, wantErr: true},
		{name: "segments", cfg: types.RowConfig{Kind: "segments", Segments: []types.SegmentConfig{{Text: "a", Color: "cyan"}, {Text: "b"}}}, wantWait: 15 * time.Second},
		{name: "clock", cfg: types.RowConfig{Kind: "clock"}, wantWait: 5 * time.Second},
		{name: "seconds", cfg: types.RowConfig{Kind: "seconds"}, wantWait: 250 * time.Millisecond},
		{name: "sine", cfg: types.RowConfig{Kind: "sine", Width: 16, Height: 6}, wantWait: time.Second, wantArgs: []any{16, 6}},
		{name: "random", cfg: types.RowConfig{Kind: "random", Width: 8}, wantWait: time.Second, wantArgs: []any{8}},
		{name: "svg", cfg: types.RowConfig{Kind: "svg", Path: icon, Width: 4}, wantWait: 15 * time.Second},
		{name: "missing svg", cfg: types.RowConfig{Kind: "svg", Path: filepath.Join(dir, "nope.svg")}, wantErr: true},
		{name: "unknown", cfg: types.RowConfig{Kind: "weather"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := FromConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, row.Content)
			assert.Equal(t, tt.wantWait, row.ReloadWait)
			assert.Equal(t, tt.wantArgs, row.Args)
		})
	}
}

func TestFromConfigRendersOnConveyor(t *testing.T) {
	c := conveyor.New(nullMatrix{rows: 16, cols: 16})
	for _, kind := range []string{"sine", "clock", "seconds"} {
		row, err := FromConfig(types.RowConfig{Kind: kind, Width: 16, Height: 6})
		require.NoError(t, err)
		if kind != "sine" {
			row.Args = nil
		}
		ok, err := c.AddRow(row.Content, row.ReloadWait, row.Args...)
		require.NoError(t, err, kind)
		assert.True(t, ok, kind)
	}
	assert.Equal(t, 0, c.Capacity())
	require.NoError(t, c.Frame())
}

type nullMatrix struct{ rows, cols int }

func (m nullMatrix) Size() (int, int)                  { return m.rows, m.cols }
func (nullMatrix) Clear() error                        { return nil }
func (nullMatrix) SetPixel(int, int, canvas.RGB) error { return nil }
func (nullMatrix) Show() error                         { return nil }
func (nullMatrix) Close() error                        { return nil }
