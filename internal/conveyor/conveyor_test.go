package conveyor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// recorder is a Matrix that keeps the last value written to each pixel
type recorder struct {
	rows, cols int
	pixels     map[[2]int]canvas.RGB
	shows      *atomic.Int64
}

func newRecorder(rows, cols int) *recorder {
	return &recorder{
		rows:   rows,
		cols:   cols,
		pixels: make(map[[2]int]canvas.RGB),
		shows:  atomic.NewInt64(0),
	}
}

func (r *recorder) Size() (int, int) { return r.rows, r.cols }
func (r *recorder) Clear() error {
	r.pixels = make(map[[2]int]canvas.RGB)
	return nil
}
func (r *recorder) SetPixel(row, col int, c canvas.RGB) error {
	r.pixels[[2]int{row, col}] = c
	return nil
}
func (r *recorder) Show() error {
	r.shows.Inc()
	return nil
}
func (r *recorder) Close() error { return nil }

func (r *recorder) at(row, col int) canvas.RGB {
	return r.pixels[[2]int{row, col}]
}

func block(rows, cols int, c canvas.RGB) *canvas.Canvas {
	return canvas.New(canvas.WithRows(rows), canvas.WithLeftPad(cols), canvas.WithPad(c))
}

func TestAddRowCapacity(t *testing.T) {
	c := New(newRecorder(16, 16))
	assert.Equal(t, 16, c.Capacity())

	for i := 0; i < 3; i++ {
		ok, err := c.AddRow(Text("abc"), time.Second)
		require.NoError(t, err)
		require.True(t, ok, "row %d", i)
	}
	assert.Equal(t, 1, c.Capacity())

	ok, err := c.AddRow(FromCanvas(block(2, 4, canvas.Red)), time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Capacity())
	assert.Len(t, c.Sources(), 3)
}

func TestAddRowUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		content Content
	}{
		{name: "nil", content: nil},
		{name: "nil in list", content: List{Text("a"), nil}},
		{name: "nil canvas", content: Block{}},
		{name: "nil func", content: Func(nil)},
		{name: "func returning nil", content: Func(func(...any) (Content, error) { return nil, nil })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(newRecorder(16, 16))
			ok, err := c.AddRow(tt.content, time.Second)
			require.ErrorIs(t, err, ErrUnsupportedContent)
			assert.False(t, ok)
			assert.Equal(t, 16, c.Capacity())
		})
	}
}

func TestAddRowGeneratorError(t *testing.T) {
	boom := errors.New("boom")
	c := New(newRecorder(16, 16))
	ok, err := c.AddRow(Func(func(...any) (Content, error) { return nil, boom }), time.Second)
	require.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestAddRowArgs(t *testing.T) {
	var got []any
	gen := Func(func(args ...any) (Content, error) {
		got = args
		return Text(fmt.Sprint(args...)), nil
	})

	c := New(newRecorder(16, 16))
	ok, err := c.AddRow(gen, time.Second, "a", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{"a", 1}, got)
}

func TestRenderHeight(t *testing.T) {
	tests := []struct {
		name       string
		content    Content
		wantHeight int
	}{
		{name: "text", content: Text("Hi"), wantHeight: 5},
		{name: "coloured", content: Colored{Text: "Hi", Color: canvas.Red}, wantHeight: 5},
		{name: "block first", content: List{FromCanvas(block(3, 2, canvas.Red))}, wantHeight: 3},
		{name: "nested list", content: List{List{Text("a")}, Colored{Text: "b", Color: canvas.Blue}}, wantHeight: 5},
		{name: "shorter block after text", content: List{Text("a"), FromCanvas(block(2, 2, canvas.Red))}, wantHeight: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(newRecorder(16, 16))
			ok, err := c.AddRow(tt.content, time.Second)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantHeight, c.Sources()[0].Height())
			assert.Equal(t, 16-tt.wantHeight, c.Capacity())
		})
	}
}

func TestTextAfterTallerBlock(t *testing.T) {
	c := New(newRecorder(16, 16))
	_, err := c.AddRow(List{FromCanvas(block(6, 2, canvas.Red)), Text("a")}, time.Second)
	require.ErrorIs(t, err, canvas.ErrSizeMismatch)
}

func TestScrollIdle(t *testing.T) {
	c := New(newRecorder(16, 16))
	ok, err := c.AddRow(Text("Hi"), time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Advance())
		assert.Equal(t, 0, s.ScrollPtr())
	}
}

func TestScrollWrap(t *testing.T) {
	c := New(newRecorder(16, 16))
	ok, err := c.AddRow(Text("Hello, World!"), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	width := s.Canvas().Width()
	assert.Equal(t, 16+45, width, "scrolling rows are padded by the display width")

	for cycle := 0; cycle < 2; cycle++ {
		for i := 1; i <= width; i++ {
			require.NoError(t, s.Advance())
			require.Equal(t, i, s.ScrollPtr())
		}
		require.NoError(t, s.Advance())
		require.Equal(t, 0, s.ScrollPtr())
	}
}

func counter() (Func, *atomic.Int64) {
	calls := atomic.NewInt64(0)
	return func(...any) (Content, error) {
		n := calls.Inc()
		return Text(fmt.Sprintf("%d", n%10)), nil
	}, calls
}

func TestReloadTiming(t *testing.T) {
	gen, calls := counter()
	c := New(newRecorder(16, 16), WithTickInterval(time.Second))
	ok, err := c.AddRow(gen, 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 1, calls.Load())

	s := c.Sources()[0]
	first := s.Canvas()
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Advance())
	}
	assert.EqualValues(t, 1, calls.Load(), "not before the fifth tick")
	assert.Same(t, first, s.Canvas())

	require.NoError(t, s.Advance())
	assert.EqualValues(t, 2, calls.Load())
	assert.NotSame(t, first, s.Canvas())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Advance())
	}
	assert.EqualValues(t, 3, calls.Load())
}

func TestStaticNeverReloads(t *testing.T) {
	c := New(newRecorder(16, 16), WithTickInterval(time.Second))
	ok, err := c.AddRow(Text("Hi"), time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	first := s.Canvas()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Advance())
	}
	assert.Same(t, first, s.Canvas())
}

func TestReloadOnlyAtWrap(t *testing.T) {
	calls := atomic.NewInt64(0)
	gen := Func(func(...any) (Content, error) {
		calls.Inc()
		return Text("Hello, World!"), nil
	})

	c := New(newRecorder(16, 16), WithTickInterval(time.Second))
	ok, err := c.AddRow(gen, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	width := s.Canvas().Width()
	for i := 0; i < width; i++ {
		require.NoError(t, s.Advance())
	}
	assert.EqualValues(t, 1, calls.Load(), "no reload mid scroll")

	require.NoError(t, s.Advance())
	assert.Equal(t, 0, s.ScrollPtr())
	assert.EqualValues(t, 2, calls.Load())
}

func TestReloadKeepsHeight(t *testing.T) {
	tall := block(6, 3, canvas.Red)
	heights := []int{3, 6}
	n := 0
	gen := Func(func(...any) (Content, error) {
		h := heights[n%len(heights)]
		n++
		if h == tall.Height() {
			return FromCanvas(tall), nil
		}
		return FromCanvas(block(h, 3, canvas.Blue)), nil
	})

	c := New(newRecorder(16, 16), WithTickInterval(time.Second))
	ok, err := c.AddRow(gen, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	require.NoError(t, s.Advance())
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, s.Canvas().Height(), "taller content is truncated")
	assert.Equal(t, canvas.Red, s.Canvas().At(0, 0))
	assert.Equal(t, 6, tall.Height(), "generator canvas is left alone")
	assert.Equal(t, 13, c.Capacity())
}

func TestReloadError(t *testing.T) {
	boom := errors.New("boom")
	fail := false
	gen := Func(func(...any) (Content, error) {
		if fail {
			return nil, boom
		}
		return Text("a"), nil
	})

	c := New(newRecorder(16, 16), WithTickInterval(time.Second))
	ok, err := c.AddRow(gen, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	fail = true
	err = c.Frame()
	require.ErrorIs(t, err, boom)
}

func TestFrame(t *testing.T) {
	rec := newRecorder(8, 4)
	c := New(rec)

	top := block(2, 3, canvas.Red)
	top.Set(1, 2, canvas.Lime)
	ok, err := c.AddRow(FromCanvas(top), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.AddRow(FromCanvas(block(1, 4, canvas.Blue)), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.Frame())
	assert.EqualValues(t, 1, rec.shows.Load())

	assert.Equal(t, canvas.Red, rec.at(0, 0))
	assert.Equal(t, canvas.Lime, rec.at(1, 2))
	assert.Equal(t, canvas.Black, rec.at(0, 3), "narrow rows are padded")
	assert.Equal(t, canvas.Blue, rec.at(2, 3))
	_, written := rec.pixels[[2]int{3, 0}]
	assert.False(t, written, "rows below the content are untouched")
}

func TestFrameScrolls(t *testing.T) {
	rec := newRecorder(1, 2)
	c := New(rec)

	wide := block(1, 3, canvas.Black)
	wide.Set(0, 0, canvas.Red)
	wide.Set(0, 1, canvas.Lime)
	wide.Set(0, 2, canvas.Blue)
	ok, err := c.AddRow(FromCanvas(wide), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, c.Sources()[0].Canvas().Width())

	want := [][2]canvas.RGB{
		{canvas.Black, canvas.Black},
		{canvas.Black, canvas.Red},
		{canvas.Red, canvas.Lime},
		{canvas.Lime, canvas.Blue},
		{canvas.Blue, canvas.Black},
		{canvas.Black, canvas.Black},
		{canvas.Black, canvas.Black},
	}
	for i, w := range want {
		require.NoError(t, c.Frame())
		assert.Equal(t, w[0], rec.at(0, 0), "frame %d", i)
		assert.Equal(t, w[1], rec.at(0, 1), "frame %d", i)
	}
}

func TestRun(t *testing.T) {
	rec := newRecorder(5, 8)
	c := New(rec, WithTickInterval(time.Millisecond))
	ok, err := c.AddRow(Text("Hello"), time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = c.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, rec.shows.Load(), int64(1))

	_, err = c.AddRow(Text("a"), time.Second)
	assert.NoError(t, err, "rows can be added again once stopped")
}

func TestAsyncReload(t *testing.T) {
	gen, calls := counter()
	c := New(newRecorder(16, 16), WithTickInterval(time.Second), WithAsyncReload(0))
	ok, err := c.AddRow(gen, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	first := s.Canvas()
	assert.Eventually(t, func() bool {
		if err := s.Advance(); err != nil {
			return false
		}
		return s.Canvas() != first
	}, time.Second, time.Millisecond)
	assert.EqualValues(t, 2, calls.Load())
}

func TestAsyncReloadErrorKeepsCanvas(t *testing.T) {
	boom := errors.New("boom")
	calls := atomic.NewInt64(0)
	gen := Func(func(...any) (Content, error) {
		if calls.Inc() > 1 {
			return nil, boom
		}
		return Text("a"), nil
	})

	c := New(newRecorder(16, 16), WithTickInterval(time.Second), WithAsyncReload(2))
	ok, err := c.AddRow(gen, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s := c.Sources()[0]
	first := s.Canvas()
	assert.Eventually(t, func() bool {
		if err := s.Advance(); err != nil {
			return false
		}
		return calls.Load() >= 4
	}, time.Second, time.Millisecond)
	assert.Same(t, first, s.Canvas())
}
