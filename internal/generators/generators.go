// Package generators provides content for display rows: clocks, a sine
// wave, random blocks and SVG icons.
package generators

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/atomic"

	"github.com/fcurrie/matrix-display-golang/internal/conveyor"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// Clock returns the date, time and zone as cyan, yellow and green text
func Clock(now func() time.Time) conveyor.Func {
	if now == nil {
		now = time.Now
	}
	return func(...any) (conveyor.Content, error) {
		t := now()
		return conveyor.List{
			conveyor.Colored{Text: t.Format("Mon 01 Jan"), Color: canvas.Cyan},
			conveyor.Colored{Text: t.Format(" 15:04:05"), Color: canvas.Yellow},
			conveyor.Colored{Text: t.Format(" MST -0700"), Color: canvas.Green},
		}, nil
	}
}

// Seconds returns the current second as "s:SS" in blue
func Seconds(now func() time.Time) conveyor.Func {
	if now == nil {
		now = time.Now
	}
	return func(...any) (conveyor.Content, error) {
		return conveyor.Colored{Text: now().Format("s:05"), Color: canvas.Blue}, nil
	}
}

var waveColours = []canvas.RGB{canvas.Red, canvas.Green, canvas.Blue}

// SineWave draws two periods of a sine wave, width columns per period and
// height rows high. Each call uses the next of red, green and blue, starting
// with red. The optional args are width and height, 16 and 6 by default.
func SineWave() conveyor.Func {
	colour := atomic.NewInt32(int32(len(waveColours) - 1))
	return func(args ...any) (conveyor.Content, error) {
		width, height, err := size(args, 16, 6)
		if err != nil {
			return nil, err
		}

		var next int32
		for {
			prev := colour.Load()
			next = (prev + 1) % int32(len(waveColours))
			if colour.CompareAndSwap(prev, next) {
				break
			}
		}

		c := canvas.New(canvas.WithRows(height), canvas.WithLeftPad(width))
		for x := 0; x < width; x++ {
			y := int((math.Sin(2*math.Pi/float64(width)*float64(x)) + 1) / 2 * float64(height-1))
			c.Set(y, x, waveColours[next])
		}
		if err := c.AppendCanvasPad(c, 0, c.Pad()); err != nil {
			return nil, err
		}
		return conveyor.FromCanvas(c), nil
	}
}

// RandomBlock fills a block with random colours. The optional args are
// width and height, 16 and 16 by default. A nil rng uses a time seeded one.
func RandomBlock(rng *rand.Rand) conveyor.Func {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return func(args ...any) (conveyor.Content, error) {
		width, height, err := size(args, 16, 16)
		if err != nil {
			return nil, err
		}

		c := canvas.New(canvas.WithRows(height), canvas.WithLeftPad(width))
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				c.Set(row, col, canvas.RGB{
					R: uint8(rng.Intn(256)),
					G: uint8(rng.Intn(256)),
					B: uint8(rng.Intn(256)),
				})
			}
		}
		return conveyor.FromCanvas(c), nil
	}
}

// size reads optional width and height arguments
func size(args []any, width, height int) (int, int, error) {
	dims := []*int{&width, &height}
	for i, arg := range args {
		if i >= len(dims) {
			break
		}
		v, ok := arg.(int)
		if !ok || v <= 0 {
			return 0, 0, fmt.Errorf("argument %d must be a positive int, got %v", i, arg)
		}
		*dims[i] = v
	}
	return width, height, nil
}
