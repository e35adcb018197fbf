// Package conveyor stacks rows of content onto a display matrix, scrolling
// rows wider than the display and reloading generated rows as they expire.
package conveyor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/glyph"
)

// DefaultTickInterval is the time between frames
const DefaultTickInterval = 30 * time.Millisecond

// ErrRunning is returned by AddRow once Run has started
var ErrRunning = errors.New("conveyor is running")

// Conveyor owns the rows shown on a display and draws them every tick
type Conveyor struct {
	display    types.Matrix
	rows, cols int
	capacity   int

	tick   time.Duration
	glyphs *glyph.Table
	log    logr.Logger

	async   bool
	retries int

	sources []*Source
	running bool
}

// Option configures a Conveyor
type Option func(*Conveyor)

// WithTickInterval sets the time between frames
func WithTickInterval(d time.Duration) Option {
	return func(c *Conveyor) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithGlyphs sets the glyph table used to draw text rows
func WithGlyphs(t *glyph.Table) Option {
	return func(c *Conveyor) {
		if t != nil {
			c.glyphs = t
		}
	}
}

// WithLogger sets the logger
func WithLogger(log logr.Logger) Option {
	return func(c *Conveyor) {
		c.log = log
	}
}

// WithAsyncReload evaluates generated rows in the background, retrying a
// failed evaluation up to retries times. The new content still appears only
// when the row wraps or is idle.
func WithAsyncReload(retries int) Option {
	return func(c *Conveyor) {
		c.async = true
		c.retries = retries
	}
}

// New creates a conveyor drawing onto display
func New(display types.Matrix, opts ...Option) *Conveyor {
	rows, cols := display.Size()
	c := &Conveyor{
		display:  display,
		rows:     rows,
		cols:     cols,
		capacity: rows,
		tick:     DefaultTickInterval,
		glyphs:   glyph.Font5(),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddRow renders content and stacks it below the existing rows. It reports
// false, with no error, when the row is taller than the remaining capacity.
// args are passed to every Func in content.
func (c *Conveyor) AddRow(content Content, reloadWait time.Duration, args ...any) (bool, error) {
	if c.running {
		return false, ErrRunning
	}

	log := c.log.WithValues("row", len(c.sources))
	r := &renderer{
		content: content,
		args:    args,
		glyphs:  c.glyphs,
		width:   c.cols,
		height:  -1,
	}
	s, err := newSource(r, c.tick, reloadWait, log)
	if err != nil {
		return false, fmt.Errorf("failed to render row: %w", err)
	}

	if s.Height() > c.capacity {
		log.Info("Row does not fit", "height", s.Height(), "capacity", c.capacity)
		return false, nil
	}
	if c.async {
		s.async = newReloader(c.retries, log)
	}

	c.sources = append(c.sources, s)
	c.capacity -= s.Height()
	log.V(1).Info("Added row", "height", s.Height(), "width", s.Canvas().Width(), "dynamic", s.Dynamic())
	return true, nil
}

// Capacity returns the number of pixel rows still free
func (c *Conveyor) Capacity() int {
	return c.capacity
}

// Sources returns the rows in display order
func (c *Conveyor) Sources() []*Source {
	return c.sources
}

// Frame draws every row at its scroll position, advances each row and
// shows the result.
func (c *Conveyor) Frame() error {
	y := 0
	for i, s := range c.sources {
		cv := s.Canvas()
		for row := 0; row < cv.Height(); row++ {
			for x := 0; x < c.cols; x++ {
				px := cv.Pad()
				if col := x + s.ScrollPtr(); col < cv.Width() {
					px = cv.At(row, col)
				}
				if err := c.display.SetPixel(y, x, px); err != nil {
					return fmt.Errorf("failed to set pixel: %w", err)
				}
			}
			y++
		}
		if err := s.Advance(); err != nil {
			return fmt.Errorf("failed to advance row %d: %w", i, err)
		}
	}
	return c.display.Show()
}

// Run draws a frame every tick until ctx is cancelled
func (c *Conveyor) Run(ctx context.Context) error {
	c.running = true
	defer func() { c.running = false }()

	for _, s := range c.sources {
		if s.async != nil {
			s.async.ctx = ctx
		}
	}

	c.log.Info("Starting conveyor", "rows", len(c.sources), "tick", c.tick.String())
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		if err := c.Frame(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
