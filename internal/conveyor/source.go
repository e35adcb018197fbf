package conveyor

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// Source is one logical display row. It owns the row's rendered canvas, its
// scroll offset and its reload countdown.
type Source struct {
	renderer *renderer
	dynamic  bool

	canvas *canvas.Canvas
	scroll int

	tick       time.Duration
	reloadWait time.Duration
	ttl        time.Duration

	async *reloader
	log   logr.Logger
}

func newSource(r *renderer, tick, reloadWait time.Duration, log logr.Logger) (*Source, error) {
	c, err := r.render()
	if err != nil {
		return nil, err
	}
	r.height = c.Height()

	return &Source{
		renderer:   r,
		dynamic:    regenerable(r.content),
		canvas:     c,
		tick:       tick,
		reloadWait: reloadWait,
		ttl:        reloadWait,
		log:        log,
	}, nil
}

// Canvas returns the currently rendered canvas
func (s *Source) Canvas() *canvas.Canvas {
	return s.canvas
}

// Height returns the row's fixed pixel height
func (s *Source) Height() int {
	return s.renderer.height
}

// ScrollPtr returns the current horizontal offset into the canvas
func (s *Source) ScrollPtr() int {
	return s.scroll
}

// Dynamic reports whether the row's content is generated by a Func
func (s *Source) Dynamic() bool {
	return s.dynamic
}

// Advance moves the row on by one tick. A row wider than the display
// scrolls one column and reloads only when the scroll wraps. A narrower row
// reloads as soon as the reload is due, if its content is generated.
func (s *Source) Advance() error {
	s.ttl -= s.tick
	due := s.ttl <= 0

	if due && s.dynamic && s.async != nil {
		s.async.start(s.renderer.render)
	}

	if s.canvas.Width() > s.renderer.width {
		s.scroll++
		if s.scroll > s.canvas.Width() {
			s.scroll = 0
			if due {
				return s.reload()
			}
		}
		return nil
	}

	if s.dynamic && due {
		return s.reload()
	}
	return nil
}

func (s *Source) reload() error {
	if !s.dynamic {
		// static content renders the same canvas again
		s.ttl = s.reloadWait
		return nil
	}

	if s.async != nil {
		res, ok := s.async.take()
		if !ok {
			return nil
		}
		s.ttl = s.reloadWait
		if res.err != nil {
			s.log.Error(res.err, "Failed to reload row, keeping previous content")
			return nil
		}
		s.swap(res.canvas)
		return nil
	}

	c, err := s.renderer.render()
	if err != nil {
		return err
	}
	s.ttl = s.reloadWait
	s.swap(c)
	return nil
}

func (s *Source) swap(c *canvas.Canvas) {
	s.log.V(1).Info("Reloaded row", "height", c.Height(), "width", c.Width())
	s.canvas = c
	s.scroll = 0
}
