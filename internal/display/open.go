package display

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/fcurrie/matrix-display-golang/internal/types"
)

var (
	// ErrClosed is returned by Show once the user has closed the display
	ErrClosed = errors.New("display closed")
	// ErrUnknownBackend is returned by Open for an unrecognised backend name
	ErrUnknownBackend = errors.New("unknown display backend")
)

// Backends lists the names Open accepts
var Backends = []string{"terminal", "null", "hub75", "sdl", "ws281x"}

// Open creates the display named by cfg.Backend and applies its brightness
// and rotation. An empty backend is the terminal.
func Open(cfg types.DisplayConfig, hub75 types.HUB75Config, log logr.Logger) (types.Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", cfg.Width, cfg.Height)
	}

	var (
		m   types.Matrix
		err error
	)
	switch cfg.Backend {
	case "", "terminal":
		m = NewTerminal(cfg.Height, cfg.Width,
			WithNarrow(cfg.Narrow),
			WithNoColor(cfg.NoColor),
			WithTerminalLogger(log),
		)
	case "null":
		m = NewFramebuffer(cfg.Height, cfg.Width)
	case "hub75":
		m, err = NewHUB75(cfg.Height, cfg.Width, hub75, log)
	case "sdl":
		m, err = NewSDL(cfg.Height, cfg.Width, cfg.Scale)
	case "ws281x":
		m, err = NewStrip(cfg.Height, cfg.Width, cfg.GPIOPin, cfg.Brightness)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Backend, ErrUnknownBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s display: %w", cfg.Backend, err)
	}

	if d, ok := m.(types.Dimmer); ok && cfg.Brightness > 0 {
		if err := d.SetBrightness(cfg.Brightness); err != nil {
			m.Close()
			return nil, err
		}
	}
	if r, ok := m.(types.Rotator); ok && cfg.Rotation != 0 {
		if err := r.SetRotation(cfg.Rotation); err != nil {
			m.Close()
			return nil, err
		}
	}

	log.V(1).Info("Opened display", "backend", cfg.Backend, "width", cfg.Width, "height", cfg.Height)
	return m, nil
}
