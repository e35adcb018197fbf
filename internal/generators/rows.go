package generators

import (
	"errors"
	"fmt"
	"time"

	"github.com/fcurrie/matrix-display-golang/internal/conveyor"
	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// ErrUnknownKind is returned for a row kind FromConfig does not know
var ErrUnknownKind = errors.New("unknown row kind")

// Row is configured content ready for conveyor.AddRow
type Row struct {
	Content    conveyor.Content
	ReloadWait time.Duration
	Args       []any
}

// Reload waits used when a row does not set one
var defaultReloadWait = map[string]time.Duration{
	"text":     15 * time.Second,
	"segments": 15 * time.Second,
	"clock":    5 * time.Second,
	"seconds":  250 * time.Millisecond,
	"sine":     time.Second,
	"random":   time.Second,
	"svg":      15 * time.Second,
}

// Kinds lists the row kinds FromConfig accepts
func Kinds() []string {
	return []string{"text", "segments", "clock", "seconds", "sine", "random", "svg"}
}

// FromConfig builds the content a row configuration describes
func FromConfig(cfg types.RowConfig) (Row, error) {
	row := Row{ReloadWait: cfg.ReloadWait.Std()}
	if row.ReloadWait <= 0 {
		row.ReloadWait = defaultReloadWait[cfg.Kind]
	}
	if cfg.Width > 0 {
		row.Args = append(row.Args, cfg.Width)
		if cfg.Height > 0 {
			row.Args = append(row.Args, cfg.Height)
		}
	}

	var err error
	switch cfg.Kind {
	case "text":
		row.Content, err = colored(cfg.Text, cfg.Color)
	case "segments":
		list := make(conveyor.List, 0, len(cfg.Segments))
		for _, seg := range cfg.Segments {
			item, err := colored(seg.Text, seg.Color)
			if err != nil {
				return Row{}, err
			}
			list = append(list, item)
		}
		row.Content = list
	case "clock":
		row.Content = Clock(nil)
	case "seconds":
		row.Content = Seconds(nil)
	case "sine":
		row.Content = SineWave()
	case "random":
		row.Content = RandomBlock(nil)
	case "svg":
		width, height := cfg.Width, cfg.Height
		if width <= 0 {
			width = 16
		}
		if height <= 0 {
			height = width
		}
		row.Content, err = SVGFile(cfg.Path, width, height)
		row.Args = nil
	default:
		return Row{}, fmt.Errorf("%q: %w", cfg.Kind, ErrUnknownKind)
	}
	if err != nil {
		return Row{}, err
	}
	return row, nil
}

func colored(text, colour string) (conveyor.Content, error) {
	if colour == "" {
		return conveyor.Text(text), nil
	}
	c, err := canvas.ParseColor(colour)
	if err != nil {
		return nil, err
	}
	return conveyor.Colored{Text: text, Color: c}, nil
}
