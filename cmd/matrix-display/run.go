package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fcurrie/matrix-display-golang/internal/config"
	"github.com/fcurrie/matrix-display-golang/internal/conveyor"
	"github.com/fcurrie/matrix-display-golang/internal/display"
	"github.com/fcurrie/matrix-display-golang/internal/generators"
	"github.com/fcurrie/matrix-display-golang/internal/input"
	"github.com/fcurrie/matrix-display-golang/internal/logging"
	"github.com/fcurrie/matrix-display-golang/internal/statsview"
	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/glyph"
)

// displayFlags override the display section of the configuration
type displayFlags struct {
	configPath string
	envFile    string
	backend    string
	width      int
	height     int
	verbose    int
}

func (f *displayFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "config.json", "path to a JSON or YAML config file")
	fs.StringVar(&f.envFile, "env-file", ".env", "file of environment variables to load first")
	fs.StringVarP(&f.backend, "backend", "b", "", "display backend, one of terminal, null, hub75, sdl, ws281x")
	fs.IntVar(&f.width, "width", 0, "display width in pixels")
	fs.IntVar(&f.height, "height", 0, "display height in pixels")
	fs.CountVarP(&f.verbose, "verbose", "v", "log more, repeat for more detail")
}

// load reads the configuration, falling back to the defaults when the file
// does not exist, and applies the flags.
func (f *displayFlags) load(log logr.Logger) (*config.Config, error) {
	if err := config.LoadEnv(f.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(f.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("Config file not found, using default configuration", "path", f.configPath)
		cfg = config.DefaultConfig()
		if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load config from %s: %w", f.configPath, err)
	}

	if f.backend != "" {
		cfg.Display.Backend = f.backend
	}
	if f.width > 0 {
		cfg.Display.Width = f.width
	}
	if f.height > 0 {
		cfg.Display.Height = f.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	var (
		flags     displayFlags
		tick      time.Duration
		async     bool
		stats     bool
		narrow    bool
		noColor   bool
		showLines bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the configured rows until interrupted",
		Example: heredoc.Doc(`
			# Default rows in the terminal
			matrix-display run

			# A 64x32 HUB75 panel with background reloads
			matrix-display run --backend hub75 --width 64 --height 32 --async
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(flags.verbose)
			cfg, err := flags.load(log)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tick") {
				cfg.Conveyor.TickInterval = types.Duration(tick)
			}
			if async {
				cfg.Conveyor.AsyncReload = true
			}
			cfg.Display.Narrow = cfg.Display.Narrow || narrow
			cfg.Display.NoColor = cfg.Display.NoColor || noColor
			if stats {
				statsview.Launch(cmd.ErrOrStderr())
			}
			return run(cmd.Context(), cfg, log, showLines)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().DurationVar(&tick, "tick", conveyor.DefaultTickInterval, "time between frames")
	cmd.Flags().BoolVar(&async, "async", false, "regenerate rows in the background")
	cmd.Flags().BoolVar(&stats, "statsview", false, "serve runtime statistics over HTTP")
	cmd.Flags().BoolVar(&narrow, "narrow", false, "draw one character per pixel in the terminal")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "draw the terminal without colour")
	cmd.Flags().BoolVar(&showLines, "list-rows", false, "print the rows that fit and exit")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, log logr.Logger, listOnly bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	glyphs, err := glyph.Named(cfg.Conveyor.Font, cfg.Conveyor.FontSize)
	if err != nil {
		return fmt.Errorf("failed to load font %s: %w", cfg.Conveyor.Font, err)
	}

	m, err := display.Open(cfg.Display, cfg.HUB75, log)
	if err != nil {
		return err
	}
	defer m.Close()

	opts := []conveyor.Option{
		conveyor.WithTickInterval(cfg.Conveyor.TickInterval.Std()),
		conveyor.WithGlyphs(glyphs),
		conveyor.WithLogger(log),
	}
	if cfg.Conveyor.AsyncReload {
		opts = append(opts, conveyor.WithAsyncReload(cfg.Conveyor.ReloadRetries))
	}
	c := conveyor.New(m, opts...)

	for i, rc := range cfg.Rows {
		row, err := generators.FromConfig(rc)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		ok, err := c.AddRow(row.Content, row.ReloadWait, row.Args...)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if !ok {
			log.Info("Row does not fit, skipping", "row", i, "kind", rc.Kind, "capacity", c.Capacity())
		}
	}

	if listOnly {
		for i, src := range c.Sources() {
			fmt.Printf("%d: %dx%d dynamic=%v\n", i, src.Canvas().Width(), src.Height(), src.Dynamic())
		}
		return nil
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if t, ok := m.(*display.Terminal); ok {
		if err := t.ClearScreen(); err != nil {
			return err
		}
		if err := t.HideCursor(); err != nil {
			return err
		}
	}
	if err := input.WatchQuit(ctx, cancel, log); err != nil {
		log.Error(err, "Keyboard unavailable, use CTRL-C to exit")
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "Showing %d rows on %s display\n", len(c.Sources()), cfg.Display.Backend)
	err = c.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, display.ErrClosed) {
		log.Info("Shutting down")
		return nil
	}
	return err
}
