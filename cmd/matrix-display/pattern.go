package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fcurrie/matrix-display-golang/internal/display"
	"github.com/fcurrie/matrix-display-golang/internal/logging"
	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// pattern fills the display for one step of the test sequence
type pattern struct {
	name  string
	pixel func(row, col int) canvas.RGB
}

func solid(c canvas.RGB) func(int, int) canvas.RGB {
	return func(int, int) canvas.RGB { return c }
}

var testPatterns = []pattern{
	{"red", solid(canvas.Red)},
	{"green", solid(canvas.Green)},
	{"blue", solid(canvas.Blue)},
	{"alternating", func(row, col int) canvas.RGB {
		if (row+col)%2 == 0 {
			return canvas.White
		}
		return canvas.Black
	}},
}

func newTestPatternCmd() *cobra.Command {
	var (
		flags displayFlags
		pause time.Duration
	)

	cmd := &cobra.Command{
		Use:   "test-pattern",
		Short: "Light every pixel red, green, blue, then alternate them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(flags.verbose)
			cfg, err := flags.load(log)
			if err != nil {
				return err
			}

			m, err := display.Open(cfg.Display, cfg.HUB75, log)
			if err != nil {
				return err
			}
			defer m.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := showPatterns(ctx, m, pause, func(name string) {
				log.Info("Showing test pattern", "pattern", name)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Test completed successfully")
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().DurationVar(&pause, "pause", 2*time.Second, "time to hold each pattern")
	return cmd
}

// showPatterns draws each test pattern for pause, then clears the display
func showPatterns(ctx context.Context, m types.Matrix, pause time.Duration, step func(string)) error {
	rows, cols := m.Size()
	for _, p := range testPatterns {
		step(p.name)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if err := m.SetPixel(row, col, p.pixel(row, col)); err != nil {
					return fmt.Errorf("failed to set pixel: %w", err)
				}
			}
		}
		if err := m.Show(); err != nil {
			return fmt.Errorf("failed to show %s: %w", p.name, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
	}

	step("clear")
	if err := m.Clear(); err != nil {
		return fmt.Errorf("failed to clear display: %w", err)
	}
	return m.Show()
}
