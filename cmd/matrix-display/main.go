package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matrix-display",
		Short: "Scroll rows of text and images across an LED matrix",
		Long: heredoc.Doc(`
			matrix-display stacks rows of content on an LED matrix. Rows wider
			than the display scroll from right to left, and rows built by a
			generator (clock, seconds, sine, random) are regenerated after
			their reload wait.

			The display can be a terminal, an SDL window, a HUB75 panel driven
			over GPIO or a WS281x strip.
		`),
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newRenderCmd(), newTestPatternCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
