package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
	"github.com/fcurrie/matrix-display-golang/pkg/glyph"
)

func newRenderCmd() *cobra.Command {
	var (
		colour   string
		font     string
		fontSize float64
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "render TEXT...",
		Short: "Print text as it would appear on the matrix",
		Example: heredoc.Doc(`
			matrix-display render --color cyan "Hello"
			matrix-display render --plain --font basic7x13 12:30
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderText(strings.Join(args, " "), colour, font, fontSize, !plain)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&colour, "color", "white", "text colour, a name or #rrggbb")
	cmd.Flags().StringVar(&font, "font", "font5", "font5, basic7x13 or a path to a TrueType/OpenType font")
	cmd.Flags().Float64Var(&fontSize, "font-size", 8, "point size for font files")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colour escapes")
	return cmd
}

func renderText(text, colour, font string, size float64, showColour bool) (string, error) {
	px, err := canvas.ParseColor(colour)
	if err != nil {
		return "", err
	}
	glyphs, err := glyph.Named(font, size)
	if err != nil {
		return "", err
	}
	c := canvas.New(canvas.WithGlyphs(glyphs))
	if err := c.AppendText(text, px); err != nil {
		return "", err
	}
	return c.Render(showColour, canvas.PixelOn, canvas.PixelOff), nil
}
