package generators

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/fcurrie/matrix-display-golang/internal/conveyor"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

// SVGIcon rasterises an SVG document into a width x height block
func SVGIcon(r io.Reader, width, height int) (*canvas.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return canvas.FromImage(img, width, height), nil
}

// SVGFile rasterises the SVG file at path as row content
func SVGFile(path string, width, height int) (conveyor.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	c, err := SVGIcon(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conveyor.FromCanvas(c), nil
}
