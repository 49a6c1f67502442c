// Package screen samples the display for the ambient lighting mode.
package screen

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/gz302-tools/gz302ctl/lights"
)

// Sampler captures a display and reduces it to one color. Sampling every
// pixel is wasteful at ambient cadence, so it walks a grid.
type Sampler struct {
	Display  int
	GridSize int
}

// NewSampler samples the given display on a 5-pixel grid.
func NewSampler(display int) *Sampler {
	return &Sampler{Display: display, GridSize: 5}
}

// Capture grabs the display and returns its average color.
func (s *Sampler) Capture() (lights.Color, error) {
	img, err := screenshot.CaptureDisplay(s.Display)
	if err != nil {
		return lights.Color{}, fmt.Errorf("capturing display %d: %w", s.Display, err)
	}
	return AverageColor(img, s.GridSize), nil
}

// AverageColor averages the image's channels over a pixel grid.
func AverageColor(img *image.RGBA, gridSize int) lights.Color {
	if gridSize < 1 {
		gridSize = 1
	}
	var sumR, sumG, sumB, total uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += gridSize {
		for x := bounds.Min.X; x < bounds.Max.X; x += gridSize {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
			total++
		}
	}
	if total == 0 {
		return lights.Color{}
	}
	return lights.Color{
		Red:   uint8(sumR / total),
		Green: uint8(sumG / total),
		Blue:  uint8(sumB / total),
	}
}
