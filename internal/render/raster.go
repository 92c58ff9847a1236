// Package render turns a generation into pixels.
package render

import (
	"image"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
)

// Rasterize draws s onto a new RGBA image of the state's size.
func Rasterize(s *mapgen.State) *image.RGBA {
	size := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, max(size.W, 0), max(size.H, 0)))
	RasterizeInto(img, s)
	return img
}

// RasterizeInto clears img to the background colour and redraws s onto it.
func RasterizeInto(img *image.RGBA, s *mapgen.State) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	fillRGBA(img.Pix, s.Config().BackgroundColor())
	s.Render(draw2dimg.NewGraphicContext(img))
}
