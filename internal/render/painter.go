//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// MapPainter uploads rasterized maps into a single ebiten image.
type MapPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMapPainter allocates a painter for a w*h map.
func NewMapPainter(w, h int) *MapPainter {
	mp := &MapPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Upload replaces the painter image with src. Sources of a different size
// are ignored.
func (mp *MapPainter) Upload(src *image.RGBA) {
	if src.Bounds().Dx() != mp.w || src.Bounds().Dy() != mp.h {
		return
	}
	mp.buf = packRGBA(mp.buf, src)
	mp.img.ReplacePixels(mp.buf)
}

// Blit draws the last uploaded map scaled onto dst.
func (mp *MapPainter) Blit(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(mp.img, op)
}

// Size returns the dimensions of the underlying image.
func (mp *MapPainter) Size() (int, int) { return mp.w, mp.h }
