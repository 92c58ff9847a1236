package render

import (
	"image"
	"image/color"
)

// packRGBA copies src into buf as tightly packed premultiplied RGBA rows, the
// layout ReplacePixels expects. buf is grown when it is too small.
func packRGBA(buf []byte, src *image.RGBA) []byte {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	need := 4 * w * h
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]
	row := 4 * w
	if src.Stride == row {
		copy(buf, src.Pix[:need])
		return buf
	}
	for y := 0; y < h; y++ {
		start := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(buf[y*row:(y+1)*row], src.Pix[start:start+row])
	}
	return buf
}

// fillRGBA paints every pixel of buf with c.
func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
