package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
)

func TestRasterizeEmptyMapIsBackground(t *testing.T) {
	img := Rasterize(mapgen.Generate(120, 90, 0, 8))
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 90 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	want := color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	for y := 0; y < 90; y++ {
		for x := 0; x < 120; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRasterizeDrawsLayers(t *testing.T) {
	img := Rasterize(mapgen.Generate(200, 150, 300, 4))
	bg := color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	if img.RGBAAt(100, 75) == bg {
		t.Fatal("map centre should be covered by elevation cells")
	}
}

func TestPackRGBAHandlesSubImages(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = uint8(i)
	}
	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	buf := packRGBA(nil, sub)
	if len(buf) != 16 {
		t.Fatalf("packed %d bytes, want 16", len(buf))
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := sub.RGBAAt(1+x, 1+y)
			base := (y*2 + x) * 4
			if buf[base] != c.R || buf[base+3] != c.A {
				t.Fatalf("pixel (%d,%d) packed as %v, want %v", x, y, buf[base:base+4], c)
			}
		}
	}
}

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillRGBA(buf, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if buf[4] != 1 || buf[5] != 2 || buf[6] != 3 || buf[7] != 255 {
		t.Fatalf("unexpected fill %v", buf)
	}
}
