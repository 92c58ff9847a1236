package layers

import (
	"image/color"

	"github.com/llgcode/draw2d"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/deanpointblank/codenamestory/internal/core"
)

// MustHex parses a #rrggbb or #rgb colour and panics on malformed input.
// It is meant for literals.
func MustHex(s string) colorful.Color {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// withAlpha converts c to a non-premultiplied colour with the given opacity.
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.Clamp01(alpha)*255 + 0.5)}
}

func tracePolygon(gc draw2d.GraphicContext, poly []core.Vec2) {
	gc.BeginPath()
	gc.MoveTo(poly[0].X, poly[0].Y)
	for _, v := range poly[1:] {
		gc.LineTo(v.X, v.Y)
	}
	gc.Close()
}

func tracePolyline(gc draw2d.GraphicContext, points []core.Point, indices []int) bool {
	started := false
	gc.BeginPath()
	for _, idx := range indices {
		if idx < 0 || idx >= len(points) {
			continue
		}
		p := points[idx]
		if !started {
			gc.MoveTo(p.X, p.Y)
			started = true
			continue
		}
		gc.LineTo(p.X, p.Y)
	}
	return started
}

func toColors(cs []colorful.Color) []color.Color {
	out := make([]color.Color, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
