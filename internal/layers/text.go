package layers

import (
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes are in points at draw2d's default 92 dpi.
const (
	labelSize  = 9
	legendSize = 9
)

var (
	fontOnce  sync.Once
	fontReady bool
	labelFont = draw2d.FontData{Name: "goregular", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleNormal}
)

func ensureFont() bool {
	fontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		draw2d.RegisterFont(labelFont, f)
		fontReady = true
	})
	return fontReady
}

// drawLabel centres text on (x, y) above a translucent white box.
func drawLabel(gc draw2d.GraphicContext, text string, x, y, size, boxAlpha float64) {
	if !ensureFont() {
		return
	}
	gc.SetFontData(labelFont)
	gc.SetFontSize(size)
	left, top, right, bottom := gc.GetStringBounds(text)
	w, h := right-left, bottom-top
	const pad = 4

	gc.SetFillColor(color.NRGBA{R: 255, G: 255, B: 255, A: uint8(boxAlpha*255 + 0.5)})
	gc.BeginPath()
	draw2dkit.Rectangle(gc, x-w/2-pad, y-h/2-pad/2, x+w/2+pad, y+h/2+pad/2)
	gc.Fill()

	gc.SetFillColor(color.Black)
	gc.FillStringAt(text, x-w/2-left, y-(top+bottom)/2)
}

// drawText writes left aligned text with its baseline at y.
func drawText(gc draw2d.GraphicContext, text string, x, y, size float64) {
	if !ensureFont() {
		return
	}
	gc.SetFontData(labelFont)
	gc.SetFontSize(size)
	gc.SetFillColor(color.Black)
	gc.FillStringAt(text, x, y)
}

// legendEntry is one swatch of a legend.
type legendEntry struct {
	fill  color.Color
	label string
}

func drawLegend(gc draw2d.GraphicContext, x, y float64, entries []legendEntry) {
	const box, step = 15, 20
	for i, e := range entries {
		top := y + float64(i)*step
		gc.SetFillColor(e.fill)
		gc.SetStrokeColor(color.NRGBA{A: 77})
		gc.SetLineWidth(1)
		gc.BeginPath()
		draw2dkit.Rectangle(gc, x, top, x+box, top+box)
		gc.FillStroke()
		drawText(gc, e.label, x+box+5, top+12, legendSize)
	}
}
