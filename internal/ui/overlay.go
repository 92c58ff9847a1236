//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
)

// Overlay draws an inspector for the point under the cursor.
type Overlay struct {
	state   *mapgen.State
	scale   float64
	enabled bool

	probe   mapgen.Probe
	hasHit  bool
	pixel   *ebiten.Image
	lastPos [2]int
}

// NewOverlay constructs an overlay for state drawn at scale.
func NewOverlay(state *mapgen.State, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{state: state, scale: scale, enabled: true, lastPos: [2]int{-1, -1}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetState points the overlay at a new generation.
func (o *Overlay) SetState(state *mapgen.State) {
	o.state = state
	o.hasHit = false
	o.lastPos = [2]int{-1, -1}
}

// Invalidate forces the next Update to inspect again.
func (o *Overlay) Invalidate() { o.lastPos = [2]int{-1, -1} }

// Update toggles the inspector with I and probes the cursor position.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.enabled = !o.enabled
	}
	if !o.enabled || o.state == nil {
		o.hasHit = false
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx == o.lastPos[0] && my == o.lastPos[1] {
		return
	}
	o.lastPos = [2]int{mx, my}
	size := o.state.Size()
	x, y := float64(mx)/o.scale, float64(my)/o.scale
	if x < 0 || y < 0 || x >= float64(size.W) || y >= float64(size.H) {
		o.hasHit = false
		return
	}
	o.probe, o.hasHit = o.state.Inspect(x, y)
}

// Draw renders the marker and the info box onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.enabled || !o.hasHit {
		return
	}
	p := o.probe.Point
	sx, sy := p.X*o.scale, p.Y*o.scale
	marker := color.RGBA{R: 20, G: 20, B: 20, A: 220}
	o.drawLine(screen, sx-6, sy, sx+6, sy, 1.5, marker)
	o.drawLine(screen, sx, sy-6, sx, sy+6, 1.5, marker)

	lines := describe(o.probe)
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	const pad, lineH = 6, 15
	boxW := float64(width + 2*pad)
	boxH := float64(len(lines)*lineH + 2*pad - 4)
	bx, by := sx+12, sy+12
	bounds := screen.Bounds()
	if bx+boxW > float64(bounds.Dx()) {
		bx = sx - 12 - boxW
	}
	if by+boxH > float64(bounds.Dy()) {
		by = sy - 12 - boxH
	}
	o.drawRect(screen, bx, by, boxW, boxH, color.RGBA{R: 16, G: 16, B: 20, A: 210})
	for i, l := range lines {
		text.Draw(screen, l, face, int(bx)+pad, int(by)+pad+11+i*lineH, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func describe(p mapgen.Probe) []string {
	lines := []string{
		fmt.Sprintf("point %d (%.0f, %.0f)", p.Index, p.Point.X, p.Point.Y),
		fmt.Sprintf("elevation %.3f", p.Point.Elevation),
		fmt.Sprintf("plate %d %s", p.Plate.ID, p.Plate.Kind),
		fmt.Sprintf("velocity (%.2f, %.2f) age %.0f", p.Plate.Velocity.X, p.Plate.Velocity.Y, p.Plate.Age),
	}
	if len(p.Boundaries) > 0 {
		kinds := make([]string, len(p.Boundaries))
		for i, k := range p.Boundaries {
			kinds[i] = k.String()
		}
		lines = append(lines, "boundary "+strings.Join(kinds, ", "))
	}
	return lines
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
