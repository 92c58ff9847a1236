package layers

import (
	"fmt"
	"image/color"

	"github.com/llgcode/draw2d"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/tectonics"
)

// LineStyle describes how one boundary kind is stroked.
type LineStyle struct {
	Color color.Color
	Width float64
	Dash  []float64
}

// TectonicConfig configures TectonicLayer. Styles with a zero width keep the
// current style.
type TectonicConfig struct {
	Convergent LineStyle
	Divergent  LineStyle
	Transform  LineStyle
	HideLabels bool
}

// DefaultTectonicConfig returns red, green and dashed blue boundaries with
// plate labels.
func DefaultTectonicConfig() TectonicConfig {
	return TectonicConfig{
		Convergent: LineStyle{Color: MustHex("#ff4d4d"), Width: 2.5},
		Divergent:  LineStyle{Color: MustHex("#4dff4d"), Width: 2.5},
		Transform:  LineStyle{Color: MustHex("#4d4dff"), Width: 2, Dash: []float64{5, 5}},
	}
}

var boundaryOutline = color.NRGBA{R: 255, G: 255, B: 255, A: 77}

// TectonicLayer strokes plate boundaries and labels plates. It shares its
// model with PlateLayer and rebuilds it in place when points change.
type TectonicLayer struct {
	model  *tectonics.Model
	sim    *tectonics.Simulator
	plates int
	cfg    TectonicConfig
}

// NewTectonicLayer draws model. UpdatePoints re-simulates plateCount plates
// with sim.
func NewTectonicLayer(model *tectonics.Model, sim *tectonics.Simulator, plateCount int) *TectonicLayer {
	if model == nil {
		model = &tectonics.Model{}
	}
	return &TectonicLayer{model: model, sim: sim, plates: plateCount, cfg: DefaultTectonicConfig()}
}

func (l *TectonicLayer) ID() string    { return TectonicID }
func (l *TectonicLayer) Visible() bool { return true }

// Model returns the shared model.
func (l *TectonicLayer) Model() *tectonics.Model { return l.model }

// Config returns the current configuration.
func (l *TectonicLayer) Config() TectonicConfig { return l.cfg }

func (l *TectonicLayer) Configure(cfg any) bool {
	var c TectonicConfig
	switch v := cfg.(type) {
	case TectonicConfig:
		c = v
	case *TectonicConfig:
		if v == nil {
			return false
		}
		c = *v
	default:
		return false
	}
	merge := func(dst *LineStyle, src LineStyle) {
		if src.Width <= 0 {
			return
		}
		if src.Color == nil {
			src.Color = dst.Color
		}
		*dst = src
	}
	merge(&l.cfg.Convergent, c.Convergent)
	merge(&l.cfg.Divergent, c.Divergent)
	merge(&l.cfg.Transform, c.Transform)
	l.cfg.HideLabels = c.HideLabels
	return true
}

// UpdatePoints re-simulates plates over points and rewrites their
// elevation. The shared model is overwritten in place.
func (l *TectonicLayer) UpdatePoints(points []core.Point) {
	if l.sim == nil {
		return
	}
	*l.model = *l.sim.Simulate(points, l.plates)
	tectonics.UpdateElevations(points, l.model)
}

// Style returns the line style for a boundary kind.
func (l *TectonicLayer) Style(kind tectonics.BoundaryKind) LineStyle {
	switch kind {
	case tectonics.Convergent:
		return l.cfg.Convergent
	case tectonics.Divergent:
		return l.cfg.Divergent
	default:
		return l.cfg.Transform
	}
}

func (l *TectonicLayer) Render(gc draw2d.GraphicContext, points []core.Point, width, height float64) {
	for _, b := range l.model.Boundaries {
		style := l.Style(b.Kind)
		if !tracePolyline(gc, points, b.Points) {
			continue
		}
		gc.SetStrokeColor(style.Color)
		gc.SetLineWidth(style.Width)
		gc.SetLineDash(style.Dash, 0)
		gc.Stroke()

		tracePolyline(gc, points, b.Points)
		gc.SetStrokeColor(boundaryOutline)
		gc.SetLineWidth(style.Width + 1)
		gc.Stroke()
	}
	gc.SetLineDash(nil, 0)

	if l.cfg.HideLabels {
		return
	}
	for _, p := range l.model.Plates {
		c, ok := p.Centroid(points)
		if !ok {
			continue
		}
		drawLabel(gc, fmt.Sprintf("Plate %d", p.ID), c.X, c.Y, labelSize, 0.7)
	}
}
