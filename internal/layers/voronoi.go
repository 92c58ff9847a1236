package layers

import (
	"image/color"

	"github.com/llgcode/draw2d"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/tessellation"
)

// VoronoiConfig configures VoronoiLayer. Zero fields keep the current value.
type VoronoiConfig struct {
	Stroke color.Color
	Width  float64
}

// VoronoiLayer outlines every cell of the tessellation.
type VoronoiLayer struct {
	stroke color.Color
	width  float64
}

// NewVoronoiLayer returns a layer drawing thin grey outlines.
func NewVoronoiLayer() *VoronoiLayer {
	return &VoronoiLayer{stroke: MustHex("#666"), width: 0.5}
}

func (l *VoronoiLayer) ID() string    { return VoronoiID }
func (l *VoronoiLayer) Visible() bool { return true }

// Config returns the current configuration.
func (l *VoronoiLayer) Config() VoronoiConfig {
	return VoronoiConfig{Stroke: l.stroke, Width: l.width}
}

func (l *VoronoiLayer) Configure(cfg any) bool {
	var c VoronoiConfig
	switch v := cfg.(type) {
	case VoronoiConfig:
		c = v
	case *VoronoiConfig:
		if v == nil {
			return false
		}
		c = *v
	default:
		return false
	}
	if c.Stroke != nil {
		l.stroke = c.Stroke
	}
	if c.Width > 0 {
		l.width = c.Width
	}
	return true
}

func (l *VoronoiLayer) Render(gc draw2d.GraphicContext, points []core.Point, width, height float64) {
	d := tessellation.Build(points, core.RectFromSize(width, height))
	gc.SetStrokeColor(l.stroke)
	gc.SetLineWidth(l.width)
	for i := range points {
		poly, ok := d.CellPolygon(i)
		if !ok {
			continue
		}
		tracePolygon(gc, poly)
		gc.Stroke()
	}
}
