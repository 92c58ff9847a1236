package layers

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/llgcode/draw2d"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/tectonics"
	"github.com/deanpointblank/codenamestory/internal/tessellation"
)

// DefaultCellRadius is the neighbourhood radius used by RadiusCells.
const DefaultCellRadius = 30

// CellShaper produces the polygon drawn around each point.
type CellShaper interface {
	// Shape prepares cells for points and returns a lookup by point index.
	// The lookup reports false for points without a usable polygon.
	Shape(points []core.Point, width, height float64) func(i int) ([]core.Vec2, bool)
}

// RadiusCells approximates a cell by the ring of neighbours closer than
// Radius, ordered by angle around the point.
type RadiusCells struct {
	Radius float64
}

func (s RadiusCells) Shape(points []core.Point, width, height float64) func(int) ([]core.Vec2, bool) {
	radius := s.Radius
	if radius <= 0 {
		radius = DefaultCellRadius
	}
	grid := core.NewPointGrid(points, radius)
	return func(i int) ([]core.Vec2, bool) {
		if i < 0 || i >= len(points) {
			return nil, false
		}
		center := points[i].Pos()
		var ring []core.Vec2
		for _, j := range grid.Within(points, center.X, center.Y, radius) {
			if j != i {
				ring = append(ring, points[j].Pos())
			}
		}
		if len(ring) < 3 {
			return nil, false
		}
		slices.SortFunc(ring, func(a, b core.Vec2) int {
			return cmp.Compare(a.Sub(center).Angle(), b.Sub(center).Angle())
		})
		return ring, true
	}
}

// VoronoiCells uses the clipped Voronoi cell of every point.
type VoronoiCells struct{}

func (VoronoiCells) Shape(points []core.Point, width, height float64) func(int) ([]core.Vec2, bool) {
	return tessellation.Build(points, core.RectFromSize(width, height)).CellPolygon
}

// PlateConfig configures PlateLayer. A nil Shaper keeps the current one.
type PlateConfig struct {
	Shaper     CellShaper
	HideLabels bool
	ShowLegend bool
	LegendX    float64
	LegendY    float64
}

// PlateLayer tints the region of every plate with its own hue.
type PlateLayer struct {
	model *tectonics.Model
	cfg   PlateConfig
}

// NewPlateLayer draws the plates of model using RadiusCells.
func NewPlateLayer(model *tectonics.Model) *PlateLayer {
	if model == nil {
		model = &tectonics.Model{}
	}
	return &PlateLayer{
		model: model,
		cfg:   PlateConfig{Shaper: RadiusCells{Radius: DefaultCellRadius}, LegendX: 20, LegendY: 20},
	}
}

func (l *PlateLayer) ID() string    { return PlatesID }
func (l *PlateLayer) Visible() bool { return true }

// Config returns the current configuration.
func (l *PlateLayer) Config() PlateConfig { return l.cfg }

func (l *PlateLayer) Configure(cfg any) bool {
	var c PlateConfig
	switch v := cfg.(type) {
	case PlateConfig:
		c = v
	case *PlateConfig:
		if v == nil {
			return false
		}
		c = *v
	default:
		return false
	}
	if c.Shaper == nil {
		c.Shaper = l.cfg.Shaper
	}
	l.cfg = c
	return true
}

// Hue returns the hue in degrees assigned to plate id out of n plates.
func Hue(id, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Mod(360/float64(n)*float64(id), 360)
}

func (l *PlateLayer) Render(gc draw2d.GraphicContext, points []core.Point, width, height float64) {
	plates := l.model.Plates
	cell := l.cfg.Shaper.Shape(points, width, height)
	gc.SetLineWidth(0.5)
	for _, p := range plates {
		h := Hue(p.ID, len(plates))
		gc.SetFillColor(withAlpha(colorful.Hsl(h, 0.7, 0.5), 0.3))
		gc.SetStrokeColor(withAlpha(colorful.Hsl(h, 0.7, 0.3), 0.2))
		for _, idx := range p.Points {
			poly, ok := cell(idx)
			if !ok {
				continue
			}
			tracePolygon(gc, poly)
			gc.FillStroke()
		}
	}

	if !l.cfg.HideLabels {
		for _, p := range plates {
			c, ok := p.Centroid(points)
			if !ok {
				continue
			}
			drawLabel(gc, fmt.Sprintf("Plate %d", p.ID), c.X, c.Y, labelSize+1.5, 0.8)
		}
	}

	if l.cfg.ShowLegend {
		entries := make([]legendEntry, len(plates))
		for i, p := range plates {
			h := Hue(p.ID, len(plates))
			entries[i] = legendEntry{
				fill:  withAlpha(colorful.Hsl(h, 0.7, 0.5), 0.3),
				label: fmt.Sprintf("Plate %d", p.ID),
			}
		}
		drawLegend(gc, l.cfg.LegendX, l.cfg.LegendY, entries)
	}
}
