package layers

import (
	"slices"

	"github.com/llgcode/draw2d"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/tessellation"
)

// Policy controls how the elevation layer reads values outside [0, 1].
type Policy uint8

const (
	// ClampOnRead clamps the value used for colouring. Points keep their
	// unclamped elevation.
	ClampOnRead Policy = iota
	// Unclamped colours raw values; anything above the last threshold falls
	// into the highest tier.
	Unclamped
)

// Tier maps every elevation below Threshold to Color.
type Tier struct {
	Threshold float64
	Color     colorful.Color
	Label     string
}

// ElevationConfig configures ElevationLayer.
type ElevationConfig struct {
	Tiers  []Tier
	Policy Policy
	// Smooth blends between tier colours instead of stepping.
	Smooth     bool
	ShowLegend bool
	LegendX    float64
	LegendY    float64
}

// DefaultTiers returns the six terrain bands from deep water to mountains.
func DefaultTiers() []Tier {
	return []Tier{
		{Threshold: 0.3, Color: MustHex("#1a237e"), Label: "Deep Water"},
		{Threshold: 0.5, Color: MustHex("#42a5f5"), Label: "Shallow Water"},
		{Threshold: 0.7, Color: MustHex("#90e0ef"), Label: "Coastal"},
		{Threshold: 0.8, Color: MustHex("#2d6a4f"), Label: "Lowlands"},
		{Threshold: 0.9, Color: MustHex("#81c784"), Label: "Hills"},
		{Threshold: 1.0, Color: MustHex("#33691e"), Label: "Mountains"},
	}
}

// DefaultElevationConfig returns stepped default tiers read with clamping.
func DefaultElevationConfig() ElevationConfig {
	return ElevationConfig{
		Tiers:   DefaultTiers(),
		Policy:  ClampOnRead,
		LegendX: 20,
		LegendY: 20,
	}
}

// ElevationLayer fills every Voronoi cell with the colour of its point's
// elevation tier.
type ElevationLayer struct {
	cfg    ElevationConfig
	grad   colorgrad.Gradient
	smooth bool
}

// NewElevationLayer returns a layer using DefaultElevationConfig.
func NewElevationLayer() *ElevationLayer {
	l := &ElevationLayer{}
	l.apply(DefaultElevationConfig())
	return l
}

func (l *ElevationLayer) ID() string    { return ElevationID }
func (l *ElevationLayer) Visible() bool { return true }

// Config returns a copy of the current configuration.
func (l *ElevationLayer) Config() ElevationConfig {
	cfg := l.cfg
	cfg.Tiers = slices.Clone(l.cfg.Tiers)
	return cfg
}

// Configure accepts ElevationConfig or *ElevationConfig. An empty tier list
// keeps the current tiers.
func (l *ElevationLayer) Configure(cfg any) bool {
	switch c := cfg.(type) {
	case ElevationConfig:
		l.apply(c)
	case *ElevationConfig:
		if c == nil {
			return false
		}
		l.apply(*c)
	default:
		return false
	}
	return true
}

func (l *ElevationLayer) apply(cfg ElevationConfig) {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = l.cfg.Tiers
	}
	cfg.Tiers = slices.Clone(cfg.Tiers)
	l.cfg = cfg
	l.smooth = false
	if !cfg.Smooth || len(cfg.Tiers) < 2 {
		return
	}
	sorted := slices.Clone(cfg.Tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		switch {
		case a.Threshold < b.Threshold:
			return -1
		case a.Threshold > b.Threshold:
			return 1
		}
		return 0
	})
	lo, hi := sorted[0].Threshold, sorted[len(sorted)-1].Threshold
	if hi <= lo {
		return
	}
	colors := make([]colorful.Color, len(sorted))
	for i, t := range sorted {
		colors[i] = t.Color
	}
	grad, err := colorgrad.NewGradient().
		Colors(toColors(colors)...).
		Domain(lo, hi).
		Build()
	if err != nil {
		return
	}
	l.grad = grad
	l.smooth = true
}

// ColorFor returns the fill colour for an elevation value. Stepped mode picks
// the first tier whose threshold is strictly greater than the value and falls
// back to the tier with the highest threshold.
func (l *ElevationLayer) ColorFor(elevation float64) colorful.Color {
	if l.cfg.Policy == ClampOnRead {
		elevation = core.Clamp01(elevation)
	}
	if l.smooth {
		return l.grad.At(elevation)
	}
	tiers := l.cfg.Tiers
	if len(tiers) == 0 {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	top := 0
	for i, t := range tiers {
		if elevation < t.Threshold {
			return t.Color
		}
		if t.Threshold > tiers[top].Threshold {
			top = i
		}
	}
	return tiers[top].Color
}

func (l *ElevationLayer) Render(gc draw2d.GraphicContext, points []core.Point, width, height float64) {
	d := tessellation.Build(points, core.RectFromSize(width, height))
	for i, p := range points {
		poly, ok := d.CellPolygon(i)
		if !ok {
			continue
		}
		gc.SetFillColor(l.ColorFor(p.Elevation))
		tracePolygon(gc, poly)
		gc.Fill()
	}
	if l.cfg.ShowLegend {
		entries := make([]legendEntry, len(l.cfg.Tiers))
		for i, t := range l.cfg.Tiers {
			entries[i] = legendEntry{fill: t.Color, label: t.Label}
		}
		drawLegend(gc, l.cfg.LegendX, l.cfg.LegendY, entries)
	}
}
