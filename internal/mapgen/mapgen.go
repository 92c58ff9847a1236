// Package mapgen ties point generation, plate simulation and the layer stack
// into one generation that hosts can render and regenerate.
package mapgen

import (
	"maps"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/layers"
	"github.com/deanpointblank/codenamestory/internal/pointfield"
	"github.com/deanpointblank/codenamestory/internal/tectonics"
	"github.com/deanpointblank/codenamestory/internal/tessellation"
)

// Settings is the layer state carried from one generation to the next.
type Settings struct {
	Active  map[string]bool
	Configs map[string]any
}

// State is one generation: points, plates and the layers that draw them.
// A State is not safe for concurrent use.
type State struct {
	cfg      Config
	rng      *core.RNG
	sim      *tectonics.Simulator
	points   []core.Point
	model    *tectonics.Model
	registry *layers.Registry
	configs  map[string]any
	diagram  *tessellation.Diagram
}

// New generates a map of pointCount points on plateCount plates using the
// default seed.
func New(width, height, pointCount, plateCount int) *State {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Points = pointCount
	cfg.Plates = plateCount
	return NewWithConfig(cfg)
}

// NewWithConfig generates a map from cfg.
func NewWithConfig(cfg Config) *State {
	s := &State{cfg: cfg}
	s.generate(Settings{})
	return s
}

func (s *State) generate(settings Settings) {
	cfg := s.cfg
	s.rng = core.NewRNG(cfg.Seed)
	s.sim = tectonics.NewSimulator(s.rng)
	s.points = pointfield.Generate(s.rng, float64(cfg.Width), float64(cfg.Height), cfg.Points)
	s.model = s.sim.Simulate(s.points, cfg.Plates)
	s.sim.UpdateElevations(s.points, s.model)
	s.diagram = nil

	s.registry = layers.NewRegistry(layers.DefaultOrder...)
	s.registry.Add(layers.NewElevationLayer())
	s.registry.Add(layers.NewPlateLayer(s.model))
	s.registry.Add(layers.NewTectonicLayer(s.model, s.sim, cfg.Plates))
	s.registry.Add(layers.NewVoronoiLayer())

	s.configs = make(map[string]any)
	s.apply(settings)

	d := pointfield.Distribute(s.points)
	st := tectonics.Summarize(s.model, s.points)
	cfg.logf("mapgen: seed=%d points=%d plates=%d boundaries=%d (conv=%d div=%d trans=%d)",
		cfg.Seed, len(s.points), st.Plates, st.Boundaries,
		st.ByKind[tectonics.Convergent], st.ByKind[tectonics.Divergent], st.ByKind[tectonics.Transform])
	cfg.logf("mapgen: elevation deep=%d shallow=%d land=%d mountains=%d min=%.3f max=%.3f mean=%.3f outside=%d",
		d.DeepWater, d.ShallowWater, d.Land, d.Mountains, st.MinElevation, st.MaxElevation, st.MeanElevation, st.OutOfRange)
}

func (s *State) apply(settings Settings) {
	for id, cfg := range settings.Configs {
		s.ConfigureLayer(id, cfg)
	}
	for id, on := range settings.Active {
		s.registry.SetActive(id, on)
	}
}

// Config returns the configuration the state was generated from.
func (s *State) Config() Config { return s.cfg }

// Size returns the surface dimensions.
func (s *State) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Points returns the generated points. The slice is shared with the state.
func (s *State) Points() []core.Point { return s.points }

// Model returns the plate model shared by the overlay layers.
func (s *State) Model() *tectonics.Model { return s.model }

// Registry exposes the layer stack.
func (s *State) Registry() *layers.Registry { return s.registry }

// Settings captures layer activation and the last accepted config per layer.
func (s *State) Settings() Settings {
	active := make(map[string]bool)
	for _, l := range s.registry.All() {
		active[l.ID()] = s.registry.IsActive(l.ID())
	}
	return Settings{Active: active, Configs: maps.Clone(s.configs)}
}

// ToggleLayer flips a layer on or off. Unknown ids are ignored.
func (s *State) ToggleLayer(id string) { s.registry.Toggle(id) }

// IsLayerActive reports whether the layer is drawn.
func (s *State) IsLayerActive(id string) bool { return s.registry.IsActive(id) }

// ConfigureLayer passes cfg to the layer and remembers it for the next
// generation when accepted.
func (s *State) ConfigureLayer(id string, cfg any) bool {
	if !s.registry.Configure(id, cfg) {
		return false
	}
	s.configs[id] = cfg
	return true
}

// Regenerate returns a fresh generation with the same parameters and a seed
// drawn from this state's RNG. Layer settings carry over.
func (s *State) Regenerate() *State {
	cfg := s.cfg
	cfg.Seed = s.rng.Int64()
	next := &State{cfg: cfg}
	next.generate(s.Settings())
	return next
}

// Reset regenerates in place from seed, keeping layer settings.
func (s *State) Reset(seed int64) {
	settings := s.Settings()
	s.cfg.Seed = seed
	s.generate(settings)
}

// SetPoints replaces the point set and lets layers rebuild from it.
func (s *State) SetPoints(points []core.Point) {
	s.points = points
	s.diagram = nil
	s.registry.UpdatePoints(points)
}

// Render paints the background and then every active layer in order.
func (s *State) Render(gc draw2d.GraphicContext) {
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	gc.Save()
	gc.SetFillColor(s.cfg.BackgroundColor())
	gc.BeginPath()
	draw2dkit.Rectangle(gc, 0, 0, w, h)
	gc.Fill()
	gc.Restore()

	for _, l := range s.registry.Active() {
		gc.Save()
		l.Render(gc, s.points, w, h)
		gc.Restore()
	}
}

// Probe describes the point nearest to a surface position.
type Probe struct {
	Index int
	Point core.Point
	Plate tectonics.Plate
	// Boundaries lists the boundary kinds the point lies on.
	Boundaries []tectonics.BoundaryKind
}

// Inspect returns the point nearest to (x, y).
func (s *State) Inspect(x, y float64) (Probe, bool) {
	if len(s.points) == 0 {
		return Probe{}, false
	}
	if s.diagram == nil {
		s.diagram = tessellation.Build(s.points, core.RectFromSize(float64(s.cfg.Width), float64(s.cfg.Height)))
	}
	idx := s.diagram.Find(x, y)
	if idx < 0 {
		return Probe{}, false
	}
	p := Probe{Index: idx, Point: s.points[idx]}
	p.Plate, _ = s.model.PlateOf(idx)
	for _, b := range s.model.Boundaries {
		for _, bi := range b.Points {
			if bi == idx {
				p.Boundaries = append(p.Boundaries, b.Kind)
				break
			}
		}
	}
	return p, true
}

// Generate creates a new generation.
func Generate(width, height, pointCount, plateCount int) *State {
	return New(width, height, pointCount, plateCount)
}

// Regenerate returns a fresh generation carrying s's layer settings.
func Regenerate(s *State) *State { return s.Regenerate() }

// ToggleLayer flips a layer of s.
func ToggleLayer(s *State, id string) { s.ToggleLayer(id) }

// IsLayerActive reports whether a layer of s is drawn.
func IsLayerActive(s *State, id string) bool { return s.IsLayerActive(id) }

// ConfigureLayer configures a layer of s.
func ConfigureLayer(s *State, id string, cfg any) bool { return s.ConfigureLayer(id, cfg) }

// Render draws s onto gc.
func Render(s *State, gc draw2d.GraphicContext) { s.Render(gc) }
