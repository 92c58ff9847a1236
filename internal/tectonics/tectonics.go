// Package tectonics clusters a point field into plates, classifies the
// borders between them and derives elevation from those borders.
package tectonics

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/tessellation"
)

const (
	// OceanicChance is the probability that a plate is oceanic.
	OceanicChance = 0.3
	// TransformThreshold is the relative speed below which plates slide.
	TransformThreshold = 0.1
	// centerStep spaces consecutive plate centres along the noise field.
	centerStep = 0.9
)

// Simulator builds plate models from point fields. All randomness comes from
// the injected RNG.
type Simulator struct {
	rng *core.RNG
}

// NewSimulator returns a simulator drawing from rng.
func NewSimulator(rng *core.RNG) *Simulator {
	return &Simulator{rng: rng}
}

// Simulate assigns every point to its nearest plate centre and detects the
// boundaries between plates. Elevation is left untouched; call
// UpdateElevations to apply the model.
func (s *Simulator) Simulate(points []core.Point, plateCount int) *Model {
	if plateCount <= 0 && len(points) > 0 {
		plateCount = 1
	}
	if plateCount < 0 {
		plateCount = 0
	}

	centers := s.plateCenters(points, plateCount)
	m := &Model{
		Plates: make([]Plate, plateCount),
		Owner:  make([]int, len(points)),
	}
	for i := range m.Plates {
		kind := Continental
		if s.rng.Float64() > 1-OceanicChance {
			kind = Oceanic
		}
		m.Plates[i] = Plate{
			ID:   i,
			Kind: kind,
			Velocity: core.Vec2{
				X: s.rng.Range(-1, 1),
				Y: s.rng.Range(-1, 1),
			},
			BaseElevation: baseElevation(s.rng, kind),
			Age:           s.rng.Float64() * 100,
		}
	}

	for idx, p := range points {
		owner := nearest(centers, p.Pos())
		m.Owner[idx] = owner
		m.Plates[owner].Points = append(m.Plates[owner].Points, idx)
	}

	if len(points) > 1 && plateCount > 1 {
		bounds, _ := core.Bounds(points)
		m.Boundaries = detectBoundaries(tessellation.Build(points, bounds), m)
	}
	return m
}

func baseElevation(rng *core.RNG, kind PlateKind) float64 {
	if kind == Oceanic {
		return rng.Range(0.2, 0.3)
	}
	return rng.Range(0.6, 0.8)
}

// plateCenters draws centres from a seeded simplex field in a normalized
// [0,1] frame and maps that frame onto the square enclosing the point set.
func (s *Simulator) plateCenters(points []core.Point, n int) []core.Vec2 {
	noise := opensimplex.New(s.rng.Int64())
	ox := s.rng.Range(0, 1000)
	oy := s.rng.Range(0, 1000)

	frame, ok := core.Bounds(points)
	if !ok {
		frame = core.Rect{MaxX: 1, MaxY: 1}
	}
	c := frame.Center()
	half := math.Max(frame.Dx(), frame.Dy()) / 2

	centers := make([]core.Vec2, n)
	for i := range centers {
		t := float64(i) * centerStep
		angle := noise.Eval2(ox+t, oy) * 2 * math.Pi
		radius := 0.5 * math.Sqrt(math.Abs(noise.Eval2(ox, oy+t)))
		nx := 0.5 + math.Cos(angle)*radius
		ny := 0.5 + math.Sin(angle)*radius
		centers[i] = core.Vec2{
			X: c.X + (nx-0.5)*2*half,
			Y: c.Y + (ny-0.5)*2*half,
		}
	}
	return centers
}

func nearest(centers []core.Vec2, p core.Vec2) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centers {
		if d := math.Hypot(p.X-c.X, p.Y-c.Y); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func detectBoundaries(d *tessellation.Diagram, m *Model) []Boundary {
	var boundaries []Boundary
	byPair := make(map[[2]int]int)
	for idx := range m.Owner {
		own := m.Owner[idx]
		for _, n := range d.Neighbors(idx) {
			other := m.Owner[n]
			if other == own {
				continue
			}
			key := [2]int{own, other}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			bi, ok := byPair[key]
			if !ok {
				a, b := m.Plates[own], m.Plates[other]
				boundaries = append(boundaries, Boundary{
					Plates:   [2]int{own, other},
					Kind:     Classify(a, b),
					Strength: Strength(a, b),
				})
				bi = len(boundaries) - 1
				byPair[key] = bi
			}
			pts := boundaries[bi].Points
			if len(pts) == 0 || pts[len(pts)-1] != idx {
				boundaries[bi].Points = append(pts, idx)
			}
		}
	}
	return boundaries
}

// Classify derives the interaction of two plates from their relative
// velocity a - b.
func Classify(a, b Plate) BoundaryKind {
	v := a.Velocity.Sub(b.Velocity)
	if v.Len() < TransformThreshold {
		return Transform
	}
	if math.Abs(v.Angle()) < math.Pi/4 {
		return Convergent
	}
	return Divergent
}

// Strength scales the relative speed of two plates by how different they are.
func Strength(a, b Plate) float64 {
	typeFactor := 1.0
	if a.Kind != b.Kind {
		typeFactor = 1.5
	}
	ageFactor := math.Abs(a.Age-b.Age) / 100
	return a.Velocity.Sub(b.Velocity).Len() * typeFactor * (1 + ageFactor)
}

// Delta returns the elevation change applied to every point of a boundary.
func Delta(kind BoundaryKind, a, b Plate, strength float64) float64 {
	switch kind {
	case Convergent:
		if a.Kind == Continental && b.Kind == Continental {
			return strength * 0.5
		}
		if a.Kind != b.Kind {
			oceanic := a
			if b.Kind == Oceanic {
				oceanic = b
			}
			if oceanic.Age > 50 {
				return -strength * 0.3
			}
			return strength * 0.2
		}
		return 0
	case Divergent:
		if a.Kind == Oceanic && b.Kind == Oceanic {
			return strength * 0.2
		}
		return -strength * 0.1
	default:
		return -strength * 0.05
	}
}

// UpdateElevations resets every point to its plate's base elevation and then
// applies the boundary deltas. Results are not clamped. Calling it again with
// the same model yields the same values.
func (s *Simulator) UpdateElevations(points []core.Point, m *Model) {
	UpdateElevations(points, m)
}

// UpdateElevations is the RNG-free form of Simulator.UpdateElevations.
func UpdateElevations(points []core.Point, m *Model) {
	if m == nil {
		return
	}
	for _, plate := range m.Plates {
		for _, idx := range plate.Points {
			if idx >= 0 && idx < len(points) {
				points[idx].Elevation = plate.BaseElevation
			}
		}
	}
	for _, b := range m.Boundaries {
		a, c := m.Plates[b.Plates[0]], m.Plates[b.Plates[1]]
		delta := Delta(b.Kind, a, c, b.Strength)
		for _, idx := range b.Points {
			if idx >= 0 && idx < len(points) {
				points[idx].Elevation += delta
			}
		}
	}
}
