package tectonics

import "github.com/deanpointblank/codenamestory/internal/core"

// PlateKind distinguishes oceanic from continental crust.
type PlateKind uint8

const (
	Continental PlateKind = iota
	Oceanic
)

func (k PlateKind) String() string {
	if k == Oceanic {
		return "oceanic"
	}
	return "continental"
}

// BoundaryKind classifies how two plates interact along their border.
type BoundaryKind uint8

const (
	Convergent BoundaryKind = iota
	Divergent
	Transform
)

func (k BoundaryKind) String() string {
	switch k {
	case Convergent:
		return "convergent"
	case Divergent:
		return "divergent"
	default:
		return "transform"
	}
}

// Plate is a cluster of points that moves as one unit.
type Plate struct {
	ID            int
	Kind          PlateKind
	Velocity      core.Vec2
	BaseElevation float64
	Age           float64
	Points        []int
}

// Centroid returns the mean position of the plate's points. It reports false
// for a plate without points.
func (p Plate) Centroid(points []core.Point) (core.Vec2, bool) {
	var sum core.Vec2
	n := 0
	for _, idx := range p.Points {
		if idx < 0 || idx >= len(points) {
			continue
		}
		sum = sum.Add(points[idx].Pos())
		n++
	}
	if n == 0 {
		return core.Vec2{}, false
	}
	return sum.Scale(1 / float64(n)), true
}

// Boundary is the set of points where two plates meet. Plates is ordered as
// the pair was first met during detection: the plate of the scanned point,
// then its neighbour's plate. Kind and Strength are computed in that order.
type Boundary struct {
	Plates   [2]int
	Kind     BoundaryKind
	Strength float64
	Points   []int
}

// Model is the outcome of one simulation: plates, their boundaries and the
// owning plate of every point.
type Model struct {
	Plates     []Plate
	Boundaries []Boundary
	Owner      []int
}

// Boundary returns the record for the unordered plate pair (a, b).
func (m *Model) Boundary(a, b int) (Boundary, bool) {
	for _, bd := range m.Boundaries {
		if bd.Plates == [2]int{a, b} || bd.Plates == [2]int{b, a} {
			return bd, true
		}
	}
	return Boundary{}, false
}

// PlateOf returns the plate that owns point idx.
func (m *Model) PlateOf(idx int) (Plate, bool) {
	if idx < 0 || idx >= len(m.Owner) {
		return Plate{}, false
	}
	owner := m.Owner[idx]
	if owner < 0 || owner >= len(m.Plates) {
		return Plate{}, false
	}
	return m.Plates[owner], true
}
