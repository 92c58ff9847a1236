package tectonics

import "github.com/deanpointblank/codenamestory/internal/core"

// Stats summarizes a model for logs and surveys.
type Stats struct {
	Plates      int
	Oceanic     int
	Continental int
	EmptyPlates int
	Boundaries  int
	ByKind      map[BoundaryKind]int
	// BoundaryPoints counts distinct points sitting on at least one boundary.
	BoundaryPoints int
	MinElevation   float64
	MaxElevation   float64
	MeanElevation  float64
	// OutOfRange counts points whose elevation left [0, 1].
	OutOfRange int
}

// Summarize counts plates and boundaries and records the elevation range of
// points.
func Summarize(m *Model, points []core.Point) Stats {
	st := Stats{ByKind: make(map[BoundaryKind]int)}
	if m == nil {
		return st
	}
	st.Plates = len(m.Plates)
	for _, p := range m.Plates {
		if p.Kind == Oceanic {
			st.Oceanic++
		} else {
			st.Continental++
		}
		if len(p.Points) == 0 {
			st.EmptyPlates++
		}
	}
	st.Boundaries = len(m.Boundaries)
	onBoundary := make(map[int]struct{})
	for _, b := range m.Boundaries {
		st.ByKind[b.Kind]++
		for _, idx := range b.Points {
			onBoundary[idx] = struct{}{}
		}
	}
	st.BoundaryPoints = len(onBoundary)
	var sum float64
	for i, p := range points {
		sum += p.Elevation
		if p.Elevation < 0 || p.Elevation > 1 {
			st.OutOfRange++
		}
		if i == 0 || p.Elevation < st.MinElevation {
			st.MinElevation = p.Elevation
		}
		if i == 0 || p.Elevation > st.MaxElevation {
			st.MaxElevation = p.Elevation
		}
	}
	if len(points) > 0 {
		st.MeanElevation = sum / float64(len(points))
	}
	return st
}
