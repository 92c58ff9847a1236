package core

import (
	"slices"
	"testing"
)

func TestPointGridWithinMatchesBruteForce(t *testing.T) {
	rng := NewRNG(7)
	points := make([]Point, 300)
	for i := range points {
		points[i] = Point{X: rng.Range(0, 400), Y: rng.Range(0, 300)}
	}
	grid := NewPointGrid(points, 30)

	for _, probe := range []Vec2{{X: 10, Y: 10}, {X: 200, Y: 150}, {X: 399, Y: 299}, {X: -50, Y: 500}} {
		got := grid.Within(points, probe.X, probe.Y, 30)
		slices.Sort(got)

		var want []int
		for i, p := range points {
			if p.Pos().Sub(probe).Len() < 30 {
				want = append(want, i)
			}
		}
		if !slices.Equal(got, want) {
			t.Fatalf("probe %v: got %v, want %v", probe, got, want)
		}
	}
}

func TestPointGridEmpty(t *testing.T) {
	grid := NewPointGrid(nil, 10)
	if got := grid.Within(nil, 0, 0, 100); len(got) != 0 {
		t.Fatalf("expected no results from empty grid, got %v", got)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Fatal("empty point set must not report bounds")
	}
	r, ok := Bounds([]Point{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 1}})
	if !ok {
		t.Fatal("expected bounds")
	}
	if r != (Rect{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}) {
		t.Fatalf("unexpected bounds %+v", r)
	}
}
