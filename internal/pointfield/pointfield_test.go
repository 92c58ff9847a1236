package pointfield

import (
	"math"
	"slices"
	"testing"

	"github.com/deanpointblank/codenamestory/internal/core"
)

func TestGenerateEmpty(t *testing.T) {
	points := Generate(core.NewRNG(1), 800, 600, 0)
	if points == nil || len(points) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", points)
	}
}

func TestGenerateStaysInsideDisc(t *testing.T) {
	points := Generate(core.NewRNG(3), 800, 600, 2000)
	if len(points) != 2000 {
		t.Fatalf("expected 2000 points, got %d", len(points))
	}
	maxRadius := 600 * RadiusFraction
	for i, p := range points {
		r := math.Hypot(p.X-400, p.Y-300)
		if r > maxRadius+1e-9 {
			t.Fatalf("point %d at radius %.3f exceeds %.3f", i, r, maxRadius)
		}
		if p.Elevation < 0 || p.Elevation > 1 {
			t.Fatalf("point %d elevation %.3f outside [0,1]", i, p.Elevation)
		}
		if p.Temperature != 0 || p.Rainfall != 0 {
			t.Fatalf("point %d climate fields must start at zero", i)
		}
		// Elevation follows 1 - r/maxRadius within the noise band.
		base := 1 - r/maxRadius
		if p.Elevation < core.Clamp01(base-ElevationNoise)-1e-9 || p.Elevation > core.Clamp01(base+ElevationNoise)+1e-9 {
			t.Fatalf("point %d elevation %.3f not within noise band of %.3f", i, p.Elevation, base)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(core.NewRNG(11), 320, 240, 50)
	b := Generate(core.NewRNG(11), 320, 240, 50)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same point field")
	}
	c := Generate(core.NewRNG(12), 320, 240, 50)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different point fields")
	}
}

func TestDistribute(t *testing.T) {
	d := Distribute([]core.Point{{Elevation: 0.1}, {Elevation: 0.4}, {Elevation: 0.6}, {Elevation: 0.9}, {Elevation: 1.4}})
	if d.DeepWater != 1 || d.ShallowWater != 1 || d.Land != 1 || d.Mountains != 2 {
		t.Fatalf("unexpected buckets %+v", d)
	}
	if d.Min != 0.1 || d.Max != 1.4 {
		t.Fatalf("unexpected range %.2f..%.2f", d.Min, d.Max)
	}
	if math.Abs(d.Mean-0.68) > 1e-9 {
		t.Fatalf("unexpected mean %.4f", d.Mean)
	}
}
