// Package pointfield scatters the samples a map is generated from.
package pointfield

import (
	"math"

	"github.com/deanpointblank/codenamestory/internal/core"
)

const (
	// RadiusFraction is the share of the shorter surface side used as the
	// maximum placement radius.
	RadiusFraction = 0.4
	// ElevationNoise is the half-width of the uniform noise added to the
	// initial elevation.
	ElevationNoise = 0.2
)

// Generate places count points in polar coordinates around the centre of a
// width x height surface. Elevation starts high near the centre and falls
// towards the rim. A non-positive count yields an empty slice.
func Generate(rng *core.RNG, width, height float64, count int) []core.Point {
	if count <= 0 {
		return []core.Point{}
	}
	cx, cy := width/2, height/2
	maxRadius := math.Min(width, height) * RadiusFraction

	points := make([]core.Point, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * maxRadius
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius

		var normalized float64
		if maxRadius > 0 {
			normalized = math.Hypot(x-cx, y-cy) / maxRadius
		}
		noise := rng.Range(-ElevationNoise, ElevationNoise)

		points = append(points, core.Point{
			X:         x,
			Y:         y,
			Elevation: core.Clamp01(1 - normalized + noise),
		})
	}
	return points
}

// Distribution summarises the elevation spread of a point set.
type Distribution struct {
	DeepWater    int
	ShallowWater int
	Land         int
	Mountains    int

	Min, Max, Mean float64
}

// Distribute buckets elevations into water and land bands.
func Distribute(points []core.Point) Distribution {
	var d Distribution
	if len(points) == 0 {
		return d
	}
	d.Min = math.Inf(1)
	d.Max = math.Inf(-1)
	var sum float64
	for _, p := range points {
		e := p.Elevation
		switch {
		case e < 0.3:
			d.DeepWater++
		case e < 0.5:
			d.ShallowWater++
		case e < 0.7:
			d.Land++
		default:
			d.Mountains++
		}
		d.Min = math.Min(d.Min, e)
		d.Max = math.Max(d.Max, e)
		sum += e
	}
	d.Mean = sum / float64(len(points))
	return d
}
