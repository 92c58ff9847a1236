package tessellation

import "github.com/deanpointblank/codenamestory/internal/core"

// clipHalfPlane keeps the part of poly where (p - origin)·normal <= 0
// (Sutherland-Hodgman against a single edge).
func clipHalfPlane(poly []core.Vec2, origin, normal core.Vec2) []core.Vec2 {
	if len(poly) == 0 {
		return poly
	}
	side := func(p core.Vec2) float64 { return p.Sub(origin).Dot(normal) }

	out := make([]core.Vec2, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevSide := side(prev)
	for _, cur := range poly {
		curSide := side(cur)
		switch {
		case curSide <= 0 && prevSide <= 0:
			out = append(out, cur)
		case curSide <= 0 && prevSide > 0:
			out = append(out, intersect(prev, cur, prevSide, curSide), cur)
		case curSide > 0 && prevSide <= 0:
			out = append(out, intersect(prev, cur, prevSide, curSide))
		}
		prev, prevSide = cur, curSide
	}
	return out
}

func intersect(a, b core.Vec2, sa, sb float64) core.Vec2 {
	t := sa / (sa - sb)
	return a.Add(b.Sub(a).Scale(t))
}
