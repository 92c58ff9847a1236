package core

import "math"

// PointGrid buckets point indices into square cells in row-major order so
// radius queries only visit nearby points.
type PointGrid struct {
	W, H     int
	CellSize float64
	origin   Vec2
	cells    [][]int
}

// NewPointGrid indexes points into cells of the given size. A non-positive
// cell size falls back to a single cell.
func NewPointGrid(points []Point, cellSize float64) *PointGrid {
	bounds, ok := Bounds(points)
	if !ok {
		return &PointGrid{W: 1, H: 1, CellSize: 1, cells: make([][]int, 1)}
	}
	if cellSize <= 0 {
		cellSize = math.Max(math.Max(bounds.Dx(), bounds.Dy()), 1)
	}
	w := int(bounds.Dx()/cellSize) + 1
	h := int(bounds.Dy()/cellSize) + 1
	g := &PointGrid{
		W:        w,
		H:        h,
		CellSize: cellSize,
		origin:   Vec2{X: bounds.MinX, Y: bounds.MinY},
		cells:    make([][]int, w*h),
	}
	for i, p := range points {
		cx, cy := g.cellOf(p.X, p.Y)
		idx := g.Index(cx, cy)
		g.cells[idx] = append(g.cells[idx], i)
	}
	return g
}

// Index returns the linear slice index for cell coordinates (x, y).
func (g *PointGrid) Index(x, y int) int { return y*g.W + x }

// Cell exposes the point indices stored in cell (x, y).
func (g *PointGrid) Cell(x, y int) []int {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return nil
	}
	return g.cells[g.Index(x, y)]
}

func (g *PointGrid) cellOf(x, y float64) (int, int) {
	cx := int((x - g.origin.X) / g.CellSize)
	cy := int((y - g.origin.Y) / g.CellSize)
	return clampInt(cx, 0, g.W-1), clampInt(cy, 0, g.H-1)
}

// Within returns the indices of points strictly closer than radius to
// (x, y). The result is in no particular order.
func (g *PointGrid) Within(points []Point, x, y, radius float64) []int {
	if radius <= 0 {
		return nil
	}
	minX, minY := g.cellOf(x-radius, y-radius)
	maxX, maxY := g.cellOf(x+radius, y+radius)
	r2 := radius * radius
	var out []int
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, i := range g.cells[g.Index(cx, cy)] {
				dx := points[i].X - x
				dy := points[i].Y - y
				if dx*dx+dy*dy < r2 {
					out = append(out, i)
				}
			}
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
