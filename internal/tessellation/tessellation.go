// Package tessellation computes the Delaunay triangulation of a point set and
// the Voronoi cells dual to it, clipped to a rectangle.
package tessellation

import (
	"cmp"
	"math"
	"slices"

	"github.com/fogleman/delaunay"

	"github.com/deanpointblank/codenamestory/internal/core"
)

// Diagram is a Delaunay triangulation plus its clipped Voronoi dual.
type Diagram struct {
	sites     []core.Vec2
	bounds    core.Rect
	neighbors [][]int
	// Degenerate is set when no triangulation exists for the input (fewer
	// than three points, or all points collinear). Adjacency then links
	// consecutive sites along the line.
	Degenerate bool
}

// Build triangulates points and prepares Voronoi cells clipped to bounds.
// Building over zero points succeeds; every query on the result reports
// nothing.
func Build(points []core.Point, bounds core.Rect) *Diagram {
	d := &Diagram{
		sites:     make([]core.Vec2, len(points)),
		bounds:    bounds,
		neighbors: make([][]int, len(points)),
	}
	for i, p := range points {
		d.sites[i] = p.Pos()
	}
	if len(points) == 0 {
		return d
	}

	var tri *delaunay.Triangulation
	if len(points) >= 3 {
		pts := make([]delaunay.Point, len(points))
		for i, p := range points {
			pts[i] = delaunay.Point{X: p.X, Y: p.Y}
		}
		t, err := delaunay.Triangulate(pts)
		if err == nil && len(t.Triangles) > 0 {
			tri = t
		}
	}
	if tri == nil {
		d.Degenerate = true
		d.linkAlongLine()
		return d
	}

	seen := make([]map[int]struct{}, len(points))
	link := func(a, b int) {
		if seen[a] == nil {
			seen[a] = make(map[int]struct{}, 6)
		}
		if _, ok := seen[a][b]; ok {
			return
		}
		seen[a][b] = struct{}{}
		d.neighbors[a] = append(d.neighbors[a], b)
	}
	for t := 0; t+2 < len(tri.Triangles); t += 3 {
		a, b, c := tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]
		link(a, b)
		link(b, a)
		link(b, c)
		link(c, b)
		link(c, a)
		link(a, c)
	}
	// Duplicated sites are left out of the triangulation. Bound them by
	// everyone else, then keep only the sites that shape the cell.
	for i := range d.neighbors {
		if len(d.neighbors[i]) == 0 {
			d.neighbors[i] = d.edgeNeighbors(i, d.allExcept(i))
		}
	}
	return d
}

// linkAlongLine orders collinear sites by their position on the line and
// links each group of coincident sites to the groups directly before and
// after it.
func (d *Diagram) linkAlongLine() {
	origin := d.sites[0]
	var dir core.Vec2
	for _, s := range d.sites {
		if v := s.Sub(origin); v.Len() > dir.Len() {
			dir = v
		}
	}
	if dir.Len() == 0 {
		return
	}

	order := make([]int, len(d.sites))
	pos := make([]float64, len(d.sites))
	for i, s := range d.sites {
		order[i] = i
		pos[i] = s.Sub(origin).Dot(dir)
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(pos[a], pos[b]) })

	var groups [][]int
	for k, i := range order {
		if k == 0 || pos[i] != pos[order[k-1]] {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], i)
	}
	for g := 1; g < len(groups); g++ {
		for _, a := range groups[g-1] {
			for _, b := range groups[g] {
				d.neighbors[a] = append(d.neighbors[a], b)
				d.neighbors[b] = append(d.neighbors[b], a)
			}
		}
	}
	for i := range d.neighbors {
		slices.Sort(d.neighbors[i])
	}
}

func (d *Diagram) allExcept(i int) []int {
	out := make([]int, 0, len(d.sites)-1)
	for j := range d.sites {
		if j != i {
			out = append(out, j)
		}
	}
	return out
}

// edgeNeighbors clips the cell of site i against every candidate and keeps
// the candidates whose bisector carries an edge of the result.
func (d *Diagram) edgeNeighbors(i int, candidates []int) []int {
	poly, ok := d.clipCell(i, candidates)
	if !ok {
		return nil
	}
	site := d.sites[i]
	eps := 1e-9 * math.Max(1, math.Max(d.bounds.Dx(), d.bounds.Dy()))
	var out []int
	for _, j := range candidates {
		normal := d.sites[j].Sub(site)
		n := normal.Len()
		if n == 0 {
			continue
		}
		mid := site.Add(d.sites[j]).Scale(0.5)
		on := 0
		for _, v := range poly {
			if math.Abs(v.Sub(mid).Dot(normal))/n <= eps {
				on++
			}
		}
		if on >= 2 {
			out = append(out, j)
		}
	}
	return out
}

// Len returns the number of sites.
func (d *Diagram) Len() int { return len(d.sites) }

// Bounds returns the clipping rectangle.
func (d *Diagram) Bounds() core.Rect { return d.bounds }

// Neighbors returns the indices adjacent to site i in the triangulation.
// The slice is shared with the diagram and must not be modified.
func (d *Diagram) Neighbors(i int) []int {
	if i < 0 || i >= len(d.neighbors) {
		return nil
	}
	return d.neighbors[i]
}

// CellPolygon returns the ordered vertices of the Voronoi cell around site i,
// clipped to the diagram bounds. The second result is false when the cell is
// missing or has collapsed to fewer than three vertices.
func (d *Diagram) CellPolygon(i int) ([]core.Vec2, bool) {
	if i < 0 || i >= len(d.sites) || d.bounds.Empty() {
		return nil, false
	}
	return d.clipCell(i, d.neighbors[i])
}

func (d *Diagram) clipCell(i int, against []int) ([]core.Vec2, bool) {
	b := d.bounds
	poly := []core.Vec2{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
	site := d.sites[i]
	for _, j := range against {
		other := d.sites[j]
		normal := other.Sub(site)
		if normal.X == 0 && normal.Y == 0 {
			continue
		}
		mid := site.Add(other).Scale(0.5)
		poly = clipHalfPlane(poly, mid, normal)
		if len(poly) < 3 {
			return nil, false
		}
	}
	return poly, true
}

// Find returns the index of the site nearest to (x, y), or -1 for an empty
// diagram. It walks the adjacency greedily starting from site 0.
func (d *Diagram) Find(x, y float64) int {
	if len(d.sites) == 0 {
		return -1
	}
	target := core.Vec2{X: x, Y: y}
	current := 0
	best := dist2(d.sites[current], target)
	for {
		next := current
		for _, j := range d.neighbors[current] {
			if dd := dist2(d.sites[j], target); dd < best {
				best = dd
				next = j
			}
		}
		if next == current {
			return current
		}
		current = next
	}
}

func dist2(a, b core.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
