// Package layers draws a generated map as a stack of independent visual
// layers onto a draw2d surface.
package layers

import (
	"github.com/llgcode/draw2d"

	"github.com/deanpointblank/codenamestory/internal/core"
)

// Layer ids used by the default stack.
const (
	ElevationID = "elevation"
	PlatesID    = "plates"
	TectonicID  = "tectonic"
	VoronoiID   = "voronoi"
)

// DefaultOrder is the canonical draw order, bottom to top.
var DefaultOrder = []string{ElevationID, PlatesID, TectonicID, VoronoiID}

// Layer renders one aspect of the map.
type Layer interface {
	ID() string
	// Visible reports whether the layer starts active when registered.
	Visible() bool
	Render(gc draw2d.GraphicContext, points []core.Point, width, height float64)
}

// Configurable layers accept a layer specific config value. Configure
// returns false when cfg is not a type the layer understands.
type Configurable interface {
	Configure(cfg any) bool
}

// PointsUpdater layers rebuild internal state when the point set changes.
type PointsUpdater interface {
	UpdatePoints(points []core.Point)
}
