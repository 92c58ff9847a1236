package layers

import (
	"slices"

	"github.com/deanpointblank/codenamestory/internal/core"
)

// Registry owns the layers of one map and tracks which of them are active.
type Registry struct {
	layers map[string]Layer
	added  []string
	active map[string]bool
	order  []string
}

// NewRegistry creates an empty registry drawing in the given canonical
// order. Without an order DefaultOrder is used.
func NewRegistry(order ...string) *Registry {
	if len(order) == 0 {
		order = DefaultOrder
	}
	return &Registry{
		layers: make(map[string]Layer),
		active: make(map[string]bool),
		order:  slices.Clone(order),
	}
}

// Add registers l, replacing any layer with the same id. The layer starts
// active when it reports itself visible.
func (r *Registry) Add(l Layer) {
	id := l.ID()
	if _, ok := r.layers[id]; !ok {
		r.added = append(r.added, id)
	}
	r.layers[id] = l
	if l.Visible() {
		r.active[id] = true
	} else {
		delete(r.active, id)
	}
}

// Remove drops the layer and its activation.
func (r *Registry) Remove(id string) {
	if _, ok := r.layers[id]; !ok {
		return
	}
	delete(r.layers, id)
	delete(r.active, id)
	r.added = slices.DeleteFunc(r.added, func(s string) bool { return s == id })
}

// Toggle flips the activation of a registered layer. Unknown ids are
// ignored.
func (r *Registry) Toggle(id string) {
	if _, ok := r.layers[id]; !ok {
		return
	}
	r.SetActive(id, !r.active[id])
}

// SetActive forces the activation of a registered layer. It reports false
// for unknown ids.
func (r *Registry) SetActive(id string, on bool) bool {
	if _, ok := r.layers[id]; !ok {
		return false
	}
	if on {
		r.active[id] = true
	} else {
		delete(r.active, id)
	}
	return true
}

// IsActive reports whether id is registered and active.
func (r *Registry) IsActive(id string) bool { return r.active[id] }

// Configure forwards cfg to the layer when it is Configurable. It reports
// whether the layer accepted the value.
func (r *Registry) Configure(id string, cfg any) bool {
	l, ok := r.layers[id]
	if !ok {
		return false
	}
	c, ok := l.(Configurable)
	if !ok {
		return false
	}
	return c.Configure(cfg)
}

// Layer returns the layer registered under id.
func (r *Registry) Layer(id string) (Layer, bool) {
	l, ok := r.layers[id]
	return l, ok
}

// Active returns the active layers in canonical order. Active layers that
// the order does not name follow in registration order.
func (r *Registry) Active() []Layer {
	var out []Layer
	for _, id := range r.ActiveIDs() {
		out = append(out, r.layers[id])
	}
	return out
}

// ActiveIDs returns the ids of Active in the same order.
func (r *Registry) ActiveIDs() []string {
	var ids []string
	for _, id := range r.order {
		if r.active[id] && r.layers[id] != nil {
			ids = append(ids, id)
		}
	}
	for _, id := range r.added {
		if r.active[id] && !slices.Contains(r.order, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// All returns every registered layer in registration order.
func (r *Registry) All() []Layer {
	out := make([]Layer, 0, len(r.added))
	for _, id := range r.added {
		out = append(out, r.layers[id])
	}
	return out
}

// Order returns a copy of the canonical order.
func (r *Registry) Order() []string { return slices.Clone(r.order) }

// UpdatePoints notifies every PointsUpdater in registration order.
func (r *Registry) UpdatePoints(points []core.Point) {
	for _, id := range r.added {
		if u, ok := r.layers[id].(PointsUpdater); ok {
			u.UpdatePoints(points)
		}
	}
}
