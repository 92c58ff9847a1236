//go:build !ebiten

package ui

import "github.com/deanpointblank/codenamestory/internal/mapgen"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*mapgen.State, float64) *Overlay { return &Overlay{} }

// SetState is a no-op in headless builds.
func (o *Overlay) SetState(*mapgen.State) {}

// Invalidate is a no-op in headless builds.
func (o *Overlay) Invalidate() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
