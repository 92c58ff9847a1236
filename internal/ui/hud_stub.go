//go:build !ebiten

package ui

import "github.com/deanpointblank/codenamestory/internal/core"

// Target is the generation the HUD reports on.
type Target interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Target, int) *HUD { return nil }

// SetTarget is a no-op in the headless build.
func (h *HUD) SetTarget(Target) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, float64) {}
