//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/deanpointblank/codenamestory/internal/core"
)

// Target is the generation the HUD reports on and edits.
type Target interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

type layerToggler interface {
	ToggleLayer(id string)
	IsLayerActive(id string) bool
}

// HUD renders the control panel to the right of the map view.
type HUD struct {
	target     Target
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	layers       []hudLayerState
	controls     []hudControlState
	intSetter    core.IntParameterSetter
	toggler      layerToggler
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for target with the given panel width.
func NewHUD(target Target, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.SetTarget(target)
	return h
}

// SetTarget points the HUD at a new generation.
func (h *HUD) SetTarget(target Target) {
	if h == nil {
		return
	}
	h.target = target
	h.controls = nil
	h.intSetter = nil
	h.toggler = nil
	if target == nil {
		return
	}
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if toggler, ok := target.(layerToggler); ok {
		h.toggler = toggler
	}
	h.snapshot = target.Parameters()
	h.refreshLayers()
	h.layout()
}

// Update refreshes the cached snapshot and handles clicks. It reports whether
// the map needs to be redrawn.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.target == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	h.refreshLayers()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale float64) {
	if h == nil || h.width <= 0 || h.target == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := int(math.Ceil(float64(h.target.Size().H) * scale))
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLayers()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshLayers() {
	var next []hudLayerState
	for _, group := range h.snapshot.Groups {
		if group.Name != "Layers" {
			continue
		}
		for _, param := range group.Params {
			on, _ := strconv.ParseBool(param.Value)
			next = append(next, hudLayerState{
				id:     strings.TrimPrefix(param.Key, "layer_"),
				label:  param.Label,
				active: on,
			})
		}
	}
	if len(next) != len(h.layers) {
		h.layers = next
		h.layout()
		return
	}
	for i := range next {
		next[i].rect = h.layers[i].rect
	}
	h.layers = next
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || state.control.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.layers {
		if h.toggler != nil && pointInRect(px, my, h.layers[i].rect) {
			h.toggler.ToggleLayer(h.layers[i].id)
			h.layers[i].active = h.toggler.IsLayerActive(h.layers[i].id)
			return true
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if h.intSetter == nil || direction == 0 {
		return false
	}
	target, ok := adjustedValue(state, direction)
	if !ok {
		return false
	}
	if !h.intSetter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

// adjustedValue steps the control value in direction and clamps it to the
// control bounds. It reports false when the value would not change.
func adjustedValue(state *hudControlState, direction int) (int, bool) {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin {
		if min := int(math.Round(state.control.Min)); target < min {
			target = min
		}
	}
	if state.control.HasMax {
		if max := int(math.Round(state.control.Max)); target > max {
			target = max
		}
	}
	return target, target != state.intValue
}

func (h *HUD) drawLayers() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Layers", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, l := range h.layers {
		label := strconv.Itoa(i+1) + "  " + l.label
		h.drawButton(l.rect, label, l.active)
	}
}

func (h *HUD) drawControls() {
	if len(h.controls) == 0 {
		return
	}
	face := basicfont.Face7x13
	headerY := h.controlsTop() - sectionGap + headerBaseline
	text.Draw(h.panel, "Generation", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusOK := adjustedValue(state, -1)
		_, plusOK := adjustedValue(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && h.intSetter != nil && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && h.intSetter != nil && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) controlsTop() int {
	return layersTop + len(h.layers)*layerHeight + sectionGap
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.layers {
		top := layersTop + i*layerHeight
		h.layers[i].rect = image.Rect(panelPadding, top+2, h.width-panelPadding, top+layerHeight-2)
	}
	base := h.controlsTop()
	for i := range h.controls {
		top := base + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudLayerState struct {
	id     string
	label  string
	active bool
	rect   image.Rectangle
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	layerHeight    = 28
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	sectionGap     = 14 + 24
	layersTop      = panelPadding + headerBaseline + 14
)
