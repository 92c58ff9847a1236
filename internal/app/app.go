//go:build ebiten

package app

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/deanpointblank/codenamestory/internal/layers"
	"github.com/deanpointblank/codenamestory/internal/mapgen"
	"github.com/deanpointblank/codenamestory/internal/render"
	"github.com/deanpointblank/codenamestory/internal/ui"
)

var layerKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game adapts a map generation to the ebiten.Game interface.
type Game struct {
	state   *mapgen.State
	painter *render.MapPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	raster  *image.RGBA

	scale    float64
	hudWidth int
	dirty    bool
}

// New constructs a Game for the provided generation.
func New(state *mapgen.State, scale float64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := state.Size()
	return &Game{
		state:    state,
		painter:  render.NewMapPainter(size.W, size.H),
		hud:      ui.NewHUD(state, hudWidth),
		overlay:  ui.NewOverlay(state, scale),
		raster:   image.NewRGBA(image.Rect(0, 0, size.W, size.H)),
		scale:    scale,
		hudWidth: hudWidth,
		dirty:    true,
	}
}

// Reset regenerates the current map from seed.
func (g *Game) Reset(seed int64) {
	g.state.Reset(seed)
	g.overlay.Invalidate()
	g.dirty = true
}

func (g *Game) regenerate() {
	g.state = g.state.Regenerate()
	g.hud.SetTarget(g.state)
	g.overlay.SetState(g.state)
	g.dirty = true
}

// Update handles input. The map is only re-rasterized after a change.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range layerKeys {
		if i < len(layers.DefaultOrder) && inpututil.IsKeyJustPressed(key) {
			g.state.ToggleLayer(layers.DefaultOrder[i])
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.state.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.hud.Update(g.mapWidth()) {
		g.overlay.Invalidate()
		g.dirty = true
	}
	g.overlay.Update()
	return nil
}

// Draw renders the map, the inspector and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		render.RasterizeInto(g.raster, g.state)
		g.painter.Upload(g.raster)
		g.dirty = false
	}
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.state.Size()
	return g.mapWidth() + g.hudWidth, int(math.Ceil(float64(s.H) * g.scale))
}

func (g *Game) mapWidth() int {
	return int(math.Ceil(float64(g.state.Size().W) * g.scale))
}
