package layers

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/pointfield"
	"github.com/deanpointblank/codenamestory/internal/tectonics"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	near := func(x, y uint32) bool {
		d := int(x>>8) - int(y>>8)
		return d >= -1 && d <= 1
	}
	return near(ar, br) && near(ag, bg) && near(ab, bb) && near(aa, ba)
}

func TestElevationTiers(t *testing.T) {
	l := NewElevationLayer()
	tiers := DefaultTiers()
	if got := l.ColorFor(0.95); got != tiers[5].Color {
		t.Fatalf("0.95 coloured %s, want mountains %s", got.Hex(), tiers[5].Color.Hex())
	}
	if got := l.ColorFor(0.25); got != tiers[0].Color {
		t.Fatalf("0.25 coloured %s, want deep water %s", got.Hex(), tiers[0].Color.Hex())
	}
	if got := l.ColorFor(0.5); got != tiers[2].Color {
		t.Fatalf("threshold value 0.5 coloured %s, want coastal", got.Hex())
	}
	if got := l.ColorFor(1.7); got != tiers[5].Color {
		t.Fatalf("out of range high value coloured %s", got.Hex())
	}
	if got := l.ColorFor(-0.4); got != tiers[0].Color {
		t.Fatalf("out of range low value coloured %s", got.Hex())
	}
}

func TestUnclampedPolicyFallsBackToHighestTier(t *testing.T) {
	l := NewElevationLayer()
	cfg := l.Config()
	cfg.Policy = Unclamped
	cfg.Tiers = []Tier{
		{Threshold: 0.8, Color: MustHex("#ffffff"), Label: "high"},
		{Threshold: 0.2, Color: MustHex("#000000"), Label: "low"},
	}
	if !l.Configure(cfg) {
		t.Fatal("configure rejected ElevationConfig")
	}
	if got := l.ColorFor(3); got != MustHex("#ffffff") {
		t.Fatalf("value above every threshold coloured %s, want highest tier", got.Hex())
	}
	if got := l.ColorFor(0.1); got != MustHex("#ffffff") {
		t.Fatalf("tiers are matched in order, got %s", got.Hex())
	}
}

func TestSmoothGradientHitsTierColours(t *testing.T) {
	l := NewElevationLayer()
	cfg := l.Config()
	cfg.Smooth = true
	l.Configure(&cfg)
	tiers := DefaultTiers()
	if got := l.ColorFor(0.3); !sameColor(got, tiers[0].Color) {
		t.Fatalf("gradient start %s, want %s", got.Hex(), tiers[0].Color.Hex())
	}
	if got := l.ColorFor(1.0); !sameColor(got, tiers[5].Color) {
		t.Fatalf("gradient end %s, want %s", got.Hex(), tiers[5].Color.Hex())
	}
	if l.ColorFor(0.4) == l.ColorFor(0.45) {
		t.Fatal("smooth mode should blend between thresholds")
	}
}

func TestConfigureRejectsForeignTypes(t *testing.T) {
	for _, c := range []Configurable{NewElevationLayer(), NewVoronoiLayer(), NewTectonicLayer(nil, nil, 8), NewPlateLayer(nil)} {
		if c.Configure("stroke") {
			t.Fatalf("%T accepted a string config", c)
		}
		if c.Configure(42) {
			t.Fatalf("%T accepted an int config", c)
		}
	}
}

func TestVoronoiConfigureKeepsZeroFields(t *testing.T) {
	l := NewVoronoiLayer()
	l.Configure(VoronoiConfig{Width: 2})
	if cfg := l.Config(); cfg.Width != 2 || !sameColor(cfg.Stroke, MustHex("#666666")) {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestRegistryToggleAndOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(NewVoronoiLayer())
	r.Add(NewTectonicLayer(nil, nil, 8))
	r.Add(NewElevationLayer())
	r.Add(NewPlateLayer(nil))

	if got := r.ActiveIDs(); !slices.Equal(got, DefaultOrder) {
		t.Fatalf("active order %v, want %v", got, DefaultOrder)
	}
	var all []string
	for _, l := range r.All() {
		all = append(all, l.ID())
	}
	if want := []string{VoronoiID, TectonicID, ElevationID, PlatesID}; !slices.Equal(all, want) {
		t.Fatalf("registration order %v, want %v", all, want)
	}

	r.Toggle(TectonicID)
	if r.IsActive(TectonicID) {
		t.Fatal("toggle did not deactivate")
	}
	r.Toggle(TectonicID)
	if !r.IsActive(TectonicID) {
		t.Fatal("toggling twice must restore activation")
	}

	r.Toggle("missing")
	if r.IsActive("missing") {
		t.Fatal("unknown ids must not become active")
	}

	r.Remove(PlatesID)
	if r.IsActive(PlatesID) {
		t.Fatal("removed layer still active")
	}
	if _, ok := r.Layer(PlatesID); ok {
		t.Fatal("removed layer still registered")
	}
	if got := r.ActiveIDs(); !slices.Equal(got, []string{ElevationID, TectonicID, VoronoiID}) {
		t.Fatalf("active after remove %v", got)
	}
}

type plainLayer struct{ id string }

func (p plainLayer) ID() string    { return p.id }
func (p plainLayer) Visible() bool { return false }
func (p plainLayer) Render(draw2d.GraphicContext, []core.Point, float64, float64) {}

func TestRegistryConfigureAndExtraLayers(t *testing.T) {
	r := NewRegistry(ElevationID)
	r.Add(plainLayer{id: "grid"})
	r.Add(NewElevationLayer())
	if r.Configure("grid", VoronoiConfig{}) {
		t.Fatal("non configurable layer accepted a config")
	}
	if r.Configure("missing", ElevationConfig{}) {
		t.Fatal("unknown layer accepted a config")
	}
	if r.IsActive("grid") {
		t.Fatal("invisible layer must start inactive")
	}
	r.Toggle("grid")
	if got := r.ActiveIDs(); !slices.Equal(got, []string{ElevationID, "grid"}) {
		t.Fatalf("layers outside the canonical order go last, got %v", got)
	}
}

func TestTectonicUpdateSharesModel(t *testing.T) {
	points := pointfield.Generate(core.NewRNG(1), 400, 300, 200)
	model := &tectonics.Model{}
	tl := NewTectonicLayer(model, tectonics.NewSimulator(core.NewRNG(2)), 5)
	pl := NewPlateLayer(model)
	r := NewRegistry()
	r.Add(tl)
	r.Add(pl)
	r.UpdatePoints(points)

	if len(pl.model.Plates) != 5 {
		t.Fatalf("plate layer sees %d plates after update", len(pl.model.Plates))
	}
	if len(model.Owner) != len(points) {
		t.Fatalf("owner map covers %d of %d points", len(model.Owner), len(points))
	}
	owner, _ := model.PlateOf(0)
	if len(owner.Points) == 0 {
		t.Fatal("point 0 has no plate")
	}
}

func TestRadiusCells(t *testing.T) {
	points := []core.Point{
		{X: 50, Y: 50},
		{X: 60, Y: 50}, {X: 50, Y: 60}, {X: 40, Y: 50}, {X: 50, Y: 40},
		{X: 200, Y: 200},
	}
	cell := RadiusCells{Radius: 30}.Shape(points, 300, 300)
	ring, ok := cell(0)
	if !ok || len(ring) != 4 {
		t.Fatalf("expected a four point ring, got %v", ring)
	}
	for i := 1; i < len(ring); i++ {
		if ring[i-1].Sub(points[0].Pos()).Angle() > ring[i].Sub(points[0].Pos()).Angle() {
			t.Fatalf("ring not sorted by angle: %v", ring)
		}
	}
	if _, ok := cell(5); ok {
		t.Fatal("isolated point must not produce a cell")
	}
}

func TestHue(t *testing.T) {
	if got := Hue(2, 8); got != 90 {
		t.Fatalf("hue of plate 2 of 8 is %.1f", got)
	}
	if got := Hue(0, 0); got != 0 {
		t.Fatalf("hue without plates is %.1f", got)
	}
}

func TestElevationRenderFillsCells(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	gc := draw2dimg.NewGraphicContext(img)
	points := []core.Point{{X: 25, Y: 40, Elevation: 0.95}, {X: 75, Y: 40, Elevation: 0.1}}
	NewElevationLayer().Render(gc, points, 100, 80)

	tiers := DefaultTiers()
	if got := img.At(10, 40); !sameColor(got, tiers[5].Color) {
		t.Fatalf("left cell pixel %v, want %s", got, tiers[5].Color.Hex())
	}
	if got := img.At(90, 40); !sameColor(got, tiers[0].Color) {
		t.Fatalf("right cell pixel %v, want %s", got, tiers[0].Color.Hex())
	}
}

func TestOverlayLayersRender(t *testing.T) {
	points := pointfield.Generate(core.NewRNG(3), 320, 240, 300)
	sim := tectonics.NewSimulator(core.NewRNG(4))
	model := sim.Simulate(points, 6)
	tectonics.UpdateElevations(points, model)

	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	gc := draw2dimg.NewGraphicContext(img)
	pl := NewPlateLayer(model)
	pl.Configure(PlateConfig{ShowLegend: true, LegendX: 5, LegendY: 5})
	for _, l := range []Layer{pl, NewTectonicLayer(model, sim, 6), NewVoronoiLayer()} {
		gc.Save()
		l.Render(gc, points, 320, 240)
		gc.Restore()
	}
	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatal("overlay layers painted nothing")
	}
	if _, ok := pl.Config().Shaper.(RadiusCells); !ok {
		t.Fatal("nil shaper must keep the radius default")
	}
}

func TestMustHexShortForm(t *testing.T) {
	if got := MustHex("#666"); got != MustHex("#666666") {
		t.Fatalf("short hex parsed as %s", got.Hex())
	}
	if c := withAlpha(colorful.Color{R: 1}, 0.3); c.A != 77 || c.R != 255 {
		t.Fatalf("unexpected alpha colour %+v", c)
	}
}
