package mapgen

import (
	"bytes"
	"flag"
	"image"
	"log"
	"strings"
	"testing"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/deanpointblank/codenamestory/internal/layers"
)

func TestGenerateWithoutPoints(t *testing.T) {
	s := Generate(800, 600, 0, 8)
	if len(s.Points()) != 0 {
		t.Fatalf("expected no points, got %d", len(s.Points()))
	}
	if got := len(s.Model().Plates); got != 8 {
		t.Fatalf("expected 8 empty plates, got %d", got)
	}
	if len(s.Model().Boundaries) != 0 {
		t.Fatal("expected no boundaries without points")
	}

	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	Render(s, draw2dimg.NewGraphicContext(img))
	for _, xy := range [][2]int{{0, 0}, {400, 300}, {799, 599}, {20, 20}} {
		r, g, b, a := img.At(xy[0], xy[1]).RGBA()
		if r>>8 != 0xf0 || g>>8 != 0xf0 || b>>8 != 0xf0 || a>>8 != 0xff {
			t.Fatalf("pixel %v is not background: %d %d %d %d", xy, r>>8, g>>8, b>>8, a>>8)
		}
	}
}

func TestGenerateSinglePlate(t *testing.T) {
	s := Generate(800, 600, 100, 1)
	m := s.Model()
	if len(m.Plates) != 1 || len(m.Plates[0].Points) != 100 {
		t.Fatal("single plate must own every point")
	}
	if len(m.Boundaries) != 0 {
		t.Fatalf("expected no boundaries, got %d", len(m.Boundaries))
	}
	for i, p := range s.Points() {
		if p.Elevation != m.Plates[0].BaseElevation {
			t.Fatalf("point %d elevation %.3f differs from base %.3f", i, p.Elevation, m.Plates[0].BaseElevation)
		}
	}
}

func TestDefaultLayersAllActive(t *testing.T) {
	s := Generate(400, 300, 200, 4)
	for _, id := range layers.DefaultOrder {
		if !IsLayerActive(s, id) {
			t.Fatalf("layer %q should start active", id)
		}
	}
	ToggleLayer(s, layers.VoronoiID)
	ToggleLayer(s, layers.VoronoiID)
	if !s.IsLayerActive(layers.VoronoiID) {
		t.Fatal("toggling twice must restore the layer")
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Points = 300
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	for i := range a.Points() {
		if a.Points()[i] != b.Points()[i] {
			t.Fatalf("point %d differs for the same seed", i)
		}
	}
}

func TestRegenerateCarriesSettings(t *testing.T) {
	s := Generate(400, 300, 200, 4)
	s.ToggleLayer(layers.VoronoiID)
	cfg := layers.DefaultElevationConfig()
	cfg.Smooth = true
	if !ConfigureLayer(s, layers.ElevationID, cfg) {
		t.Fatal("elevation layer rejected its config")
	}
	if ConfigureLayer(s, layers.VoronoiID, cfg) {
		t.Fatal("voronoi layer accepted an elevation config")
	}

	next := Regenerate(s)
	if next == s {
		t.Fatal("regenerate must return a new state")
	}
	if next.Config().Seed == s.Config().Seed {
		t.Fatal("regenerate should draw a new seed")
	}
	if next.IsLayerActive(layers.VoronoiID) {
		t.Fatal("deactivated layer came back after regenerate")
	}
	l, _ := next.Registry().Layer(layers.ElevationID)
	if !l.(*layers.ElevationLayer).Config().Smooth {
		t.Fatal("elevation config lost on regenerate")
	}
	if len(next.Points()) != 200 || len(next.Model().Plates) != 4 {
		t.Fatal("regenerate must keep point and plate counts")
	}
}

func TestResetReproducesSeed(t *testing.T) {
	s := Generate(400, 300, 150, 3)
	first := append([]float64(nil), elevations(s)...)
	s.ToggleLayer(layers.PlatesID)
	s.Reset(s.Config().Seed)
	for i, e := range elevations(s) {
		if e != first[i] {
			t.Fatalf("elevation %d changed after reset", i)
		}
	}
	if s.IsLayerActive(layers.PlatesID) {
		t.Fatal("reset dropped layer activation")
	}
}

func elevations(s *State) []float64 {
	out := make([]float64, len(s.Points()))
	for i, p := range s.Points() {
		out[i] = p.Elevation
	}
	return out
}

func TestSetPointsRebuildsModel(t *testing.T) {
	s := Generate(400, 300, 100, 4)
	other := Generate(400, 300, 250, 4)
	s.SetPoints(other.Points())
	if got := len(s.Model().Owner); got != 250 {
		t.Fatalf("model covers %d points after SetPoints, want 250", got)
	}
	total := 0
	for _, p := range s.Model().Plates {
		total += len(p.Points)
	}
	if total != 250 {
		t.Fatalf("plates own %d points, want 250", total)
	}
}

func TestInspect(t *testing.T) {
	s := Generate(400, 300, 200, 4)
	p := s.Points()[17]
	probe, ok := s.Inspect(p.X, p.Y)
	if !ok || probe.Index != 17 {
		t.Fatalf("inspect at point 17 returned %d (%v)", probe.Index, ok)
	}
	if s.Model().Owner[17] != probe.Plate.ID {
		t.Fatalf("probe plate %d, owner %d", probe.Plate.ID, s.Model().Owner[17])
	}
	if _, ok := Generate(400, 300, 0, 4).Inspect(10, 10); ok {
		t.Fatal("empty map has nothing to inspect")
	}
}

func TestSetIntParameter(t *testing.T) {
	s := Generate(400, 300, 100, 4)
	if !s.SetIntParameter("points", 300) || len(s.Points()) != 300 {
		t.Fatal("points parameter not applied")
	}
	if !s.SetIntParameter("plates", 6) || len(s.Model().Plates) != 6 {
		t.Fatal("plates parameter not applied")
	}
	if s.SetIntParameter("plates", 0) {
		t.Fatal("zero plates accepted")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown key accepted")
	}
	param, ok := s.Parameters().Lookup("points")
	if !ok || param.Value != "300" {
		t.Fatalf("snapshot reports %+v", param)
	}
}

func TestConfigFromMapAndBind(t *testing.T) {
	c := FromMap(map[string]string{"w": "320", "h": "-5", "points": "50", "plates": "x", "seed": "7", "bg": "#000000"})
	if c.Width != 320 || c.Height != 600 || c.Points != 50 || c.Plates != 8 || c.Seed != 7 || c.Background != "#000000" {
		t.Fatalf("unexpected config %+v", c)
	}

	c = DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-points", "12", "-plates", "3", "-seed", "99"}); err != nil {
		t.Fatal(err)
	}
	if c.Points != 12 || c.Plates != 3 || c.Seed != 99 {
		t.Fatalf("flags not bound: %+v", c)
	}

	c.Background = "nope"
	r, g, b, _ := c.BackgroundColor().RGBA()
	if r>>8 != 0xf0 || g>>8 != 0xf0 || b>>8 != 0xf0 {
		t.Fatal("invalid background should fall back to the default")
	}
}

func TestLoggerReceivesSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Points = 50
	cfg.Logger = log.New(&buf, "", 0)
	NewWithConfig(cfg)
	if !strings.Contains(buf.String(), "seed=42 points=50 plates=8") {
		t.Fatalf("missing generation summary in %q", buf.String())
	}
}
