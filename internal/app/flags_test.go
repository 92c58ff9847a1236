package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("tectomap", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "1.5", "-plates", "5", "-hud", "0", "-w", "640"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 1.5 || cfg.HUD != 0 {
		t.Fatalf("viewer flags not bound: %+v", cfg)
	}
	if cfg.Map.Plates != 5 || cfg.Map.Width != 640 || cfg.Map.Height != 600 {
		t.Fatalf("map flags not bound: %+v", cfg.Map)
	}
}
