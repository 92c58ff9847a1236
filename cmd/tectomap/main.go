//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/deanpointblank/codenamestory/internal/app"
	"github.com/deanpointblank/codenamestory/internal/mapgen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "log a summary of every generation")
	flag.Parse()

	if *verbose {
		cfg.Map.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	state := mapgen.NewWithConfig(cfg.Map)
	game := app.New(state, cfg.Scale, cfg.HUD)

	ebiten.SetWindowTitle("tectomap")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(math.Ceil(float64(cfg.Map.Width)*cfg.Scale))+cfg.HUD, int(math.Ceil(float64(cfg.Map.Height)*cfg.Scale)))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
