package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/deanpointblank/codenamestory/internal/layers"
	"github.com/deanpointblank/codenamestory/internal/mapgen"
	"github.com/deanpointblank/codenamestory/internal/preview"
	"github.com/deanpointblank/codenamestory/internal/render"
)

func main() {
	cfg := mapgen.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("o", "map.png", "output file (.png or .svg)")
	only := flag.String("layers", "", "comma separated layers to draw (default: all)")
	smooth := flag.Bool("smooth", false, "blend elevation colours")
	legend := flag.Bool("legend", false, "draw the elevation legend")
	voronoiPlates := flag.Bool("voronoi-plates", false, "shade plates with Voronoi cells")
	flag.Parse()

	cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	state := mapgen.NewWithConfig(cfg)

	if *smooth || *legend {
		ec := layers.DefaultElevationConfig()
		ec.Smooth = *smooth
		ec.ShowLegend = *legend
		state.ConfigureLayer(layers.ElevationID, ec)
	}
	if *voronoiPlates {
		state.ConfigureLayer(layers.PlatesID, layers.PlateConfig{Shaper: layers.VoronoiCells{}})
	}
	if *only != "" {
		want := map[string]bool{}
		for _, id := range strings.Split(*only, ",") {
			id = strings.TrimSpace(id)
			if _, ok := state.Registry().Layer(id); !ok {
				log.Fatalf("unknown layer %q", id)
			}
			want[id] = true
		}
		for _, l := range state.Registry().All() {
			state.Registry().SetActive(l.ID(), want[l.ID()])
		}
	}

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".svg":
		var buf bytes.Buffer
		if err := preview.EncodeSVG(&buf, state); err != nil {
			log.Fatalf("encode svg: %v", err)
		}
		if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
	case ".png":
		if err := draw2dimg.SaveToPngFile(*out, render.Rasterize(state)); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
	default:
		log.Fatalf("unsupported output %q: use .png or .svg", *out)
	}
	log.Printf("wrote %s", *out)
}
