// Package preview serves rendered maps over HTTP.
package preview

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/llgcode/draw2d/draw2dsvg"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
	"github.com/deanpointblank/codenamestory/internal/render"
)

// MaxSide bounds the width and height a client may request.
const MaxSide = 4096

// Server renders maps on request. Every request builds its own generation.
type Server struct {
	base   mapgen.Config
	logger *log.Logger
}

// NewServer returns a server whose defaults come from base. Requests only
// override dimensions, counts, seed and layer activation.
func NewServer(base mapgen.Config, logger *log.Logger) *Server {
	base.Logger = nil
	return &Server{base: base, logger: logger}
}

// Router returns the HTTP routes of the server.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/map/{seed:-?[0-9]+}.png", s.pngHandler).Methods(http.MethodGet)
	router.HandleFunc("/map/{seed:-?[0-9]+}.svg", s.svgHandler).Methods(http.MethodGet)
	router.HandleFunc("/layers", s.layersHandler).Methods(http.MethodGet)
	return router
}

func (s *Server) pngHandler(res http.ResponseWriter, req *http.Request) {
	state, err := s.stateFor(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, render.Rasterize(state)); err != nil {
		s.logf("preview: encode png: %v", err)
		http.Error(res, "encode failed", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

func (s *Server) svgHandler(res http.ResponseWriter, req *http.Request) {
	state, err := s.stateFor(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := EncodeSVG(&buf, state); err != nil {
		s.logf("preview: encode svg: %v", err)
		http.Error(res, "encode failed", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/svg+xml")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

// LayerInfo describes one layer of the default stack.
type LayerInfo struct {
	ID     string `json:"id"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

func (s *Server) layersHandler(res http.ResponseWriter, req *http.Request) {
	cfg := s.base
	cfg.Points = 0
	reg := mapgen.NewWithConfig(cfg).Registry()
	var out []LayerInfo
	for i, id := range reg.Order() {
		out = append(out, LayerInfo{ID: id, Order: i, Active: reg.IsActive(id)})
	}
	data, err := json.Marshal(out)
	if err != nil {
		http.Error(res, "encode failed", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

func (s *Server) stateFor(req *http.Request) (*mapgen.State, error) {
	cfg := s.base
	seed, err := strconv.ParseInt(mux.Vars(req)["seed"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	cfg.Seed = seed

	q := req.URL.Query()
	if cfg.Width, err = queryInt(q, "w", cfg.Width, 1, MaxSide); err != nil {
		return nil, err
	}
	if cfg.Height, err = queryInt(q, "h", cfg.Height, 1, MaxSide); err != nil {
		return nil, err
	}
	if cfg.Points, err = queryInt(q, "points", cfg.Points, 0, mapgen.MaxPoints); err != nil {
		return nil, err
	}
	if cfg.Plates, err = queryInt(q, "plates", cfg.Plates, 1, mapgen.MaxPlates); err != nil {
		return nil, err
	}

	state := mapgen.NewWithConfig(cfg)
	if !q.Has("layers") {
		return state, nil
	}
	want := map[string]bool{}
	for _, id := range strings.Split(q.Get("layers"), ",") {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		if _, ok := state.Registry().Layer(id); !ok {
			return nil, fmt.Errorf("layers: unknown layer %q", id)
		}
		want[id] = true
	}
	for _, l := range state.Registry().All() {
		state.Registry().SetActive(l.ID(), want[l.ID()])
	}
	return state, nil
}

func queryInt(q url.Values, key string, def, min, max int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s: %d outside [%d, %d]", key, v, min, max)
	}
	return v, nil
}

// EncodeSVG renders state as an SVG document into buf.
func EncodeSVG(buf *bytes.Buffer, state *mapgen.State) error {
	svg := draw2dsvg.NewSvg()
	state.Render(draw2dsvg.NewGraphicContext(svg))
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", "\t")
	return enc.Encode(svg)
}

func (s *Server) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
