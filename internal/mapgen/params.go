package mapgen

import (
	"strconv"

	"github.com/deanpointblank/codenamestory/internal/core"
	"github.com/deanpointblank/codenamestory/internal/layers"
)

// Limits applied by SetIntParameter.
const (
	MaxPoints = 10000
	MaxPlates = 64
)

func (s *State) Parameters() core.ParameterSnapshot {
	layerParams := make([]core.Parameter, 0, len(layers.DefaultOrder))
	for _, l := range s.registry.All() {
		layerParams = append(layerParams, boolParam("layer_"+l.ID(), l.ID(), s.registry.IsActive(l.ID())))
	}
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("points", "Points", len(s.points)),
				intParam("plates", "Plates", len(s.model.Plates)),
				intParam("boundaries", "Boundaries", len(s.model.Boundaries)),
			},
		},
		{
			Name:   "Layers",
			Params: layerParams,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *State) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "points", Label: "Points", Type: core.ParamTypeInt, Step: 100, Min: 0, Max: MaxPoints, HasMin: true, HasMax: true},
		{Key: "plates", Label: "Plates", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxPlates, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates the point or plate count and regenerates with the
// current seed.
func (s *State) SetIntParameter(key string, value int) bool {
	switch key {
	case "points":
		if value < 0 || value > MaxPoints {
			return false
		}
		s.cfg.Points = value
	case "plates":
		if value < 1 || value > MaxPlates {
			return false
		}
		s.cfg.Plates = value
	default:
		return false
	}
	s.Reset(s.cfg.Seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
