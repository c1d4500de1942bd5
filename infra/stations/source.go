// Package stations supplies charging station directory snapshots to the
// planner. The directory itself (availability, pricing refresh) is an
// external concern; sources only hand over a read-only snapshot per call.
package stations

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/evroute/core/model"
)

// Source provides the current station directory snapshot.
type Source interface {
	Snapshot() ([]model.ChargingStation, error)
}

// FileSource reads the directory from a JSON or YAML file on every call so
// external updates to the file are picked up without a restart.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Snapshot implements Source. Every entry is validated before being returned.
func (s *FileSource) Snapshot() ([]model.ChargingStation, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported station file format: %s", s.path)
	}
	if err := k.Load(file.Provider(s.path), parser); err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	var out struct {
		Stations []model.ChargingStation `json:"stations"`
	}
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	for _, st := range out.Stations {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("station %s: %w", st.ID, err)
		}
	}
	return out.Stations, nil
}

// StaticSource serves a fixed snapshot, mainly for tests and the one-shot
// CLI command.
type StaticSource struct {
	stations []model.ChargingStation
}

// NewStaticSource returns a StaticSource over the given stations.
func NewStaticSource(sts []model.ChargingStation) *StaticSource {
	return &StaticSource{stations: sts}
}

// Snapshot implements Source.
func (s *StaticSource) Snapshot() ([]model.ChargingStation, error) {
	out := make([]model.ChargingStation, len(s.stations))
	copy(out, s.stations)
	return out, nil
}
