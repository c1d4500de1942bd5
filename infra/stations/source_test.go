package stations

import (
	"os"
	"path/filepath"
	"testing"
)

const stationsYAML = `stations:
  - station_id: "st-1"
    name: "Harris Ranch"
    coordinate:
      latitude: 36.25
      longitude: -120.24
    connector_types: ["CCS"]
    power_levels_kw: [72, 250]
    cost_per_kwh: 0.42
    available_stalls: 12
    total_stalls: 18
    is_operational: true
  - station_id: "st-2"
    name: "Kettleman City"
    coordinate:
      latitude: 36.01
      longitude: -119.96
    connector_types: ["CCS", "NACS"]
    power_levels_kw: [250]
    cost_per_kwh: 0.38
    available_stalls: 4
    total_stalls: 40
    is_operational: true
`

func TestFileSourceYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.yaml")
	if err := os.WriteFile(path, []byte(stationsYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewFileSource(path).Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 stations got %d", len(got))
	}
	if got[0].ID != "st-1" || got[0].MaxPowerKW() != 250 {
		t.Fatalf("unexpected station: %+v", got[0])
	}
	if got[1].Name != "Kettleman City" || got[1].AvailableStalls != 4 {
		t.Fatalf("unexpected station: %+v", got[1])
	}
}

func TestFileSourceJSON(t *testing.T) {
	data := `{"stations": [{"station_id": "st-9", "name": "Gilroy",
        "coordinate": {"latitude": 37.0, "longitude": -121.57},
        "connector_types": ["CCS"], "power_levels_kw": [150],
        "cost_per_kwh": 0.45, "available_stalls": 2, "total_stalls": 10,
        "is_operational": true}]}`
	path := filepath.Join(t.TempDir(), "stations.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewFileSource(path).Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(got) != 1 || got[0].ID != "st-9" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestFileSourceInvalidStation(t *testing.T) {
	data := "stations:\n  - station_id: \"bad\"\n    name: \"Bad\"\n    coordinate:\n      latitude: 95\n      longitude: 0\n    power_levels_kw: [50]\n    total_stalls: 1\n    available_stalls: 1\n"
	path := filepath.Join(t.TempDir(), "stations.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileSource(path).Snapshot(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFileSourceUnsupportedFormat(t *testing.T) {
	if _, err := NewFileSource("stations.csv").Snapshot(); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestStaticSourceCopies(t *testing.T) {
	src := NewStaticSource(nil)
	got, err := src.Snapshot()
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected snapshot: %v %v", got, err)
	}
}
