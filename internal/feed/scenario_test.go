package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	if s.Epicenter == nil || s.Epicenter.Lat != 10.48 || s.Epicenter.Lng != -66.88 {
		t.Fatalf("unexpected epicenter %+v", s.Epicenter)
	}
	if len(s.Arcs) != 6 {
		t.Fatalf("expected 6 arcs, got %d", len(s.Arcs))
	}

	want := []string{"WASHINGTON", "HOUSTON", "GEORGETOWN", "BOGOTA", "BRASILIA", "RIYADH"}
	for i, a := range s.Arcs {
		if a.DestLabel != want[i] {
			t.Errorf("arc %d goes to %q, want %q", i, a.DestLabel, want[i])
		}
		if a.OriginLat != s.Epicenter.Lat || a.OriginLng != s.Epicenter.Lng {
			t.Errorf("arc %d does not start at the epicenter", i)
		}
	}
	if len(s.Markers) != 7 {
		t.Errorf("expected origin plus six destination markers, got %d", len(s.Markers))
	}
}

func TestScenarioRoundTripThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := SaveScenario(path, DefaultScenario()); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}

	store := scene.NewStore()
	s.Apply(store)
	snap := store.Snapshot()

	def := DefaultScenario()
	if len(snap.Arcs) != len(def.Arcs) || len(snap.Markers) != len(def.Markers) {
		t.Fatalf("store has %d arcs and %d markers", len(snap.Arcs), len(snap.Markers))
	}
	for i := range def.Arcs {
		if snap.Arcs[i] != def.Arcs[i] {
			t.Errorf("arc %d = %+v, want %+v", i, snap.Arcs[i], def.Arcs[i])
		}
	}
	if *snap.Epicenter != *def.Epicenter {
		t.Errorf("epicenter = %+v", snap.Epicenter)
	}
}

func TestLoadScenarioYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	content := `name: gulf
epicenter:
  lat: 26.2
  lng: 50.6
  label: BAHRAIN
arcs:
  - origin_lat: 26.2
    origin_lng: 50.6
    dest_lat: 51.5
    dest_lng: -0.12
    dest_label: LONDON
    category: FX
markers:
  - lat: 51.5
    lng: -0.12
    label: LONDON
    intensity: 0.3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "gulf" || s.Epicenter.Label != "BAHRAIN" {
		t.Errorf("unexpected scenario %+v", s)
	}
	if len(s.Arcs) != 1 || s.Arcs[0].DestLabel != "LONDON" || s.Arcs[0].Category != scene.CategoryFX {
		t.Errorf("unexpected arcs %+v", s.Arcs)
	}
	if len(s.Markers) != 1 || s.Markers[0].Severity() != scene.SeverityMedium {
		t.Errorf("unexpected markers %+v", s.Markers)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadScenario(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arcs: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(bad); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
