package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

// Scenario is a static scene loaded from YAML.
type Scenario struct {
	Name      string           `yaml:"name"`
	Epicenter *scene.Epicenter `yaml:"epicenter,omitempty"`
	Markers   []scene.Marker   `yaml:"markers,omitempty"`
	Arcs      []scene.Arc      `yaml:"arcs,omitempty"`
}

// Snapshot returns the scenario as a scene snapshot.
func (s *Scenario) Snapshot() scene.Snapshot {
	return scene.Snapshot{
		Markers:   s.Markers,
		Arcs:      s.Arcs,
		Epicenter: s.Epicenter,
	}
}

// Apply replaces the sink's scene with the scenario.
func (s *Scenario) Apply(sink Sink) {
	sink.Replace(s.Snapshot())
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// SaveScenario writes s as YAML.
func SaveScenario(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

// DefaultScenario is the built-in Caracas shock: six propagation vectors
// and the affected capitals marked by severity.
func DefaultScenario() *Scenario {
	const lat, lng = 10.48, -66.88
	arc := func(dLat, dLng float64, label, category string, intensity float64) scene.Arc {
		return scene.Arc{
			OriginLat: lat, OriginLng: lng,
			DestLat: dLat, DestLng: dLng,
			DestLabel: label, Category: category, Intensity: intensity,
		}
	}

	s := &Scenario{
		Name:      "caracas",
		Epicenter: &scene.Epicenter{Lat: lat, Lng: lng, Label: "VENEZUELA"},
		Arcs: []scene.Arc{
			arc(38.89, -77.03, "WASHINGTON", scene.CategoryDefense, 0.62),
			arc(29.76, -95.37, "HOUSTON", scene.CategoryOil, 0.88),
			arc(6.80, -58.16, "GEORGETOWN", scene.CategoryOil, 0.71),
			arc(4.71, -74.07, "BOGOTA", scene.CategoryFX, 0.54),
			arc(-15.79, -47.88, "BRASILIA", scene.CategoryFX, 0.35),
			arc(24.71, 46.68, "RIYADH", scene.CategoryOil, 0.47),
		},
	}
	s.Markers = append(s.Markers, scene.Marker{Lat: lat, Lng: lng, Label: "CARACAS", Intensity: 0.95, Category: scene.CategoryOil})
	for _, a := range s.Arcs {
		s.Markers = append(s.Markers, scene.Marker{
			Lat: a.DestLat, Lng: a.DestLng, Label: a.DestLabel,
			Intensity: a.Intensity, Category: a.Category,
		})
	}
	return s
}
