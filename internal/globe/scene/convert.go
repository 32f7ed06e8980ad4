package scene

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HeatmapEntry is a per-country shock from the backend heatmap.
type HeatmapEntry struct {
	Country           string   `json:"country"`
	CountryCode       string   `json:"countryCode"`
	Lat               float64  `json:"lat"`
	Lng               float64  `json:"lng"`
	ShockIntensity    float64  `json:"shockIntensity"`
	AffectedSectors   []string `json:"affectedSectors"`
	TopAffectedStocks []string `json:"topAffectedStocks"`
	Direction         string   `json:"direction"`
}

// ConnectionArc is a propagation arc as sent by the backend.
type ConnectionArc struct {
	ID             string  `json:"id"`
	StartLat       float64 `json:"startLat"`
	StartLng       float64 `json:"startLng"`
	EndLat         float64 `json:"endLat"`
	EndLng         float64 `json:"endLng"`
	FromLabel      string  `json:"fromLabel"`
	ToLabel        string  `json:"toLabel"`
	ShockIntensity float64 `json:"shockIntensity"`
	Direction      string  `json:"direction"`
	Color          string  `json:"color"`
	EventID        string  `json:"eventId"`
	Sector         string  `json:"sector,omitempty"`
}

// Location is where an event happened.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	Region  string  `json:"region,omitempty"`
}

// Event is the subset of a backend event the globe cares about.
type Event struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Severity float64  `json:"severity"`
	Location Location `json:"location"`
}

// SimulationResult is the backend's answer to a what-if simulation.
type SimulationResult struct {
	SimulatedEventID string          `json:"simulatedEventId"`
	Title            string          `json:"title"`
	Heatmap          []HeatmapEntry  `json:"heatmap"`
	Arcs             []ConnectionArc `json:"arcs"`
	Location         *Location       `json:"location,omitempty"`
}

// upper builds a fresh caser per call; casers are not safe to share.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Marker converts a heatmap entry.
func (h HeatmapEntry) Marker() Marker {
	return Marker{
		Lat:       h.Lat,
		Lng:       h.Lng,
		Label:     h.Country,
		Intensity: h.ShockIntensity,
		Category:  upper(h.Direction),
	}
}

// Arc converts a backend connection arc.
func (c ConnectionArc) Arc() Arc {
	return Arc{
		OriginLat: c.StartLat,
		OriginLng: c.StartLng,
		DestLat:   c.EndLat,
		DestLng:   c.EndLng,
		DestLabel: c.ToLabel,
		Category:  SectorCategory(c.Sector),
		Intensity: c.ShockIntensity,
	}
}

// Epicenter returns the event origin.
func (e Event) Epicenter() *Epicenter {
	label := e.Location.Country
	if label == "" {
		label = e.Title
	}
	return &Epicenter{Lat: e.Location.Lat, Lng: e.Location.Lng, Label: label}
}

// Snapshot converts a simulation result into a full scene. The epicenter is
// the explicit location when present, otherwise the origin of the first arc.
func (r SimulationResult) Snapshot() Snapshot {
	snap := Snapshot{
		Markers: Markers(r.Heatmap),
		Arcs:    Arcs(r.Arcs),
	}
	switch {
	case r.Location != nil:
		snap.Epicenter = &Epicenter{Lat: r.Location.Lat, Lng: r.Location.Lng, Label: r.Location.Country}
	case len(r.Arcs) > 0:
		a := r.Arcs[0]
		snap.Epicenter = &Epicenter{Lat: a.StartLat, Lng: a.StartLng, Label: a.FromLabel}
	}
	return snap
}

// Markers converts a heatmap.
func Markers(entries []HeatmapEntry) []Marker {
	out := make([]Marker, len(entries))
	for i, e := range entries {
		out[i] = e.Marker()
	}
	return out
}

// Arcs converts backend arcs.
func Arcs(in []ConnectionArc) []Arc {
	out := make([]Arc, len(in))
	for i, c := range in {
		out[i] = c.Arc()
	}
	return out
}

// SectorCategory folds a backend sector name onto an arc category.
func SectorCategory(sector string) string {
	s := strings.ToLower(sector)
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "energy"), strings.Contains(s, "oil"):
		return CategoryOil
	case strings.Contains(s, "defense"), strings.Contains(s, "aerospace"):
		return CategoryDefense
	case strings.Contains(s, "financ"), strings.Contains(s, "currenc"), s == "fx":
		return CategoryFX
	default:
		return upper(sector)
	}
}
