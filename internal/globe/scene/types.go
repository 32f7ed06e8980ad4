// Package scene holds the data drawn on the globe: the static continent
// decoration plus markers, arcs and the epicenter supplied by the feed.
package scene

import "math"

// Severity buckets a shock intensity for colouring.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Arc categories used to tint ghost paths.
const (
	CategoryOil     = "OIL"
	CategoryDefense = "DEFENSE"
	CategoryFX      = "FX"
)

// Dot is one point of the continent decoration.
type Dot struct {
	Lat, Lng float64
}

// Marker is an event or country shock drawn on the surface.
type Marker struct {
	Lat       float64 `yaml:"lat" json:"lat"`
	Lng       float64 `yaml:"lng" json:"lng"`
	Label     string  `yaml:"label" json:"label"`
	Intensity float64 `yaml:"intensity" json:"intensity"` // 0..1
	Category  string  `yaml:"category" json:"category"`
}

// Severity maps the marker intensity onto a severity bucket.
func (m Marker) Severity() Severity {
	switch {
	case m.Intensity >= 0.75:
		return SeverityCritical
	case m.Intensity >= 0.5:
		return SeverityHigh
	case m.Intensity >= 0.25:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Arc is a propagation vector from an origin to an affected destination.
type Arc struct {
	OriginLat float64 `yaml:"origin_lat" json:"originLat"`
	OriginLng float64 `yaml:"origin_lng" json:"originLng"`
	DestLat   float64 `yaml:"dest_lat" json:"destLat"`
	DestLng   float64 `yaml:"dest_lng" json:"destLng"`
	DestLabel string  `yaml:"dest_label" json:"destLabel"`
	Category  string  `yaml:"category" json:"category"`
	Intensity float64 `yaml:"intensity" json:"intensity"`
}

// At interpolates the arc at fraction t. Latitude and longitude are linear
// in t; lift is the radius multiplier, peaking at the midpoint.
func (a Arc) At(t, elevation float64) (lat, lng, lift float64) {
	lat = a.OriginLat + (a.DestLat-a.OriginLat)*t
	lng = a.OriginLng + (a.DestLng-a.OriginLng)*t
	lift = 1 + math.Sin(t*math.Pi)*elevation
	return lat, lng, lift
}

// Epicenter is the highlighted origin of the current event.
type Epicenter struct {
	Lat   float64 `yaml:"lat" json:"lat"`
	Lng   float64 `yaml:"lng" json:"lng"`
	Label string  `yaml:"label" json:"label"`
}

// Snapshot is one complete, immutable scene. Frames read a single snapshot
// and never see a mix of old and new collections.
type Snapshot struct {
	Markers   []Marker
	Arcs      []Arc
	Epicenter *Epicenter
	Version   uint64
}

func validLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func (m Marker) valid() bool {
	return validLatLng(m.Lat, m.Lng) && !math.IsNaN(m.Intensity) && !math.IsInf(m.Intensity, 0)
}

func (a Arc) valid() bool {
	return validLatLng(a.OriginLat, a.OriginLng) && validLatLng(a.DestLat, a.DestLng) &&
		!math.IsNaN(a.Intensity) && !math.IsInf(a.Intensity, 0)
}

func (e *Epicenter) valid() bool {
	return e == nil || validLatLng(e.Lat, e.Lng)
}
