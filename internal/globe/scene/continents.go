package scene

import (
	"math/rand/v2"
	"sync"
)

type region struct {
	latMin, latMax float64
	lngMin, lngMax float64
	count          int
}

// Rough land boxes. Dots are decoration, not geography.
var regions = []region{
	{25, 70, -165, -55, 220},  // North America
	{8, 25, -110, -60, 40},    // Central America and Caribbean
	{-55, 10, -80, -35, 160},  // South America
	{60, 82, -70, -15, 50},    // Greenland
	{36, 70, -10, 40, 140},    // Europe
	{-35, 35, -17, 50, 230},   // Africa
	{12, 40, 35, 60, 50},      // Arabian Peninsula
	{40, 75, 40, 180, 260},    // Russia and Central Asia
	{5, 40, 60, 145, 200},     // South and East Asia
	{-10, 8, 95, 150, 60},     // Maritime Southeast Asia
	{-40, -12, 113, 153, 90},  // Australia
	{-47, -34, 166, 178, 12},  // New Zealand
	{-90, -65, -180, 180, 90}, // Antarctica
}

const dotSeed = 0x5ec0_91be

var (
	dotsOnce sync.Once
	dots     []Dot
)

// ContinentDots returns the continent decoration. The field is generated
// once per process from a fixed seed and shared read-only afterwards.
func ContinentDots() []Dot {
	dotsOnce.Do(func() {
		dots = generateDots(rand.New(rand.NewPCG(dotSeed, dotSeed>>7)))
	})
	return dots
}

func generateDots(rng *rand.Rand) []Dot {
	total := 0
	for _, r := range regions {
		total += r.count
	}
	out := make([]Dot, 0, total)
	for _, r := range regions {
		for i := 0; i < r.count; i++ {
			out = append(out, Dot{
				Lat: r.latMin + rng.Float64()*(r.latMax-r.latMin),
				Lng: r.lngMin + rng.Float64()*(r.lngMax-r.lngMin),
			})
		}
	}
	return out
}
