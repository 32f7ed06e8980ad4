package scene

import "math"

// Particle timing. Every arc carries N particles phased evenly around a
// cycle whose period depends on the arc index so parallel arcs desync.
const (
	ParticleBaseSpeed  = 0.15
	ParticleSpeedStep  = 0.017
	ParticleTrailLen   = 0.09
	ParticleTrailSteps = 14
)

// ParticleSpeed returns the clock multiplier for the arc at idx.
func ParticleSpeed(idx int) float64 {
	return ParticleBaseSpeed + float64(idx)*ParticleSpeedStep
}

// ParticlePeriod is the clock span after which every particle of the arc at
// idx is back where it started.
func ParticlePeriod(idx int) float64 {
	return 1 / ParticleSpeed(idx)
}

// ParticleHead returns headT in [0, 1) for particle i of n on the arc at idx.
func ParticleHead(clock float64, idx, i, n int) float64 {
	t := math.Mod(clock*ParticleSpeed(idx)+float64(i)/float64(n), 1)
	if t < 0 {
		t += 1
	}
	return t
}

// TrailT returns the arc fraction of trail sample s (0..ParticleTrailSteps)
// behind headT, clamped at the arc origin.
func TrailT(headT float64, s int) float64 {
	return math.Max(0, headT-ParticleTrailLen*(1-float64(s)/ParticleTrailSteps))
}
