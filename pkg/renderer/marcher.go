package renderer

import (
	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/physics"
)

// Outcome is the terminal state of a ray trace
type Outcome int

const (
	// OutcomeHorizon means the ray fell into the event horizon
	OutcomeHorizon Outcome = iota
	// OutcomeDisk means the ray struck the accretion disk
	OutcomeDisk
	// OutcomeBackground means the ray exhausted its budget and escaped to the starfield
	OutcomeBackground
)

// MarchConfig contains the ray marching configuration. The step thresholds
// and budgets are a performance/accuracy contract shared with the reference
// renders; changing them changes where disk hits are detected.
type MarchConfig struct {
	MaxSteps    int     // Maximum marching steps per ray
	MaxDistance float64 // Maximum accumulated ray travel distance

	// Adaptive step sizes, keyed on multiples of the Schwarzschild radius
	StepFar    float64 // beyond 8 * Rs
	StepMedium float64 // beyond 5 * Rs
	StepNear   float64 // beyond 2 * Rs
	StepClose  float64 // everything closer

	BendInterval int     // Apply gravitational bending every N steps
	DiskHitSlack float64 // Accept disk hits within this multiple of the step size

	LensFlare          bool    // Add a flare contribution to disk hits near the hole
	LensFlareIntensity float64 // Flare brightness
}

// DefaultMarchConfig returns the reference marching parameters
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MaxSteps:           500,
		MaxDistance:        50.0,
		StepFar:            0.4,
		StepMedium:         0.2,
		StepNear:           0.1,
		StepClose:          0.05,
		BendInterval:       3,
		DiskHitSlack:       2.0,
		LensFlare:          true,
		LensFlareIntensity: 0.3,
	}
}

// Marcher advances rays through the gravitational field of a black hole.
// Each trace owns its own ray state; a Marcher is safe to share across
// pixels because it only reads immutable scene data.
type Marcher struct {
	hole   *physics.BlackHole
	config MarchConfig
}

// NewMarcher creates a marcher for the given black hole
func NewMarcher(hole *physics.BlackHole, config MarchConfig) *Marcher {
	return &Marcher{hole: hole, config: config}
}

// TraceRay marches a ray through the gravitational field and returns its color
func (m *Marcher) TraceRay(ray core.Ray) core.Color {
	color, _ := m.Trace(ray)
	return color
}

// Trace marches a ray through the gravitational field and returns its color
// together with the terminal state. The march is bounded by the step and
// distance budgets; every ray terminates.
func (m *Marcher) Trace(ray core.Ray) (core.Color, Outcome) {
	position := ray.Origin
	direction := ray.Direction
	totalDistance := 0.0
	rs := m.hole.SchwarzschildRadius()

	for step := 0; step < m.config.MaxSteps; step++ {
		distance := position.DistanceTo(m.hole.Position)

		stepSize := m.config.StepClose
		switch {
		case distance > rs*8.0:
			stepSize = m.config.StepFar
		case distance > rs*5.0:
			stepSize = m.config.StepMedium
		case distance > rs*2.0:
			stepSize = m.config.StepNear
		}

		if m.hole.InsideHorizon(position) {
			return core.Color{}, OutcomeHorizon
		}

		// Look ahead for a disk crossing before moving
		if point, ok := m.hole.IntersectsDisk(core.NewRay(position, direction)); ok {
			hitDistance := position.DistanceTo(point)
			if hitDistance < stepSize*m.config.DiskHitSlack {
				return m.shadeDiskHit(point, hitDistance, distance), OutcomeDisk
			}
		}

		// Bending every few steps bounds the cost of the lensing rule
		if step%m.config.BendInterval == 0 {
			direction = m.hole.BendRay(position, direction)
		}

		position = position.Add(direction.Multiply(stepSize))
		totalDistance += stepSize

		if totalDistance > m.config.MaxDistance {
			break
		}
	}

	return starfieldColor(direction), OutcomeBackground
}

// shadeDiskHit colors a disk intersection, boosting intensity for close hits
// and adding a lens flare contribution when the ray passes near the hole.
func (m *Marcher) shadeDiskHit(point core.Vec3, hitDistance, distanceToHole float64) core.Color {
	diskColor := m.hole.DiskColor(point)
	intensity := 1.0 + 0.5/(1.0+hitDistance)

	rs := m.hole.SchwarzschildRadius()
	if m.config.LensFlare && distanceToHole < rs*4.0 {
		flareStrength := 1.0 / (1.0 + (distanceToHole - rs))
		flare := core.NewColor(0.8, 0.9, 1.0).Scale(flareStrength * m.config.LensFlareIntensity)
		diskColor = diskColor.Add(flare)
	}

	return diskColor.Scale(intensity)
}
