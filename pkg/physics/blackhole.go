// Package physics models a Schwarzschild black hole with a simplified,
// non-geodesic lensing rule tuned for visual plausibility.
package physics

import (
	"fmt"
	"math"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

// Physics multipliers for the simplified Schwarzschild approximation.
// These are a contract: the band structure of the lensing rule and the
// disk geometry depend on them exactly.
const (
	SchwarzschildMultiplier = 2.0  // event horizon radius per unit mass
	PhotonSphereMultiplier  = 1.5  // photon sphere radius per Schwarzschild radius
	DiskInnerMultiplier     = 3.0  // innermost stable orbit per Schwarzschild radius
	DiskOuterMultiplier     = 10.0 // outer disk boundary per Schwarzschild radius
	LensingStrength         = 0.1  // deflection scaling for both lensing bands
	TurbulenceFrequency     = 8.0  // angular frequency of disk turbulence
	TurbulenceAmplitude     = 0.15 // turbulence contribution to temperature
	DopplerAmplitude        = 0.1  // orbital-velocity Doppler contribution
)

const (
	// Distances below horizonGrace*Rs count as inside the hole.
	horizonGrace = 1.01

	// Rays parallel to the disk plane within this tolerance never intersect it.
	diskPlaneEpsilon = 1e-6

	// How far ahead of the current position disk hits are detected,
	// in plane-intersection parameter t.
	diskLookAhead = 2.0
)

// BlackHole is an immutable black hole defined by position and mass.
// All characteristic radii are derived at construction time.
type BlackHole struct {
	Position core.Vec3
	Mass     float64

	schwarzschildRadius float64
	diskInnerRadius     float64
	diskOuterRadius     float64
}

// NewBlackHole creates a black hole at the given position.
// Mass must be positive; this is the only validation the model performs,
// everything past construction is total.
func NewBlackHole(position core.Vec3, mass float64) (*BlackHole, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("black hole mass must be positive, got %g", mass)
	}

	rs := SchwarzschildMultiplier * mass
	return &BlackHole{
		Position:            position,
		Mass:                mass,
		schwarzschildRadius: rs,
		diskInnerRadius:     DiskInnerMultiplier * rs,
		diskOuterRadius:     DiskOuterMultiplier * rs,
	}, nil
}

// SchwarzschildRadius returns the event horizon radius (2m)
func (bh *BlackHole) SchwarzschildRadius() float64 {
	return bh.schwarzschildRadius
}

// PhotonSphereRadius returns the photon sphere radius (1.5 * Rs)
func (bh *BlackHole) PhotonSphereRadius() float64 {
	return PhotonSphereMultiplier * bh.schwarzschildRadius
}

// DiskInnerRadius returns the inner edge of the accretion disk (3 * Rs)
func (bh *BlackHole) DiskInnerRadius() float64 {
	return bh.diskInnerRadius
}

// DiskOuterRadius returns the outer edge of the accretion disk (10 * Rs)
func (bh *BlackHole) DiskOuterRadius() float64 {
	return bh.diskOuterRadius
}

// Gravity returns the gravitational field vector at the given point,
// a Newtonian -m/d^3 attraction toward the hole. Points inside the
// horizon grace band report a zero field.
//
// The ray marcher bends rays through BendRay instead; Gravity is kept
// as a field-strength query for callers that want the raw attraction.
func (bh *BlackHole) Gravity(point core.Vec3) core.Vec3 {
	displacement := point.Subtract(bh.Position)
	distance := displacement.Length()

	if distance < bh.schwarzschildRadius*horizonGrace {
		return core.Vec3{}
	}

	fieldStrength := -bh.Mass / (distance * distance * distance)
	return displacement.Multiply(fieldStrength)
}

// BendRay applies the gravitational lensing rule to a ray direction and
// returns the new direction. The rule is piecewise by distance from the hole:
// inside the horizon the direction passes through unchanged (the marcher
// terminates such rays), between the horizon and the photon sphere a strong
// 1/(d-Rs) deflection pulls the ray toward the hole, beyond 10*Rs lensing is
// negligible, and in between a 2m/d^2 deflection acts along the component of
// toward-center perpendicular to the ray. Every bending path renormalizes.
func (bh *BlackHole) BendRay(rayPosition, rayDirection core.Vec3) core.Vec3 {
	displacement := rayPosition.Subtract(bh.Position)
	distance := displacement.Length()

	// Strong deflection near the photon sphere
	if distance < bh.schwarzschildRadius*PhotonSphereMultiplier {
		if distance < bh.schwarzschildRadius {
			return rayDirection // past the event horizon
		}

		deflectionFactor := 1.0 / (distance - bh.schwarzschildRadius)
		towardCenter := bh.Position.Subtract(rayPosition).Normalize()
		return rayDirection.Add(towardCenter.Multiply(deflectionFactor * LensingStrength)).Normalize()
	}

	// Distant rays see negligible lensing
	if distance > bh.schwarzschildRadius*10.0 {
		return rayDirection
	}

	// Moderate lensing for intermediate distances
	deflectionAngle := 2.0 * bh.Mass / (distance * distance)
	towardCenter := bh.Position.Subtract(rayPosition).Normalize()
	perpendicular := rayDirection.Cross(towardCenter).Cross(rayDirection).Normalize()
	return rayDirection.Add(perpendicular.Multiply(deflectionAngle * LensingStrength)).Normalize()
}

// IntersectsDisk tests the ray against the accretion disk, which occupies the
// horizontal plane through the hole's position. It returns the intersection
// point and true when the ray crosses the plane within the look-ahead bound
// and the crossing lies inside the disk's radial band. Rays parallel to the
// plane never intersect.
func (bh *BlackHole) IntersectsDisk(ray core.Ray) (core.Vec3, bool) {
	if math.Abs(ray.Direction.Y) < diskPlaneEpsilon {
		return core.Vec3{}, false
	}

	t := (bh.Position.Y - ray.Origin.Y) / ray.Direction.Y
	if t < 0.0 || t > diskLookAhead {
		return core.Vec3{}, false
	}

	point := ray.At(t)
	distanceFromCenter := bh.diskDistance(point)
	if distanceFromCenter < bh.diskInnerRadius || distanceFromCenter > bh.diskOuterRadius {
		return core.Vec3{}, false
	}

	return point, true
}

// DiskColor returns the emitted color of the accretion disk at a point on the
// disk plane. Temperature falls off with distance from the hole's axis and is
// modulated by an orbital-velocity Doppler factor and an angular turbulence
// term, then bucketed into four bands from hot white down to red.
func (bh *BlackHole) DiskColor(point core.Vec3) core.Color {
	distanceFromCenter := bh.diskDistance(point)

	temperature := bh.schwarzschildRadius / distanceFromCenter
	temperature = math.Min(1.0, math.Max(0.1, temperature))

	orbitalVelocity := math.Sqrt(bh.Mass / distanceFromCenter)
	dopplerFactor := 1.0 + orbitalVelocity*DopplerAmplitude

	angle := math.Atan2(point.Z-bh.Position.Z, point.X-bh.Position.X)
	turbulence := math.Sin(angle*TurbulenceFrequency+distanceFromCenter*2.0)*TurbulenceAmplitude + 1.0
	temperature *= turbulence

	var baseColor core.Color
	switch {
	case temperature > 0.8:
		baseColor = core.NewColor(1.0, 0.95, 0.8) // hot white
	case temperature > 0.6:
		baseColor = core.NewColor(1.0, 0.8, 0.4) // yellow
	case temperature > 0.4:
		baseColor = core.NewColor(1.0, 0.6, 0.2) // orange
	default:
		baseColor = core.NewColor(0.8, 0.3, 0.1) // red
	}

	return baseColor.Scale(temperature * dopplerFactor)
}

// InsideHorizon reports whether a point lies within the horizon grace band
func (bh *BlackHole) InsideHorizon(point core.Vec3) bool {
	return point.DistanceTo(bh.Position) < bh.schwarzschildRadius*horizonGrace
}

// diskDistance returns the horizontal distance of a point from the hole's axis
func (bh *BlackHole) diskDistance(point core.Vec3) float64 {
	dx := point.X - bh.Position.X
	dz := point.Z - bh.Position.Z
	return math.Sqrt(dx*dx + dz*dz)
}
