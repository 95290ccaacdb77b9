package renderer

import (
	"math"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

// Camera generates rays for rendering. It is immutable once constructed;
// direction and up are normalized by the constructor.
type Camera struct {
	position    core.Vec3
	direction   core.Vec3
	up          core.Vec3
	fieldOfView float64
	aspectRatio float64
}

// NewCamera creates a camera at the given position looking along direction.
// fov is the field of view in radians.
func NewCamera(position, direction, up core.Vec3, fov float64) *Camera {
	return &Camera{
		position:    position,
		direction:   direction.Normalize(),
		up:          up.Normalize(),
		fieldOfView: fov,
		aspectRatio: 1.0,
	}
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// Direction returns the normalized view direction
func (c *Camera) Direction() core.Vec3 {
	return c.direction
}

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

// SetAspectRatio overrides the horizontal stretch applied to ray directions.
// The reference renders leave it at 1.0.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.aspectRatio = aspect
}

// RayDirection maps pixel coordinates (possibly sub-pixel, for supersampling)
// to a normalized ray direction. The right/up basis is recomputed on every
// call rather than cached so it always agrees with the normalized direction
// and up vectors from construction.
func (c *Camera) RayDirection(px, py float64, width, height int) core.Vec3 {
	scale := math.Tan(c.fieldOfView * 0.5)

	// Normalize pixel coordinates to [-1, 1]
	x := (2.0*px/float64(width) - 1.0) * scale * c.aspectRatio
	y := (1.0 - 2.0*py/float64(height)) * scale

	right := c.direction.Cross(c.up).Normalize()
	up := right.Cross(c.direction).Normalize()

	return c.direction.Add(right.Multiply(x)).Add(up.Multiply(y)).Normalize()
}
