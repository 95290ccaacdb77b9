// Package scene bundles the immutable scene data for a render: the black
// hole, the output dimensions and the named camera presets.
package scene

import (
	"math"
	"strings"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/physics"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/renderer"
)

// DefaultFOV is the reference field of view, 45 degrees in radians
const DefaultFOV = math.Pi / 4

// View is a named camera preset: where the camera sits, what it looks at
// and which way is up.
type View struct {
	Name     string
	Position core.Vec3
	Target   core.Vec3
	Up       core.Vec3
}

// Camera builds the camera for this view with the given field of view in radians
func (v View) Camera(fov float64) *renderer.Camera {
	direction := v.Target.Subtract(v.Position).Normalize()
	return renderer.NewCamera(v.Position, direction, v.Up, fov)
}

// Views returns the reference camera presets, all aimed at the origin
func Views() []View {
	return []View{
		{Name: "front", Position: core.NewVec3(0, 2, -8), Target: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0)},
		{Name: "side", Position: core.NewVec3(-6, 1, -4), Target: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0)},
		{Name: "top", Position: core.NewVec3(0, 5, -6), Target: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 0, -1)},
		{Name: "close", Position: core.NewVec3(0, 1, -4), Target: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0)},
		{Name: "wide", Position: core.NewVec3(0, 3, -12), Target: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0)},
	}
}

// FindView looks up a preset by name, ignoring case
func FindView(name string) (View, bool) {
	for _, view := range Views() {
		if strings.EqualFold(view.Name, name) {
			return view, true
		}
	}
	return View{}, false
}

// Scene holds everything a render needs besides the camera
type Scene struct {
	BlackHole   *physics.BlackHole
	Width       int
	Height      int
	FieldOfView float64
}

// NewScene creates a scene with a black hole of the given mass at position.
// The mass is validated here, before any marching begins.
func NewScene(position core.Vec3, mass float64, width, height int) (*Scene, error) {
	hole, err := physics.NewBlackHole(position, mass)
	if err != nil {
		return nil, err
	}

	return &Scene{
		BlackHole:   hole,
		Width:       width,
		Height:      height,
		FieldOfView: DefaultFOV,
	}, nil
}

// NewDefaultScene creates the reference scene: a unit-mass black hole at the
// origin rendered at 800x600.
func NewDefaultScene() *Scene {
	s, err := NewScene(core.NewVec3(0, 0, 0), 1.0, 800, 600)
	if err != nil {
		panic(err) // unit mass is always valid
	}
	return s
}
