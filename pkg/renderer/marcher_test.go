package renderer

import (
	"math"
	"testing"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/physics"
)

func newTestMarcher(t *testing.T) (*Marcher, *physics.BlackHole) {
	t.Helper()
	hole, err := physics.NewBlackHole(core.NewVec3(0, 0, 0), 1.0)
	if err != nil {
		t.Fatalf("NewBlackHole failed: %v", err)
	}
	return NewMarcher(hole, DefaultMarchConfig()), hole
}

func TestMarcher_HorizonHitIsBlack(t *testing.T) {
	marcher, _ := newTestMarcher(t)

	// Starting inside the horizon grace band terminates immediately
	color, outcome := marcher.Trace(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)))

	if outcome != OutcomeHorizon {
		t.Fatalf("Expected horizon outcome, got %v", outcome)
	}
	if color != (core.Color{}) {
		t.Errorf("Horizon hit should be pure black, got %v", color)
	}
}

func TestMarcher_AxisRayFallsIn(t *testing.T) {
	marcher, _ := newTestMarcher(t)

	// A ray along the disk plane (dir.Y = 0) can never hit the disk; aimed
	// at the hole it falls straight in, since the perpendicular deflection
	// term degenerates for radial rays.
	color, outcome := marcher.Trace(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)))

	if outcome != OutcomeHorizon {
		t.Fatalf("Expected horizon outcome, got %v", outcome)
	}
	if !color.IsBlack() {
		t.Errorf("Expected pure black, got %v", color)
	}
}

func TestMarcher_EscapingRayReachesBackground(t *testing.T) {
	marcher, _ := newTestMarcher(t)

	// Aimed directly away from the hole, far outside the lensing bands
	origin := core.NewVec3(0, 0, -45)
	direction := core.NewVec3(0, 0, -1)

	color, outcome := marcher.Trace(core.NewRay(origin, direction))

	if outcome != OutcomeBackground {
		t.Fatalf("Expected background outcome, got %v", outcome)
	}
	// The direction never changes out there, so the color is the starfield
	// color of the initial direction
	if expected := starfieldColor(direction); color != expected {
		t.Errorf("Expected starfield color %v, got %v", expected, color)
	}
}

func TestMarcher_DiskHit(t *testing.T) {
	marcher, hole := newTestMarcher(t)

	// Just above the disk plane, heading straight down inside the radial band
	origin := core.NewVec3(8, 0.1, 0)
	direction := core.NewVec3(0, -1, 0)

	color, outcome := marcher.Trace(core.NewRay(origin, direction))

	if outcome != OutcomeDisk {
		t.Fatalf("Expected disk outcome, got %v", outcome)
	}

	// The hit point is (8, 0, 0) at distance 0.1, so the expected color is
	// the disk color boosted by the inverse-distance intensity factor.
	// The ray is ~8 units from the hole, outside the lens flare band.
	expected := hole.DiskColor(core.NewVec3(8, 0, 0)).Scale(1.0 + 0.5/(1.0+0.1))
	if math.Abs(color.R-expected.R) > 1e-9 ||
		math.Abs(color.G-expected.G) > 1e-9 ||
		math.Abs(color.B-expected.B) > 1e-9 {
		t.Errorf("Expected disk color %v, got %v", expected, color)
	}
}

func TestMarcher_Deterministic(t *testing.T) {
	marcher, _ := newTestMarcher(t)

	rays := []struct {
		origin, direction core.Vec3
	}{
		{core.NewVec3(0, 2, -8), core.NewVec3(0, -0.2, 1).Normalize()},
		{core.NewVec3(-6, 1, -4), core.NewVec3(6, -1, 4).Normalize()},
		{core.NewVec3(0, 5, -6), core.NewVec3(0.1, -0.8, 0.9).Normalize()},
	}

	for _, ray := range rays {
		firstColor, firstOutcome := marcher.Trace(core.NewRay(ray.origin, ray.direction))
		secondColor, secondOutcome := marcher.Trace(core.NewRay(ray.origin, ray.direction))

		if firstColor != secondColor || firstOutcome != secondOutcome {
			t.Errorf("Trace(%v, %v) not deterministic: (%v, %v) vs (%v, %v)",
				ray.origin, ray.direction, firstColor, firstOutcome, secondColor, secondOutcome)
		}
	}
}

func TestMarcher_EveryRayTerminates(t *testing.T) {
	marcher, _ := newTestMarcher(t)

	// A grazing ray that orbits near the photon sphere still terminates
	// within the step/distance budget
	directions := []core.Vec3{
		core.NewVec3(0.3, 0, 1).Normalize(),
		core.NewVec3(0.28, 0.01, 1).Normalize(),
		core.NewVec3(-0.3, -0.01, 1).Normalize(),
	}

	for _, dir := range directions {
		_, outcome := marcher.Trace(core.NewRay(core.NewVec3(0, 0, -8), dir))
		if outcome != OutcomeHorizon && outcome != OutcomeDisk && outcome != OutcomeBackground {
			t.Errorf("Trace returned unknown outcome %v", outcome)
		}
	}
}
