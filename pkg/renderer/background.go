package renderer

import (
	"fmt"
	"hash/fnv"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

// Starfield banding thresholds. The hash behind them is an arbitrary
// deterministic function, but the thresholds themselves are part of the
// visual contract.
const (
	brightStarThreshold = 0.994
	blueStarThreshold   = 0.985
	orangeStarThreshold = 0.975
	nebulaThreshold     = 0.7
)

// starfieldColor returns the deterministic procedural background color for a
// ray that escaped the scene. The final direction is quantized and hashed
// into a pseudo-random value that selects between bright stars, colored
// stars, nebula tint and flat dark space. The same direction always produces
// the same color; there is no real randomness here.
func starfieldColor(direction core.Vec3) core.Color {
	noise := directionNoise(direction)

	switch {
	case noise > brightStarThreshold:
		return core.NewColor(1, 1, 1).Scale((noise - brightStarThreshold) * 50) // bright white stars
	case noise > blueStarThreshold:
		return core.NewColor(0.8, 0.8, 1.0).Scale((noise - blueStarThreshold) * 15) // blue stars
	case noise > orangeStarThreshold:
		return core.NewColor(1.0, 0.7, 0.5).Scale((noise - orangeStarThreshold) * 8) // orange stars
	}

	// Subtle nebula tint on a coarser quantization
	nebulaSeed := fmt.Sprintf("%d,%d", int(direction.X*100), int(direction.Y*100))
	nebulaNoise := hashNoise(nebulaSeed)
	if nebulaNoise > nebulaThreshold {
		nebula := core.NewColor(0.1, 0.05, 0.15).Scale((nebulaNoise - nebulaThreshold) * 0.5)
		return core.NewColor(0.03, 0.03, 0.08).Add(nebula)
	}

	return core.NewColor(0.03, 0.03, 0.08) // dark space
}

// directionNoise hashes the quantized direction into the star selector value
func directionNoise(direction core.Vec3) float64 {
	seed := fmt.Sprintf("%d,%d,%d",
		int(direction.X*1000), int(direction.Y*1000), int(direction.Z*1000))
	return hashNoise(seed)
}

// hashNoise maps a seed string to a repeatable value in [0, 1)
func hashNoise(seed string) float64 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return float64(h.Sum32()%1000) / 1000.0
}
