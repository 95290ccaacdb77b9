package core

import "math"

// Color represents an RGB color with unclamped linear intensity.
// Channels may exceed [0,1] until Clamp is applied.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// MultiplyColor returns component-wise multiplication of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Clamp returns the color with each channel clamped to [0,1].
// Clamp is idempotent.
func (c Color) Clamp() Color {
	return Color{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
	}
}

// GammaCorrect applies gamma correction to each channel
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}

// EnhanceContrast stretches each channel around the midpoint and clamps the result
func (c Color) EnhanceContrast(contrast float64) Color {
	return Color{
		R: clampChannel((c.R-0.5)*contrast + 0.5),
		G: clampChannel((c.G-0.5)*contrast + 0.5),
		B: clampChannel((c.B-0.5)*contrast + 0.5),
	}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsBlack reports whether every channel is effectively zero
func (c Color) IsBlack() bool {
	return c.R < 1e-6 && c.G < 1e-6 && c.B < 1e-6
}

func clampChannel(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}
