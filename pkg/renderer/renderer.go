// Package renderer contains the ray marching engine: the camera that maps
// pixels to ray directions, the marcher that advances rays through the
// black hole's gravity, and the frame driver that fills the pixel grid.
package renderer

import (
	"time"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

// RenderConfig contains the frame driver configuration
type RenderConfig struct {
	Width  int // Frame width in pixels
	Height int // Frame height in pixels

	Supersample bool // Average 2x2 sub-pixel samples per pixel

	EnhanceContrast bool    // Apply contrast enhancement before clamping
	ContrastFactor  float64 // Contrast stretch factor

	GammaCorrect bool    // Apply gamma correction (off in the reference pipeline)
	Gamma        float64 // Gamma exponent
}

// DefaultRenderConfig returns the reference rendering parameters
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           800,
		Height:          600,
		Supersample:     true,
		EnhanceContrast: true,
		ContrastFactor:  1.2,
		GammaCorrect:    false,
		Gamma:           2.2,
	}
}

// ProgressFunc is called periodically during a render with the number of
// completed rows and the total row count.
type ProgressFunc func(rowsDone, totalRows int)

// Renderer drives the per-pixel marching loop to fill a frame buffer.
// Rendering is sequential; each pixel trace reads only immutable scene
// data and owns its own ray state.
type Renderer struct {
	camera   *Camera
	marcher  *Marcher
	config   RenderConfig
	progress ProgressFunc
}

// NewRenderer creates a renderer for the given camera and marcher
func NewRenderer(camera *Camera, marcher *Marcher, config RenderConfig) *Renderer {
	return &Renderer{
		camera:  camera,
		marcher: marcher,
		config:  config,
	}
}

// SetProgressFunc installs a callback invoked roughly every tenth of the frame
func (r *Renderer) SetProgressFunc(fn ProgressFunc) {
	r.progress = fn
}

// Render fills and returns a frame buffer along with render statistics
func (r *Renderer) Render() (*Frame, RenderStats) {
	width, height := r.config.Width, r.config.Height
	frame := NewFrame(width, height)
	stats := RenderStats{}

	progressStep := height / 10
	start := time.Now()

	for y := 0; y < height; y++ {
		if r.progress != nil && progressStep > 0 && y%progressStep == 0 {
			r.progress(y, height)
		}

		for x := 0; x < width; x++ {
			frame.Set(x, y, r.renderPixel(x, y, &stats))
		}
	}

	stats.RenderTime = time.Since(start)
	return frame, stats
}

// renderPixel traces one pixel, averaging 2x2 sub-samples when supersampling
// is enabled, and applies the post-processing chain.
func (r *Renderer) renderPixel(x, y int, stats *RenderStats) core.Color {
	var pixel core.Color

	if r.config.Supersample {
		sum := core.Color{}
		for dx := 0; dx < 2; dx++ {
			for dy := 0; dy < 2; dy++ {
				subX := float64(x) + (float64(dx)+0.5)*0.5
				subY := float64(y) + (float64(dy)+0.5)*0.5
				sum = sum.Add(r.tracePixel(subX, subY, stats))
			}
		}
		pixel = sum.Scale(0.25)
	} else {
		pixel = r.tracePixel(float64(x), float64(y), stats)
	}

	if r.config.GammaCorrect {
		pixel = pixel.GammaCorrect(r.config.Gamma)
	}
	if r.config.EnhanceContrast {
		pixel = pixel.EnhanceContrast(r.config.ContrastFactor)
	}
	return pixel.Clamp()
}

// tracePixel marches a single ray through the given (sub-)pixel coordinates
func (r *Renderer) tracePixel(px, py float64, stats *RenderStats) core.Color {
	direction := r.camera.RayDirection(px, py, r.config.Width, r.config.Height)
	color, outcome := r.marcher.Trace(core.NewRay(r.camera.Position(), direction))
	stats.record(outcome)
	return color
}
