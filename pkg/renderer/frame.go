package renderer

import (
	"image"
	"image/color"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

// Frame is a row-major grid of colors, one cell per pixel. It is owned by
// the renderer until fully populated, then handed to an image writer.
type Frame struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewFrame creates an all-black frame of the given dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// At returns the color of the pixel at (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.pixels[y*f.Width+x]
}

// Set stores the color of the pixel at (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.pixels[y*f.Width+x] = c
}

// ToImage converts the frame to an RGBA image, clamping each channel
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y).Clamp()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.R),
				G: uint8(255 * c.G),
				B: uint8(255 * c.B),
				A: 255,
			})
		}
	}
	return img
}
