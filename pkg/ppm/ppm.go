// Package ppm serializes frames to the plain-text PPM (P3) image format.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/renderer"
)

const maxChannelValue = 255

// Encode writes the frame to w as a plain-text P3 bitmap: a three-line
// header (format tag, dimensions, max channel value) followed by one
// "R G B" integer triple per pixel in row-major order. Channels are
// clamped to [0,1] before conversion.
func Encode(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", frame.Width, frame.Height, maxChannelValue); err != nil {
		return err
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y).Clamp()
			r := int(c.R * maxChannelValue)
			g := int(c.G * maxChannelValue)
			b := int(c.B * maxChannelValue)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
