package cmd

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/ppm"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/renderer"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/scene"
	"github.com/urfave/cli"
)

// RenderViews renders one or all camera presets of the black hole scene.
func RenderViews(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.NewScene(core.NewVec3(0, 0, 0), ctx.Float64("mass"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}
	sc.FieldOfView = ctx.Float64("fov") * math.Pi / 180.0

	views := scene.Views()
	if name := ctx.String("view"); name != "" {
		view, exists := scene.FindView(name)
		if !exists {
			return fmt.Errorf("unknown view %q; run list-views for the available presets", name)
		}
		views = []scene.View{view}
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Width = sc.Width
	renderConfig.Height = sc.Height
	renderConfig.Supersample = !ctx.Bool("no-supersample")
	renderConfig.EnhanceContrast = !ctx.Bool("no-contrast")

	outDir := ctx.String("out")
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	marcher := renderer.NewMarcher(sc.BlackHole, renderer.DefaultMarchConfig())
	asPNG := ctx.Bool("png")

	for i, view := range views {
		logger.Noticef("rendering view %d/%d (%s) at %dx%d", i+1, len(views), view.Name, sc.Width, sc.Height)

		r := renderer.NewRenderer(view.Camera(sc.FieldOfView), marcher, renderConfig)
		r.SetProgressFunc(func(rowsDone, totalRows int) {
			logger.Infof("progress: %d%%", 100*rowsDone/totalRows)
		})

		frame, stats := r.Render()

		filename := outputFilename(outDir, ctx.String("prefix"), view.Name, asPNG)
		if err = writeFrame(frame, filename, asPNG); err != nil {
			return err
		}

		logger.Noticef("saved %s in %s (%d disk, %d horizon, %d background of %d rays)",
			filename, stats.RenderTime, stats.DiskHits, stats.HorizonHits, stats.BackgroundRays, stats.TotalRays)
	}

	return nil
}

// outputFilename assembles the per-view output path.
func outputFilename(dir, prefix, viewName string, asPNG bool) string {
	ext := ".ppm"
	if asPNG {
		ext = ".png"
	}
	return filepath.Join(dir, prefix+viewName+ext)
}

// writeFrame serializes the frame to disk as PPM or PNG.
func writeFrame(frame *renderer.Frame, filename string, asPNG bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if asPNG {
		return png.Encode(file, frame.ToImage())
	}
	return ppm.Encode(file, frame)
}
