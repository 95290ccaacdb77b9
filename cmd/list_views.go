package cmd

import (
	"bytes"
	"fmt"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
	"github.com/mcorwin17/Blackhole-Rendering/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListViews prints the available camera presets.
func ListViews(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Position", "Target", "Up"})
	for _, view := range scene.Views() {
		table.Append([]string{
			view.Name,
			formatVec(view.Position),
			formatVec(view.Target),
			formatVec(view.Up),
		})
	}
	table.Render()

	logger.Noticef("available camera presets\n%s", buf.String())
	return nil
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
