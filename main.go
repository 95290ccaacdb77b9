package main

import (
	"os"

	"github.com/mcorwin17/Blackhole-Rendering/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "blackhole"
	app.Usage = "render gravitationally lensed views of a black hole"
	app.Version = "2.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the scene from one or all camera presets",
			Description: `
March a ray through the black hole's gravitational field for every pixel,
bending it toward the hole, and terminate it on the event horizon, the
accretion disk or the background starfield. One image is written per
camera preset unless --view selects a single one.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "mass",
					Value: 1.0,
					Usage: "black hole mass (must be positive)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 45.0,
					Usage: "field of view in degrees",
				},
				cli.StringFlag{
					Name:  "view",
					Usage: "render only the named camera preset",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output",
					Usage: "output directory for rendered frames",
				},
				cli.StringFlag{
					Name:  "prefix",
					Value: "black_hole_",
					Usage: "output filename prefix",
				},
				cli.BoolFlag{
					Name:  "no-supersample",
					Usage: "disable 2x2 anti-aliasing",
				},
				cli.BoolFlag{
					Name:  "no-contrast",
					Usage: "disable contrast enhancement",
				},
				cli.BoolFlag{
					Name:  "png",
					Usage: "write PNG instead of plain-text PPM",
				},
			},
			Action: cmd.RenderViews,
		},
		{
			Name:   "list-views",
			Usage:  "list available camera presets",
			Action: cmd.ListViews,
		},
	}

	app.Run(os.Args)
}
