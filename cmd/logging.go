package cmd

import (
	"github.com/mcorwin17/Blackhole-Rendering/log"
	"github.com/urfave/cli"
)

var logger = log.New("blackhole")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
