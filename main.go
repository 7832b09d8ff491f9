package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/webpconvert/cmd"
	"github.com/lepinkainen/webpconvert/types"
)

// Version is set at build time via -ldflags
var Version = "dev"

type CLI struct {
	Convert    cmd.ConvertCmd    `cmd:"" default:"withargs" help:"Convert images to WebP"`
	Duplicates cmd.DuplicatesCmd `cmd:"" help:"Find perceptually similar images in a directory"`

	Version kong.VersionFlag `short:"V" help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("webpconvert"),
		kong.Description("Convert raster images to WebP using a parallel worker pool."),
		kong.Vars{"version": Version},
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
