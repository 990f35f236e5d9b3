/*
Copyright © 2025 Conner Ohnesorge
*/
package main

import (
	"github.com/alecthomas/kong"

	"github.com/connerohnesorge/lumen/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("lumen"),
		kong.Description("Interactive terminal Markdown viewer"),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run())
}
