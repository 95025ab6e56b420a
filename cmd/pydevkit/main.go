package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pydevkit/cmd/pydevkit/commands"
	"git.home.luguber.info/inful/pydevkit/internal/logfields"
	"git.home.luguber.info/inful/pydevkit/internal/version"
)

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("pydevkit"),
		kong.Description("Developer productivity toolbox for Python projects"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", logfields.Error(err))
		os.Exit(1)
	}
}
