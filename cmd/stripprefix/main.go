package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/vexyart/stripprefix/cmd/stripprefix/commands"
	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
	"github.com/vexyart/stripprefix/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("stripprefix"),
		kong.Description("Plan and preview MkDocs builds with numeric ordering prefixes stripped from URLs and titles."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := commands.NewGlobal()
	if err := parser.Run(global, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
