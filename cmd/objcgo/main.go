package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/objcgo/cmd/objcgo/internal/check"
	"github.com/broady/objcgo/cmd/objcgo/internal/dump"
	"github.com/broady/objcgo/cmd/objcgo/internal/gen"
	"github.com/broady/objcgo/cmd/objcgo/internal/tables"
	"github.com/broady/objcgo/internal/logging"
)

type CLI struct {
	LogFormat string `help:"Log output format." enum:"text,json" default:"text" name:"log-format"`
	Verbose   int    `help:"Increase log verbosity (-v info, -vv debug)." short:"v" type:"counter"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate the Objective-C shim and Go wrapper for a declaration tree."`
	Check   check.Cmd  `cmd:"" help:"Resolve a declaration tree and report statistics without generating files."`
	Dump    dump.Cmd   `cmd:"" help:"Print the resolved schema as JSON."`
	Tables  tables.Cmd `cmd:"" help:"Print the effective translation tables."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("objcgo"),
		kong.Description("Generate Go bindings for Objective-C frameworks from clang declaration dumps."),
		kong.UsageOnError(),
	)
	logger, err := logging.New(os.Stderr, cli.LogFormat, logging.Level(cli.Verbose))
	ctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	err = ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
