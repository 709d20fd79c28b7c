package gen

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/broady/objcgo/bridgegen"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/sink"
)

type Cmd struct {
	Input       string   `arg:"" help:"Declaration tree (JSON) produced by the clang front end." type:"existingfile"`
	Out         string   `help:"Output directory for generated files." short:"o" default:"."`
	Package     string   `help:"Go package name; also prefixes the generated file names." short:"p"`
	Header      []string `help:"Header imported by the shim (repeatable)." short:"H"`
	Emitter     []string `help:"Outputs to generate (shim, go)." short:"e"`
	Tables      string   `help:"YAML or TOML tables file overlaid on the defaults." short:"t" type:"existingfile"`
	Set         []string `help:"Extra option as key=value (repeatable), e.g. --set cflags=-fobjc-arc." short:"s"`
	NoOverwrite bool     `help:"Fail instead of replacing existing files."`
	Stdout      bool     `help:"Print generated files to stdout instead of writing them."`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	root, err := decl.ReadFile(c.Input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := bridgegen.Generate(ctx, root, cfg)
	if err != nil {
		return err
	}

	if c.Stdout {
		return nil
	}
	for _, f := range result.Files {
		fmt.Printf("✓ %s (%d bytes)\n", f.Path, f.Size)
	}
	fmt.Printf("✓ %d functions, %d commented out, %d warnings\n",
		result.Functions, result.Rejected, len(result.Warnings))
	return nil
}

// config merges --set options with the dedicated flags; flags win.
func (c *Cmd) config() (*bridgegen.Config, error) {
	values := url.Values{}
	for _, kv := range c.Set {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		values.Add(k, v)
	}
	cfg, err := bridgegen.ParseOptions(values)
	if err != nil {
		return nil, err
	}

	if c.Package != "" {
		cfg.Package = c.Package
	}
	if len(c.Header) > 0 {
		cfg.Headers = c.Header
	}
	if len(c.Emitter) > 0 {
		cfg.Emitters = c.Emitter
	}
	if c.Tables != "" {
		cfg.TablesFile = c.Tables
	}
	if c.NoOverwrite {
		cfg.NoOverwrite = true
	}
	if c.Stdout {
		cfg.Sink = sink.NewStreamSink(os.Stdout)
	} else if cfg.OutDir == "" {
		cfg.OutDir = c.Out
	}
	return cfg, nil
}
