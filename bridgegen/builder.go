package bridgegen

import (
	"context"
	"log/slog"

	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/sink"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Generator provides a fluent API for bridge generation.
// Create with FromNode() or FromFile() and configure with method chaining.
//
// Example:
//
//	bridgegen.FromFile("appkit.json").
//	    Package("appkit").
//	    Headers("AppKit/AppKit.h").
//	    ToDir("./appkit")
type Generator struct {
	root decl.Node
	path string
	cfg  Config
}

// FromNode creates a Generator for an already decoded declaration tree.
func FromNode(root decl.Node) *Generator {
	return &Generator{root: root}
}

// FromFile creates a Generator reading the JSON declaration tree at path
// when a terminal operation runs.
func FromFile(path string) *Generator {
	return &Generator{path: path}
}

// Package sets the Go package name of the wrapper.
func (g *Generator) Package(name string) *Generator {
	g.cfg.Package = name
	return g
}

// Headers adds headers imported by the shim.
func (g *Generator) Headers(headers ...string) *Generator {
	g.cfg.Headers = append(g.cfg.Headers, headers...)
	return g
}

// CFlags adds cgo compiler flags.
func (g *Generator) CFlags(flags ...string) *Generator {
	g.cfg.CFlags = append(g.cfg.CFlags, flags...)
	return g
}

// LDFlags adds cgo linker flags.
func (g *Generator) LDFlags(flags ...string) *Generator {
	g.cfg.LDFlags = append(g.cfg.LDFlags, flags...)
	return g
}

// Emitters restricts the outputs to the named emitters ("shim", "go").
func (g *Generator) Emitters(names ...string) *Generator {
	g.cfg.Emitters = append(g.cfg.Emitters, names...)
	return g
}

// WithTables replaces the configuration tables.
func (g *Generator) WithTables(t *tables.Tables) *Generator {
	g.cfg.Tables = t
	return g
}

// WithTablesFile overlays a tables file on the defaults.
func (g *Generator) WithTablesFile(path string) *Generator {
	g.cfg.TablesFile = path
	return g
}

// WithLogger sets the logger for the run.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	g.cfg.Logger = l
	return g
}

// ToSink writes files to s.
// This is a terminal operation.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink) (*GenerateResult, error) {
	g.cfg.Sink = s
	return g.run(ctx)
}

// ToDir generates files to the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	g.cfg.Sink = nil
	g.cfg.OutDir = dir
	return g.run(context.Background())
}

// Generate returns generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate() (*GenerateResult, error) {
	g.cfg.Sink = nil
	g.cfg.OutDir = ""
	return g.run(context.Background())
}

func (g *Generator) run(ctx context.Context) (*GenerateResult, error) {
	root := g.root
	if root == nil && g.path != "" {
		c, err := decl.ReadFile(g.path)
		if err != nil {
			return nil, err
		}
		root = c
	}
	return Generate(ctx, root, &g.cfg)
}
