// Package bridgegen generates Objective-C bridges for Go: it resolves a
// declaration tree into a schema and runs the shim and wrapper emitters over
// it.
package bridgegen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/emit"
	"github.com/broady/objcgo/bridgegen/golang"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/resolve"
	"github.com/broady/objcgo/bridgegen/shim"
	"github.com/broady/objcgo/bridgegen/sink"
	"github.com/broady/objcgo/bridgegen/tables"
)

// GenerateResult describes one generation run.
type GenerateResult struct {
	// Files lists the written files in write order.
	Files []emit.OutputFile

	// Schema is the resolved declaration model the files were built from.
	Schema *ir.Schema

	// Warnings contains non-fatal issues found while resolving.
	Warnings []ir.Warning

	// Functions and Rejected count declarations across all emitters.
	Functions int
	Rejected  int

	// Memory holds the files when neither Sink nor OutDir was configured.
	Memory *sink.MemorySink
}

// Generate resolves root and writes the configured outputs.
func Generate(ctx context.Context, root decl.Node, cfg *Config) (*GenerateResult, error) {
	if root == nil {
		return nil, objcgo.NewError(objcgo.CodeInvalidArgument, "no declaration tree")
	}

	// Apply defaults
	cfg = applyConfigDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return nil, objcgo.FromValidation(err)
	}
	logger := cfg.Logger

	t, err := loadTables(cfg)
	if err != nil {
		return nil, err
	}

	// 1. Build schema
	schema, err := resolve.Build(root, t, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	result := &GenerateResult{Schema: schema, Warnings: schema.Warnings}
	var total emit.Result

	// 2. Pick the sink
	out := cfg.Sink
	switch {
	case out != nil:
	case cfg.OutDir != "":
		fs := sink.NewFilesystemSink(cfg.OutDir)
		fs.Overwrite = !cfg.NoOverwrite
		out = fs
	default:
		result.Memory = sink.NewMemorySink()
		out = result.Memory
	}

	// 3. Run the emitters
	opts := emit.Options{
		Sink:    out,
		Tables:  t,
		Package: cfg.Package,
		Headers: cfg.Headers,
		CFlags:  cfg.CFlags,
		LDFlags: cfg.LDFlags,
	}
	for _, name := range cfg.Emitters {
		gen := emitter(name)
		res, err := gen.Generate(ctx, schema, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", gen.Name(), err)
		}
		total.Merge(res)
		logger.Debug("emitter finished",
			slog.String("emitter", gen.Name()),
			slog.Int("files", len(res.Files)),
			slog.Int("functions", res.Functions))
	}

	result.Files = total.Files
	result.Functions = total.Functions
	result.Rejected = total.Rejected

	// Report warnings if any
	for _, w := range result.Warnings {
		logger.Warn(w.Message,
			slog.String("code", w.Code),
			slog.String("class", w.Class),
			slog.String("selector", w.Selector))
	}

	st := schema.Stats()
	logger.Info("bridge generated",
		slog.String("package", cfg.Package),
		slog.Int("classes", st.Classes),
		slog.Int("functions", st.Methods),
		slog.Int("rejected", st.Rejected),
		slog.Int("undeclared", st.Undeclared),
		slog.Int("files", len(result.Files)),
		slog.Int("warnings", len(result.Warnings)))

	return result, nil
}

// Check resolves root without writing any file.
func Check(root decl.Node, cfg *Config) (*ir.Schema, error) {
	cfg = applyConfigDefaults(cfg)
	t, err := loadTables(cfg)
	if err != nil {
		return nil, err
	}
	return resolve.Build(root, t, cfg.Logger)
}

func loadTables(cfg *Config) (*tables.Tables, error) {
	switch {
	case cfg.Tables != nil:
		if err := cfg.Tables.Validate(); err != nil {
			return nil, err
		}
		return cfg.Tables, nil
	case cfg.TablesFile != "":
		return tables.Load(cfg.TablesFile)
	default:
		return tables.Default(), nil
	}
}

// emitter returns the generator registered under a validated name.
func emitter(name string) emit.Generator {
	switch name {
	case EmitterShim:
		return shim.New()
	case EmitterGo:
		return golang.New()
	default:
		panic("bridgegen: unknown emitter " + name)
	}
}
