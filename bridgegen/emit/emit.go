// Package emit defines the contract shared by the shim and wrapper emitters.
// Both consume the same immutable ir.Schema; neither changes it.
package emit

import (
	"context"
	"fmt"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/sink"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Generator serializes a schema into source files.
type Generator interface {
	// Name returns the generator's identifier ("shim", "go").
	Name() string

	// Generate writes the generator's files for schema to opts.Sink.
	Generate(ctx context.Context, schema *ir.Schema, opts Options) (*Result, error)
}

// Options configures one generator run.
type Options struct {
	// Sink receives the generated files.
	Sink sink.OutputSink

	// Tables supplies the host and shim type maps.
	Tables *tables.Tables

	// Package is the Go package name; generated file names derive from it.
	Package string

	// Headers are the Objective-C headers the shim imports.
	Headers []string

	// CFlags and LDFlags go into the cgo preamble.
	CFlags  []string
	LDFlags []string
}

// Prepare checks opts and fills in the default tables.
func Prepare(opts Options) (Options, error) {
	if opts.Sink == nil {
		return opts, objcgo.NewError(objcgo.CodeInvalidArgument, "no output sink")
	}
	if opts.Package == "" {
		return opts, objcgo.NewError(objcgo.CodeInvalidArgument, "no package name")
	}
	if opts.Tables == nil {
		opts.Tables = tables.Default()
	}
	return opts, nil
}

// ShimHeader returns the file name of the shim header.
func (o Options) ShimHeader() string { return o.Package + "_shim.h" }

// ShimSource returns the file name of the shim implementation.
func (o Options) ShimSource() string { return o.Package + "_shim.m" }

// Wrapper returns the file name of the Go wrapper.
func (o Options) Wrapper() string { return o.Package + ".go" }

// Runtime returns the file name of the Go runtime support file.
func (o Options) Runtime() string { return o.Package + "_runtime.go" }

// Result describes what a generator wrote.
type Result struct {
	// Files lists the written files in write order.
	Files []OutputFile

	// Functions counts the emitted declarations, accepted and rejected.
	Functions int

	// Rejected counts declarations emitted as commented-out stand-ins.
	Rejected int
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is relative to the sink.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Write stores content in opts.Sink and records it in r.
func (r *Result) Write(ctx context.Context, opts Options, path string, content []byte) error {
	if err := opts.Sink.WriteFile(ctx, path, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	r.Files = append(r.Files, OutputFile{Path: path, Size: int64(len(content))})
	return nil
}

// Merge adds the counts and files of o to r.
func (r *Result) Merge(o *Result) {
	r.Files = append(r.Files, o.Files...)
	r.Functions += o.Functions
	r.Rejected += o.Rejected
}
