// Package golang emits the Go half of a bridge: a cgo package whose types
// wrap Objective-C objects and whose functions call the shim.
package golang

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/emit"
	"github.com/broady/objcgo/bridgegen/ir"
)

// Generator writes <pkg>.go and <pkg>_runtime.go.
type Generator struct{}

// New returns a Go wrapper generator.
func New() *Generator { return &Generator{} }

// Name returns "go".
func (*Generator) Name() string { return "go" }

// Generate emits the wrapper and runtime files for schema.
func (g *Generator) Generate(ctx context.Context, schema *ir.Schema, opts emit.Options) (*emit.Result, error) {
	opts, err := emit.Prepare(opts)
	if err != nil {
		return nil, err
	}
	res := &emit.Result{}

	f, err := g.wrapper(ctx, schema, opts, res)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, objcgo.Errorf(objcgo.CodeInternal, "rendering %s: %v", opts.Wrapper(), err)
	}
	if err := res.Write(ctx, opts, opts.Wrapper(), buf.Bytes()); err != nil {
		return nil, err
	}

	runtime, err := Runtime(opts)
	if err != nil {
		return nil, objcgo.Errorf(objcgo.CodeInternal, "%v", err)
	}
	if err := res.Write(ctx, opts, opts.Runtime(), runtime); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) wrapper(ctx context.Context, schema *ir.Schema, opts emit.Options, res *emit.Result) (*jen.File, error) {
	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by objcgo. DO NOT EDIT.")
	f.CgoPreamble(Preamble(opts))

	e := NewEmitter(opts.Tables)
	for _, c := range schema.Classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, r, err := e.EmitClass(f, c)
		if err != nil {
			return nil, objcgo.Errorf(objcgo.CodeInternal, "rendering %s: %v", c.Name, err)
		}
		res.Functions += n
		res.Rejected += r
	}
	for _, name := range schema.Undeclared {
		e.EmitSkeleton(f, name)
	}
	return f, nil
}

// Preamble returns the cgo preamble of the wrapper: build flags and the shim
// header.
func Preamble(opts emit.Options) string {
	var b strings.Builder
	if len(opts.CFlags) > 0 {
		fmt.Fprintf(&b, "#cgo CFLAGS: %s\n", strings.Join(opts.CFlags, " "))
	}
	if len(opts.LDFlags) > 0 {
		fmt.Fprintf(&b, "#cgo LDFLAGS: %s\n", strings.Join(opts.LDFlags, " "))
	}
	fmt.Fprintf(&b, "#include %q\n", opts.ShimHeader())
	return b.String()
}
