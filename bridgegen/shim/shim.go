// Package shim emits the C/Objective-C half of a bridge: a header declaring
// one plain C function per bridgeable method and an implementation that
// forwards each call as an Objective-C message send.
package shim

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/broady/objcgo/bridgegen/emit"
	"github.com/broady/objcgo/bridgegen/ir"
)

// Runtime helper functions every shim defines.
const (
	HelperClassName   = "CCG_object_getClassName"
	HelperDescription = "CCG_object_description"
)

const generatedBanner = "// Code generated by objcgo. DO NOT EDIT.\n"

// Generator writes <pkg>_shim.h and <pkg>_shim.m.
type Generator struct{}

// New returns a shim generator.
func New() *Generator { return &Generator{} }

// Name returns "shim".
func (*Generator) Name() string { return "shim" }

// Generate emits the shim files for schema.
func (g *Generator) Generate(ctx context.Context, schema *ir.Schema, opts emit.Options) (*emit.Result, error) {
	opts, err := emit.Prepare(opts)
	if err != nil {
		return nil, err
	}
	e := NewEmitter(opts.Tables)
	res := &emit.Result{}

	var hdr, src bytes.Buffer
	g.writeHeaderPrologue(&hdr, opts)
	g.writeSourcePrologue(&src, opts)

	for _, c := range schema.Classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.EmitPrototypes(&hdr, c)
		n, r := e.EmitClass(&src, c)
		res.Functions += n
		res.Rejected += r
	}
	fmt.Fprintf(&hdr, "\n#endif // %s\n", guard(opts.Package))

	if err := res.Write(ctx, opts, opts.ShimHeader(), hdr.Bytes()); err != nil {
		return nil, err
	}
	if err := res.Write(ctx, opts, opts.ShimSource(), src.Bytes()); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) writeHeaderPrologue(buf *bytes.Buffer, opts emit.Options) {
	buf.WriteString(generatedBanner)
	fmt.Fprintf(buf, "\n#ifndef %[1]s\n#define %[1]s\n\n", guard(opts.Package))
	buf.WriteString("#include <stdbool.h>\n")
	for _, h := range opts.Headers {
		buf.WriteString(importLine(h) + "\n")
	}
	buf.WriteString("\n// runtime\n")
	fmt.Fprintf(buf, "const char* %s(void* p);\n", HelperClassName)
	fmt.Fprintf(buf, "const char* %s(void* p);\n", HelperDescription)
}

func (g *Generator) writeSourcePrologue(buf *bytes.Buffer, opts emit.Options) {
	buf.WriteString(generatedBanner)
	fmt.Fprintf(buf, "\n#import %q\n", opts.ShimHeader())
	buf.WriteString("#import <objc/message.h>\n#import <objc/runtime.h>\n")
	buf.WriteString("\n// runtime\n")
	fmt.Fprintf(buf, "const char* %s(void* p) {\n  return object_getClassName((id)p);\n}\n\n", HelperClassName)
	fmt.Fprintf(buf, "const char* %s(void* p) {\n  return [[(id)p description] UTF8String];\n}\n", HelperDescription)
}

// guard returns the include guard macro for a package.
func guard(pkg string) string {
	return strings.ToUpper(pkg) + "_SHIM_H"
}

// importLine renders a configured header. Bare names are treated as system
// headers; quoted or bracketed names are kept.
func importLine(h string) string {
	if strings.HasPrefix(h, "<") || strings.HasPrefix(h, `"`) {
		return "#import " + h
	}
	return "#import <" + h + ">"
}
