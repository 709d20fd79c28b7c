package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/naming"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Receiver is the name of the receiver of generated instance methods.
const Receiver = "goobj"

// Emitter renders classes as Go types whose methods call the shim through cgo.
type Emitter struct {
	tables   *tables.Tables
	reserved map[string]bool
}

// NewEmitter returns an emitter using t for type spellings.
func NewEmitter(t *tables.Tables) *Emitter {
	return &Emitter{tables: t, reserved: t.Reserved()}
}

// EmitClass adds the type, its boxing function and one function per
// declaration to f. A class rejected by name gets its type and boxing
// function only, so subclasses and references still compile.
func (e *Emitter) EmitClass(f *jen.File, c *ir.ClassDescriptor) (functions, rejected int, err error) {
	e.typeDecl(f, c.Name, c.Super)
	if !c.Acceptable {
		return 0, 0, nil
	}

	for _, m := range c.Declarations() {
		fn := e.function(m)
		functions++
		f.Line()
		if m.Acceptable {
			f.Add(fn)
			continue
		}
		rejected++
		text, err := commentOut(m.RejectReason, fn)
		if err != nil {
			return functions, rejected, fmt.Errorf("%s %s: %w", m.Class, m.Selector, err)
		}
		f.Comment(text)
		// Keep the commented function from becoming a doc comment.
		f.Line()
	}
	return functions, rejected, nil
}

// EmitSkeleton adds a pass-through type for a class that is referenced but
// never declared. It embeds the root class; the root class itself holds the
// object pointer.
func (e *Emitter) EmitSkeleton(f *jen.File, class string) {
	super := e.tables.RootClass
	if class == super {
		super = ""
	}
	e.typeDecl(f, class, super)
}

func (e *Emitter) typeDecl(f *jen.File, class, super string) {
	f.Line()
	if super == "" {
		f.Type().Id(class).Struct(jen.Id("self").Id("Id"))
		f.Line()
		f.Func().Id(class+"_").Params(jen.Id("i").Id("Id")).Id(class).Block(
			jen.Return(jen.Id(class).Values(jen.Id("i"))),
		)
		f.Line()
		f.Func().Params(jen.Id("obj").Id(class)).Id("Self").Params().Qual("unsafe", "Pointer").Block(
			jen.Return(jen.Qual("unsafe", "Pointer").Call(jen.Id("obj").Dot("self"))),
		)
		return
	}
	f.Type().Id(class).Struct(jen.Id(super))
	f.Line()
	f.Func().Id(class+"_").Params(jen.Id("i").Id("Id")).Id(class).Block(
		jen.Return(jen.Id(class).Values(jen.Id(super + "_").Call(jen.Id("i")))),
	)
}

// function renders m as a Go function: a method on the class for instance
// methods, a Class_name function for class methods and constructors.
func (e *Emitter) function(m *ir.MethodDescriptor) *jen.Statement {
	fn := jen.Func()
	name := naming.Exported(m.Selector)
	if m.Static() {
		name = naming.StaticFunc(m.Class, m.Selector)
	} else {
		fn.Params(jen.Id(Receiver).Id(m.Class))
	}

	params := make([]jen.Code, len(m.Params))
	for i, p := range m.Params {
		params[i] = jen.Id(e.paramName(p)).Add(e.goType(p.Type))
	}
	fn.Id(name).Params(params...)
	if !ir.IsVoid(m.Return) {
		fn.Add(e.goType(m.Return))
	}
	return fn.Block(e.body(m))
}

func (e *Emitter) body(m *ir.MethodDescriptor) jen.Code {
	args := make([]jen.Code, 0, len(m.Params)+1)
	if !m.Static() {
		args = append(args, jen.Id(Receiver).Dot("Self").Call())
	}
	for _, p := range m.Params {
		args = append(args, e.argument(p))
	}
	call := jen.Qual("C", naming.ShimFunc(m.Class, m.Selector, m.ClassScoped)).Call(args...)

	switch t := m.Return.(type) {
	case *ir.VoidDescriptor:
		return call
	case *ir.ObjectDescriptor:
		return jen.Return(jen.Id(t.Class + "_").Call(jen.Id("Id").Call(call)))
	case *ir.PrimitiveDescriptor:
		host := e.tables.HostType(t.Name)
		switch {
		case t.Name == "char*":
			return jen.Return(jen.Qual("C", "GoString").Call(call))
		case e.tables.IsBoxed(host):
			return jen.Return(jen.Id(host + "_").Call(call))
		}
		return jen.Return(call)
	default:
		return jen.Return(call)
	}
}

func (e *Emitter) argument(p *ir.ParameterDescriptor) jen.Code {
	name := e.paramName(p)
	switch t := p.Type.(type) {
	case *ir.ObjectDescriptor:
		return jen.Id(name).Dot("Self").Call()
	case *ir.PrimitiveDescriptor:
		switch t.Name {
		case "id":
			return jen.Qual("unsafe", "Pointer").Call(jen.Id(name))
		case "char*":
			return jen.Qual("C", "CString").Call(jen.Id(name))
		case "NSRect":
			return jen.Qual("C", "CGRectMake").Call(
				cgFloat(name, "X"), cgFloat(name, "Y"), cgFloat(name, "Width"), cgFloat(name, "Height"))
		case "NSPoint":
			return jen.Qual("C", "CGPointMake").Call(cgFloat(name, "X"), cgFloat(name, "Y"))
		}
	}
	return jen.Id(name)
}

func cgFloat(name, field string) jen.Code {
	return jen.Qual("C", "CGFloat").Call(jen.Id(name).Dot(field))
}

func (e *Emitter) paramName(p *ir.ParameterDescriptor) string {
	return naming.Escape(p.Name, e.reserved)
}

func (e *Emitter) goType(t ir.TypeDescriptor) jen.Code {
	switch t := t.(type) {
	case *ir.VoidDescriptor:
		return jen.Null()
	case *ir.PrimitiveDescriptor:
		return hostType(e.tables.HostType(t.Name))
	case *ir.ObjectDescriptor:
		return jen.Id(t.Class)
	case *ir.InvalidDescriptor:
		return jen.Id("invalid")
	default:
		panic(fmt.Sprintf("golang: unexpected type descriptor %T", t))
	}
}

// hostType turns a host spelling from the tables into code. Qualified names
// import their package; C names with spaces use the cgo spelling
// (struct CGRect becomes C.struct_CGRect).
func hostType(s string) *jen.Statement {
	i := strings.LastIndex(s, ".")
	if i <= 0 {
		return jen.Id(s)
	}
	return jen.Qual(s[:i], strings.ReplaceAll(s[i+1:], " ", "_"))
}

// commentOut renders fn on its own and prefixes each line with //, preceded
// by the rejection reason.
func commentOut(reason string, fn *jen.Statement) (string, error) {
	var buf bytes.Buffer
	if err := fn.Render(&buf); err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	return "//" + reason + "\n//" + strings.Join(lines, "\n//"), nil
}
