package shim

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/naming"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Emitter renders classes as C procedures that message the Objective-C
// runtime.
type Emitter struct {
	tables   *tables.Tables
	reserved map[string]bool
}

// NewEmitter returns an emitter using t for type spellings.
func NewEmitter(t *tables.Tables) *Emitter {
	return &Emitter{tables: t, reserved: t.Reserved()}
}

// EmitClass writes the implementation section of c. A class rejected by name
// becomes a single comment line. It returns the number of functions written
// and how many of them are commented out.
func (e *Emitter) EmitClass(buf *bytes.Buffer, c *ir.ClassDescriptor) (functions, rejected int) {
	if !c.Acceptable {
		fmt.Fprintf(buf, "\n// %s\n", c.Name)
		return 0, 0
	}

	fmt.Fprintf(buf, "\n////%s\n", c.Name)
	for _, m := range c.Declarations() {
		buf.WriteString("\n")
		lines := e.function(m)
		functions++
		if !m.Acceptable {
			rejected++
			buf.WriteString("//" + m.RejectReason + "\n")
			for _, l := range lines {
				buf.WriteString("//" + l + "\n")
			}
			continue
		}
		for _, l := range lines {
			buf.WriteString(l + "\n")
		}
	}
	return functions, rejected
}

// EmitPrototypes writes a declaration for every accepted function of c.
func (e *Emitter) EmitPrototypes(buf *bytes.Buffer, c *ir.ClassDescriptor) {
	if !c.Acceptable {
		return
	}
	fmt.Fprintf(buf, "\n// %s\n", c.Name)
	for _, m := range c.Declarations() {
		if m.Acceptable {
			buf.WriteString(e.signature(m) + ";\n")
		}
	}
}

// FuncName returns the C name of m's shim function.
func FuncName(m *ir.MethodDescriptor) string {
	return naming.ShimFunc(m.Class, m.Selector, m.ClassScoped)
}

func (e *Emitter) function(m *ir.MethodDescriptor) []string {
	return []string{
		e.signature(m) + " {",
		e.body(m),
		"}",
	}
}

func (e *Emitter) signature(m *ir.MethodDescriptor) string {
	params := make([]string, 0, len(m.Params)+1)
	if !m.Static() {
		params = append(params, "void* goobj")
	}
	for _, p := range m.Params {
		params = append(params, e.cType(p.Type)+" "+e.paramName(p))
	}
	return e.cType(m.Return) + " " + FuncName(m) + "(" + strings.Join(params, ", ") + ")"
}

func (e *Emitter) body(m *ir.MethodDescriptor) string {
	var receiver string
	switch {
	case m.ClassScoped:
		receiver = m.Class
	case m.Constructor:
		receiver = "[" + m.Class + " alloc]"
	default:
		receiver = "(" + m.Class + "*)goobj"
	}
	send := "[" + receiver + " " + e.message(m) + "]"
	if ir.IsVoid(m.Return) {
		return "  " + send + ";"
	}
	return "  return " + send + ";"
}

// message interleaves selector parts with arguments: getRed:r green:g.
func (e *Emitter) message(m *ir.MethodDescriptor) string {
	if len(m.Params) == 0 {
		return m.Selector
	}
	parts := strings.SplitAfter(m.Selector, ":")
	args := make([]string, len(m.Params))
	for i, p := range m.Params {
		args[i] = parts[i] + e.argument(p)
	}
	return strings.Join(args, " ")
}

func (e *Emitter) argument(p *ir.ParameterDescriptor) string {
	name := e.paramName(p)
	o, ok := p.Type.(*ir.ObjectDescriptor)
	if !ok {
		return name
	}
	if o.Class == e.tables.ErrorClass {
		return "(" + o.Class + "**)&" + name
	}
	return "(" + o.Class + "*)" + name
}

func (e *Emitter) paramName(p *ir.ParameterDescriptor) string {
	return naming.Escape(p.Name, e.reserved)
}

func (e *Emitter) cType(t ir.TypeDescriptor) string {
	switch t := t.(type) {
	case *ir.VoidDescriptor:
		return "void"
	case *ir.PrimitiveDescriptor:
		name := e.tables.ShimType(t.Name)
		if t.Const {
			return "const " + name
		}
		return name
	case *ir.ObjectDescriptor:
		return "void*"
	case *ir.InvalidDescriptor:
		return t.String()
	default:
		panic(fmt.Sprintf("shim: unexpected type descriptor %T", t))
	}
}
