package resolve

import (
	"fmt"
	"strings"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/ir"
)

// ResolveType returns the type of a declaration node. A class reference child
// wins over a type reference child, which wins over the runtime encoding.
// Encodings that match nothing resolve to Invalid; only structural problems
// with the node are errors.
func (c *Context) ResolveType(n decl.Node) (ir.TypeDescriptor, error) {
	cref, err := decl.Find(n, decl.KindClassRef)
	if err != nil {
		return nil, err
	}
	if cref != nil {
		return c.object(cref.DisplayName())
	}

	tref, err := decl.Find(n, decl.KindTypeRef)
	if err != nil {
		return nil, err
	}
	if tref != nil {
		// Const-ness is not recovered from type references.
		return ir.Primitive(tref.DisplayName(), false), nil
	}

	return c.resolveEncoding(n)
}

func (c *Context) resolveEncoding(n decl.Node) (ir.TypeDescriptor, error) {
	t := c.tables
	enc := n.Encoding()

	if n.Kind() == decl.KindInstanceMethod {
		m := c.receiver.FindStringSubmatch(enc)
		if m == nil {
			return nil, objcgo.Malformedf("%s: encoding %q has no %s receiver suffix (bit-field or variadic method?)",
				n.DisplayName(), enc, t.ReceiverSuffix).WithDetail("usr", n.USR())
		}
		enc = m[1]
	}
	if enc == "" {
		return nil, objcgo.Malformedf("%s %q has an empty type encoding", n.Kind(), n.DisplayName()).
			WithDetail("usr", n.USR())
	}

	isConst := false
	if m := c.qualifier.FindStringSubmatch(enc); m != nil {
		enc = m[2]
		isConst = strings.Contains(m[1], t.ConstQualifier)
	}

	if enc == t.VoidEncoding {
		return ir.Void(), nil
	}
	if name, ok := t.Encoding(enc); ok {
		return ir.Primitive(name, isConst), nil
	}
	if enc == t.ObjectEncoding {
		return c.object(t.RootClass)
	}
	return ir.Invalid(enc), nil
}

// TypeAcceptable reports whether a type can cross the boundary.
func (c *Context) TypeAcceptable(td ir.TypeDescriptor) bool {
	switch td := td.(type) {
	case *ir.VoidDescriptor:
		return true
	case *ir.ObjectDescriptor:
		return !c.tables.IsDeniedType(td.Class)
	case *ir.PrimitiveDescriptor:
		if c.tables.IsDeniedType(td.Name) {
			return false
		}
		return c.tables.KnownPrimitive(td.Name) || c.enums[td.Name] || c.opaque[td.Name]
	case *ir.InvalidDescriptor, nil:
		return false
	default:
		panic(fmt.Sprintf("resolve: unknown type descriptor %T", td))
	}
}
