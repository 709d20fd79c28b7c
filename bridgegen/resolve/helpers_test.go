package resolve

import (
	"testing"

	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/tables"
)

func tu(children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindTranslationUnit, "test.h").Append(children...)
}

func iface(name, super string, children ...*decl.Cursor) *decl.Cursor {
	n := decl.New(decl.KindClassInterface, name).WithUSR("c:objc(cs)" + name)
	if super != "" {
		n.Append(decl.New(decl.KindSuperclassRef, super))
	}
	return n.Append(children...)
}

func category(owner, name string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindCategory, name).WithUSR("c:objc(cy)" + owner + "@" + name).Append(children...)
}

func imethod(selector, enc string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindInstanceMethod, selector).WithEncoding(enc).Append(children...)
}

func cmethod(selector, enc string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindClassMethod, selector).WithEncoding(enc).Append(children...)
}

func param(name, enc string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindParameter, name).WithEncoding(enc).Append(children...)
}

func prop(name, enc string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindProperty, name).WithEncoding(enc).Append(children...)
}

func typeRef(name string) *decl.Cursor  { return decl.New(decl.KindTypeRef, name) }
func classRef(name string) *decl.Cursor { return decl.New(decl.KindClassRef, name) }

func enum(name string, constants ...string) *decl.Cursor {
	n := decl.New(decl.KindEnum, name)
	for _, k := range constants {
		n.Append(decl.New(decl.KindEnumConstant, k))
	}
	return n
}

func typedef(name, enc string, children ...*decl.Cursor) *decl.Cursor {
	return decl.New(decl.KindTypedef, name).WithEncoding(enc).Append(children...)
}

// mustBuild resolves root with the default tables.
func mustBuild(t *testing.T, root decl.Node) *ir.Schema {
	t.Helper()
	s, err := Build(root, tables.Default(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func mustClass(t *testing.T, s *ir.Schema, name string) *ir.ClassDescriptor {
	t.Helper()
	c := s.FindClass(name)
	if c == nil {
		t.Fatalf("class %s not in schema", name)
	}
	return c
}

func mustMethod(t *testing.T, c *ir.ClassDescriptor, selector string) *ir.MethodDescriptor {
	t.Helper()
	for _, m := range c.Declarations() {
		if m.Selector == selector {
			return m
		}
	}
	t.Fatalf("%s has no declaration %s", c.Name, selector)
	return nil
}

func selectors(methods []*ir.MethodDescriptor) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.Selector
	}
	return out
}

func hasWarning(s *ir.Schema, code string) bool {
	for _, w := range s.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
