package resolve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Build resolves a translation unit into a schema using a fresh Context.
func Build(root decl.Node, t *tables.Tables, logger *slog.Logger) (*ir.Schema, error) {
	return NewContext(t, logger).Build(root)
}

// Build runs the single resolution pass over a translation unit:
// typedefs and enums, then interfaces, then categories, then finalization.
// A Context builds one schema.
func (c *Context) Build(root decl.Node) (*ir.Schema, error) {
	if root.Kind() != decl.KindTranslationUnit {
		return nil, objcgo.Errorf(objcgo.CodeInvalidArgument, "root node is %s, want %s", root.Kind(), decl.KindTranslationUnit)
	}

	s := &ir.Schema{}

	// Leaves.
	for _, n := range decl.Filter(root, decl.KindTypedef) {
		td, err := c.buildTypedef(n)
		if err != nil {
			return nil, fmt.Errorf("typedef %s: %w", n.DisplayName(), err)
		}
		s.Typedefs = append(s.Typedefs, td)
	}
	for _, n := range decl.Filter(root, decl.KindEnum) {
		ed, err := c.buildEnum(n)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", n.DisplayName(), err)
		}
		s.Enums = append(s.Enums, ed)
	}
	if err := c.CloseLeaves(); err != nil {
		return nil, err
	}

	// Classes.
	interfaces, err := c.definitions(decl.Filter(root, decl.KindClassInterface))
	if err != nil {
		return nil, err
	}
	for _, n := range interfaces {
		name := n.DisplayName()
		if err := c.DeclareClass(name); err != nil {
			return nil, err
		}
		cd, err := c.buildClass(name, n)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}
		s.Classes = append(s.Classes, cd)
	}

	if err := c.mergeCategories(s.Classes, decl.Filter(root, decl.KindCategory)); err != nil {
		return nil, fmt.Errorf("merging categories: %w", err)
	}

	// Finalization.
	for _, cd := range s.Classes {
		if err := c.finishClass(cd); err != nil {
			return nil, fmt.Errorf("class %s: %w", cd.Name, err)
		}
	}
	c.phase = phaseDone

	s.Undeclared = c.Undeclared()
	s.Warnings = c.warnings

	if errs := s.Validate(); len(errs) > 0 {
		return nil, objcgo.Errorf(objcgo.CodeInternal, "schema invariants violated: %v", errors.Join(errs...))
	}

	st := s.Stats()
	c.logger.Debug("schema built",
		slog.Int("classes", st.Classes),
		slog.Int("methods", st.Methods),
		slog.Int("rejected", st.Rejected),
		slog.Int("undeclared", st.Undeclared),
		slog.Int("warnings", len(s.Warnings)))
	return s, nil
}

// definitions picks one node per interface name. A defining node wins over
// forward mentions; two definitions of one class are malformed input.
func (c *Context) definitions(nodes []decl.Node) ([]decl.Node, error) {
	var order []string
	chosen := make(map[string]decl.Node)

	for _, n := range nodes {
		name := n.DisplayName()
		if name == "" {
			return nil, objcgo.Malformedf("interface with empty name").WithDetail("usr", n.USR())
		}

		prev, seen := chosen[name]
		switch {
		case !seen:
			order = append(order, name)
			chosen[name] = n
		case prev.IsDefinition() && n.IsDefinition():
			return nil, objcgo.Malformedf("class %s is defined twice", name).WithDetail("class", name)
		case n.IsDefinition():
			chosen[name] = n
			c.warn(ir.Warning{Code: ir.WarnForwardDeclaration, Message: "forward declaration ignored", Class: name})
		default:
			c.warn(ir.Warning{Code: ir.WarnForwardDeclaration, Message: "forward declaration ignored", Class: name})
		}
	}

	out := make([]decl.Node, 0, len(order))
	for _, name := range order {
		out = append(out, chosen[name])
	}
	return out, nil
}

func (c *Context) buildTypedef(n decl.Node) (*ir.TypedefDescriptor, error) {
	dest, err := c.ResolveType(n)
	if err != nil {
		return nil, err
	}
	td := &ir.TypedefDescriptor{Name: n.DisplayName(), Dest: dest}
	if td.Opaque, err = c.RegisterTypedef(td.Name, dest); err != nil {
		return nil, err
	}
	return td, nil
}

func (c *Context) buildEnum(n decl.Node) (*ir.EnumDescriptor, error) {
	ed := &ir.EnumDescriptor{Name: n.DisplayName()}
	for _, k := range decl.Filter(n, decl.KindEnumConstant) {
		if !c.tables.IsDeprecatedEnumConstant(k.DisplayName()) {
			ed.Constants = append(ed.Constants, k.DisplayName())
		}
	}
	if err := c.RegisterEnum(ed.Name); err != nil {
		return nil, err
	}
	return ed, nil
}
