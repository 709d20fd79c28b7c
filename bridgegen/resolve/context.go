// Package resolve turns a declaration tree into an ir.Schema.
//
// All state of a run lives in a Context: the registries of declared enums,
// opaque typedefs and classes, and the set of classes referenced by some
// resolved type. The registries fill in two ordered phases. Leaf declarations
// (typedefs and enums) register first; once the leaf phase closes, classes
// register and every type lookup sees the complete leaf registry.
package resolve

import (
	"log/slog"
	"regexp"
	"slices"
	"sort"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/tables"
)

type phase int

const (
	phaseLeaves phase = iota
	phaseClasses
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseLeaves:
		return "leaves"
	case phaseClasses:
		return "classes"
	default:
		return "done"
	}
}

// Context carries the registries and lookup tables of one resolution run.
// A Context is not safe for concurrent use.
type Context struct {
	tables   *tables.Tables
	logger   *slog.Logger
	reserved map[string]bool

	receiver  *regexp.Regexp
	qualifier *regexp.Regexp
	category  *regexp.Regexp

	phase    phase
	enums    map[string]bool
	opaque   map[string]bool
	declared map[string]bool
	used     map[string]bool

	warnings []ir.Warning
}

// NewContext creates a Context in the leaf phase. A nil logger means
// slog.Default().
func NewContext(t *tables.Tables, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		tables:    t,
		logger:    logger,
		reserved:  t.Reserved(),
		receiver:  regexp.MustCompile(`^([^0-9]+)[0-9]+` + regexp.QuoteMeta(t.ReceiverSuffix)),
		qualifier: regexp.MustCompile(`^([` + regexp.QuoteMeta(t.Qualifiers) + `]+)(.+)$`),
		category:  regexp.MustCompile(`^c:objc\((cy|ext)\)([^@]+).+`),
		enums:     make(map[string]bool),
		opaque:    make(map[string]bool),
		declared:  make(map[string]bool),
		used:      make(map[string]bool),
	}
}

// Tables returns the tables the context resolves against.
func (c *Context) Tables() *tables.Tables {
	return c.tables
}

func (c *Context) expect(p phase, op string) error {
	if c.phase != p {
		return objcgo.Errorf(objcgo.CodeInternal, "%s during %s phase, want %s phase", op, c.phase, p)
	}
	return nil
}

// RegisterEnum records a named enum type. Anonymous enums are ignored.
func (c *Context) RegisterEnum(name string) error {
	if err := c.expect(phaseLeaves, "enum registration"); err != nil {
		return err
	}
	if name != "" {
		c.enums[name] = true
	}
	return nil
}

// RegisterTypedef records a typedef and reports whether it was registered as
// an opaque declared type, which happens when dest could not be resolved.
func (c *Context) RegisterTypedef(name string, dest ir.TypeDescriptor) (bool, error) {
	if err := c.expect(phaseLeaves, "typedef registration"); err != nil {
		return false, err
	}
	if !ir.IsInvalid(dest) {
		return false, nil
	}
	c.opaque[name] = true
	return true, nil
}

// CloseLeaves ends the leaf phase.
func (c *Context) CloseLeaves() error {
	if err := c.expect(phaseLeaves, "closing leaves"); err != nil {
		return err
	}
	c.phase = phaseClasses
	return nil
}

// DeclareClass records a class that has an interface declaration.
func (c *Context) DeclareClass(name string) error {
	if err := c.expect(phaseClasses, "class declaration"); err != nil {
		return err
	}
	c.declared[name] = true
	return nil
}

// IsEnum reports whether name is a registered enum type.
func (c *Context) IsEnum(name string) bool { return c.enums[name] }

// IsOpaque reports whether name is a registered opaque typedef.
func (c *Context) IsOpaque(name string) bool { return c.opaque[name] }

// IsDeclared reports whether a class has an interface declaration.
func (c *Context) IsDeclared(name string) bool { return c.declared[name] }

// object returns an object type and records the class as referenced.
func (c *Context) object(class string) (ir.TypeDescriptor, error) {
	if class == "" {
		return nil, objcgo.Malformedf("class reference with empty name")
	}
	c.used[class] = true
	return ir.Object(class), nil
}

// Undeclared returns, sorted, the classes referenced but never declared.
// The root class is always included when it is not declared.
func (c *Context) Undeclared() []string {
	var out []string
	for name := range c.used {
		if !c.declared[name] {
			out = append(out, name)
		}
	}
	if root := c.tables.RootClass; !c.declared[root] && !slices.Contains(out, root) {
		out = append(out, root)
	}
	sort.Strings(out)
	return out
}

func (c *Context) warn(w ir.Warning) {
	c.warnings = append(c.warnings, w)
	c.logger.Debug("schema warning",
		slog.String("code", w.Code),
		slog.String("class", w.Class),
		slog.String("selector", w.Selector),
		slog.String("message", w.Message))
}
