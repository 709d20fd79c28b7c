package resolve

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/ir"
	"github.com/broady/objcgo/bridgegen/naming"
)

// ReasonDeniedMethod is the rejection reason of denylisted methods.
const ReasonDeniedMethod = "unacceptable-method"

// IsConstructor reports whether a selector names an initializer: exactly the
// constructor selector, or longer than and starting with the constructor
// prefix.
func (c *Context) IsConstructor(selector string) bool {
	t := c.tables
	return selector == t.ConstructorSelector ||
		(len(selector) > len(t.ConstructorPrefix) && strings.HasPrefix(selector, t.ConstructorPrefix))
}

func (c *Context) buildMethod(class string, n decl.Node, classScoped bool) (*ir.MethodDescriptor, error) {
	m := &ir.MethodDescriptor{
		Class:       class,
		Selector:    n.DisplayName(),
		ClassScoped: classScoped,
		Constructor: c.IsConstructor(n.DisplayName()),
	}

	ret, err := c.ResolveType(n)
	if err != nil {
		return nil, wrapMethod(err, class, m.Selector)
	}

	for _, pn := range decl.Filter(n, decl.KindParameter) {
		p, err := c.buildParam(pn)
		if err != nil {
			return nil, wrapMethod(err, class, m.Selector)
		}
		m.Params = append(m.Params, p)
	}
	if m.Arity() != len(m.Params) {
		return nil, objcgo.Malformedf("%s %s: selector takes %d arguments, declaration has %d parameters",
			class, m.Selector, m.Arity(), len(m.Params)).
			WithDetail("class", class).
			WithDetail("selector", m.Selector)
	}

	switch {
	case m.Constructor:
		// Initializers return id or instancetype; the owning class is the
		// only useful answer.
		if ret, err = c.object(class); err != nil {
			return nil, err
		}
	case ir.IsInvalid(ret):
		c.warn(ir.Warning{
			Code:     ir.WarnReturnRecovered,
			Message:  "unresolved return type " + ret.String() + " treated as void",
			Class:    class,
			Selector: m.Selector,
		})
		ret = ir.Void()
		m.ReturnRecovered = true
	}
	m.Return = ret
	return m, nil
}

func (c *Context) buildParam(n decl.Node) (*ir.ParameterDescriptor, error) {
	name := n.DisplayName()
	if name == "" || strings.Contains(name, ":") {
		return nil, objcgo.Malformedf("bad parameter name %q", name)
	}
	t, err := c.ResolveType(n)
	if err != nil {
		return nil, err
	}
	// A parameter can never be void; keep the method and let it be rejected.
	if ir.IsVoid(t) {
		t = ir.Invalid(c.tables.VoidEncoding)
	}
	return &ir.ParameterDescriptor{Name: name, Type: t}, nil
}

func wrapMethod(err error, class, selector string) error {
	var e *objcgo.Error
	if errors.As(err, &e) {
		return e.WithDetail("class", class).WithDetail("selector", selector)
	}
	return err
}

// Check decides whether a method can cross the boundary and records the
// verdict on m. Rules apply in order: the method denylist, then parameter
// types, then the return type. Constructors are exempt from the return type
// rule only; an initializer taking an unacceptable parameter is rejected.
func (c *Context) Check(m *ir.MethodDescriptor) {
	m.Acceptable, m.RejectReason = c.verdict(m)
	if !m.Acceptable {
		c.logger.Debug("method rejected",
			slog.String("class", m.Class),
			slog.String("selector", m.Selector),
			slog.String("reason", m.RejectReason))
	}
}

// Acceptable reports whether m can cross the boundary without recording it.
func (c *Context) Acceptable(m *ir.MethodDescriptor) bool {
	ok, _ := c.verdict(m)
	return ok
}

func (c *Context) verdict(m *ir.MethodDescriptor) (bool, string) {
	if c.tables.IsDeniedMethod(naming.ShimFunc(m.Class, m.Selector, m.ClassScoped)) {
		return false, ReasonDeniedMethod
	}

	var rejected []string
	if !m.Constructor && !c.TypeAcceptable(m.Return) {
		rejected = append(rejected, "return "+m.Return.String())
	}
	for _, p := range m.Params {
		if !c.TypeAcceptable(p.Type) {
			rejected = append(rejected, "param "+p.Name+" ("+p.Type.String()+")")
		}
	}
	if len(rejected) == 0 {
		return true, ""
	}
	return false, "REJECT: " + strings.Join(rejected, ", ")
}

// linkAccessors binds each property to its getter and setter among methods.
// The property type overrides the types derived for the accessors.
func linkAccessors(class string, props []*ir.PropertyDescriptor, methods []*ir.MethodDescriptor) error {
	for _, p := range props {
		setter := naming.SetterSelector(p.Name)

		var getters, setters []*ir.MethodDescriptor
		for _, m := range methods {
			switch {
			case m.Selector == p.Name && len(m.Params) == 0:
				getters = append(getters, m)
			case m.Selector == setter && len(m.Params) == 1:
				setters = append(setters, m)
			}
		}

		if len(getters) > 1 {
			return objcgo.Malformedf("%s: property %s has %d getter candidates", class, p.Name, len(getters)).
				WithDetail("class", class).
				WithDetail("property", p.Name)
		}
		if len(setters) > 1 {
			return objcgo.Malformedf("%s: property %s has %d setter candidates", class, p.Name, len(setters)).
				WithDetail("class", class).
				WithDetail("property", p.Name)
		}

		if len(getters) == 1 {
			g := getters[0]
			g.Getter = true
			g.Property = p
			g.Return = p.Type
		}
		if len(setters) == 1 {
			s := setters[0]
			s.Setter = true
			s.Property = p
			s.Params[0].Type = p.Type
		}
	}
	return nil
}
