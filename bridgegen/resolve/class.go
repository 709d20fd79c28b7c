package resolve

import (
	"errors"
	"strings"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/decl"
	"github.com/broady/objcgo/bridgegen/ir"
)

// buildClass builds the descriptor of an interface or category node owned by
// class, with accessors already linked.
func (c *Context) buildClass(class string, n decl.Node) (*ir.ClassDescriptor, error) {
	cd := &ir.ClassDescriptor{Name: class, Acceptable: true}

	super, err := decl.Find(n, decl.KindSuperclassRef)
	if err != nil {
		return nil, err
	}
	if super != nil {
		if _, err := c.object(super.DisplayName()); err != nil {
			return nil, err
		}
		cd.Super = super.DisplayName()
	}

	for _, pn := range decl.Filter(n, decl.KindProperty) {
		p, err := c.buildProperty(pn)
		if err != nil {
			return nil, wrapClass(err, class)
		}
		cd.Properties = append(cd.Properties, p)
	}
	for _, mn := range decl.Filter(n, decl.KindInstanceMethod) {
		m, err := c.buildMethod(class, mn, false)
		if err != nil {
			return nil, err
		}
		cd.Methods = append(cd.Methods, m)
	}
	for _, mn := range decl.Filter(n, decl.KindClassMethod) {
		m, err := c.buildMethod(class, mn, true)
		if err != nil {
			return nil, err
		}
		cd.ClassMethods = append(cd.ClassMethods, m)
	}

	if err := linkAccessors(class, cd.Properties, cd.Methods); err != nil {
		return nil, err
	}
	return cd, nil
}

func (c *Context) buildProperty(n decl.Node) (*ir.PropertyDescriptor, error) {
	name := n.DisplayName()
	if name == "" || strings.Contains(name, ":") {
		return nil, objcgo.Malformedf("bad property name %q", name)
	}
	t, err := c.ResolveType(n)
	if err != nil {
		return nil, err
	}
	if ir.IsVoid(t) {
		t = ir.Invalid(c.tables.VoidEncoding)
	}
	return &ir.PropertyDescriptor{Name: name, Type: t}, nil
}

func wrapClass(err error, class string) error {
	var e *objcgo.Error
	if errors.As(err, &e) {
		return e.WithDetail("class", class)
	}
	return err
}

// categoryOwner returns the class a category extends, taken from its USR.
// The display name of a category is only its own suffix.
func (c *Context) categoryOwner(n decl.Node) (string, error) {
	m := c.category.FindStringSubmatch(n.USR())
	if m == nil {
		return "", objcgo.Malformedf("category %q: cannot derive owning class from USR %q", n.DisplayName(), n.USR()).
			WithDetail("usr", n.USR())
	}
	return m[2], nil
}

// mergeCategories appends the instance methods of every category to its
// owning class, in category order. Deprecated categories are dropped before
// any resolution. Category class methods and properties do not survive the
// merge.
func (c *Context) mergeCategories(classes []*ir.ClassDescriptor, categories []decl.Node) error {
	byName := make(map[string]*ir.ClassDescriptor, len(classes))
	for _, cd := range classes {
		byName[cd.Name] = cd
	}

	for _, n := range categories {
		if strings.Contains(n.DisplayName(), c.tables.DeprecatedMarker) {
			c.warn(ir.Warning{
				Code:    ir.WarnDeprecatedCategory,
				Message: "deprecated category " + n.DisplayName() + " dropped",
			})
			continue
		}

		owner, err := c.categoryOwner(n)
		if err != nil {
			return err
		}
		cat, err := c.buildClass(owner, n)
		if err != nil {
			return err
		}

		target := byName[owner]
		if target == nil {
			c.warn(ir.Warning{
				Code:    ir.WarnOrphanCategory,
				Message: "category " + n.DisplayName() + " extends undeclared class",
				Class:   owner,
			})
			continue
		}

		target.Methods = append(target.Methods, cat.Methods...)
		target.Categories = append(target.Categories, n.DisplayName())

		if len(cat.ClassMethods) > 0 || len(cat.Properties) > 0 {
			c.warn(ir.Warning{
				Code:    ir.WarnCategoryDiscarded,
				Message: "category " + n.DisplayName() + ": class methods and properties are not merged",
				Class:   owner,
			})
		}
	}
	return nil
}

// finishClass marks a denylisted class, synthesizes the default constructor
// when no initializer is declared and checks every declaration.
func (c *Context) finishClass(cd *ir.ClassDescriptor) error {
	if c.tables.IsDeniedType(cd.Name) {
		cd.Acceptable = false
		cd.RejectReason = "REJECT: class " + cd.Name
	}

	if !cd.HasConstructor() {
		ret, err := c.object(cd.Name)
		if err != nil {
			return err
		}
		cd.Constructor = &ir.MethodDescriptor{
			Class:       cd.Name,
			Selector:    c.tables.ConstructorSelector,
			Return:      ret,
			Constructor: true,
			Synthesized: true,
		}
	}

	for _, m := range cd.Declarations() {
		c.Check(m)
	}
	return nil
}
