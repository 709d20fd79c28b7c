package ir

import "strings"

// ClassDescriptor represents one Objective-C class after category merge.
type ClassDescriptor struct {
	// Name is unique within a translation unit.
	Name string

	// Super is the superclass name, empty for root classes.
	Super string

	// Properties in declaration order.
	Properties []*PropertyDescriptor

	// Methods holds instance methods: the primary interface's in declaration
	// order, followed by each merged category's in merge order.
	Methods []*MethodDescriptor

	// ClassMethods holds class-scoped methods of the primary interface.
	ClassMethods []*MethodDescriptor

	// Categories lists the names of the categories merged into this class.
	Categories []string

	// Constructor is the synthesized zero-argument constructor. It is nil when
	// the class declares a constructor of its own.
	Constructor *MethodDescriptor

	// Acceptable is false when the class name itself is denylisted.
	Acceptable bool

	// RejectReason explains why the class is not acceptable.
	RejectReason string
}

// Declarations returns the ordered declaration list handed to emitters:
// the synthesized constructor, then instance methods, then class methods.
func (c *ClassDescriptor) Declarations() []*MethodDescriptor {
	decls := make([]*MethodDescriptor, 0, len(c.Methods)+len(c.ClassMethods)+1)
	if c.Constructor != nil {
		decls = append(decls, c.Constructor)
	}
	decls = append(decls, c.Methods...)
	decls = append(decls, c.ClassMethods...)
	return decls
}

// HasConstructor reports whether any instance method is a constructor.
func (c *ClassDescriptor) HasConstructor() bool {
	for _, m := range c.Methods {
		if m.Constructor {
			return true
		}
	}
	return false
}

// Method returns the instance method with the given selector, or nil.
func (c *ClassDescriptor) Method(selector string) *MethodDescriptor {
	for _, m := range c.Methods {
		if m.Selector == selector {
			return m
		}
	}
	return nil
}

// Property returns the property with the given name, or nil.
func (c *ClassDescriptor) Property(name string) *PropertyDescriptor {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// MethodDescriptor represents one method of a class.
type MethodDescriptor struct {
	// Class is the owning class name.
	Class string

	// Selector is the colon-delimited selector ("getRed:green:blue:alpha:").
	Selector string

	// Params has one entry per selector part.
	Params []*ParameterDescriptor

	// Return is the return type. Unresolved encodings are recovered to Void
	// (see ReturnRecovered); a getter takes its property's type as is.
	Return TypeDescriptor

	ClassScoped bool
	Constructor bool
	Getter      bool
	Setter      bool

	// Synthesized marks a default constructor the source did not declare.
	Synthesized bool

	// ReturnRecovered is set when the resolved return type was Invalid and
	// was replaced by Void.
	ReturnRecovered bool

	// Property is the property this method is an accessor for.
	Property *PropertyDescriptor

	// Acceptable reports whether the method can cross the boundary.
	Acceptable bool

	// RejectReason explains a rejection. Empty when Acceptable.
	RejectReason string
}

// Arity returns the number of arguments the selector takes.
func (m *MethodDescriptor) Arity() int {
	return strings.Count(m.Selector, ":")
}

// Static reports whether the method is invoked without a receiver object:
// class methods and constructors.
func (m *MethodDescriptor) Static() bool {
	return m.ClassScoped || m.Constructor
}

// PropertyDescriptor represents a declared property.
type PropertyDescriptor struct {
	Name string
	Type TypeDescriptor
}

// ParameterDescriptor represents one method parameter.
type ParameterDescriptor struct {
	Name string
	Type TypeDescriptor
}

// EnumDescriptor represents an enum declaration.
type EnumDescriptor struct {
	// Name is empty for anonymous enums.
	Name string

	// Constants lists member names, deprecated members removed.
	Constants []string
}

// TypedefDescriptor represents a typedef declaration.
type TypedefDescriptor struct {
	Name string

	// Dest is the resolved destination type.
	Dest TypeDescriptor

	// Opaque is set when Dest could not be resolved. Opaque typedef names are
	// accepted across the boundary by name alone.
	Opaque bool
}
