// Package ir defines the intermediate representation shared by the resolver and
// the emitters. Descriptors are built once by the resolver and treated as
// immutable by every emitter.
package ir

// TypeKind identifies the variant of a TypeDescriptor.
type TypeKind int

const (
	KindVoid      TypeKind = iota // No value (method returns only)
	KindPrimitive                 // Named C type: int, char*, NSUInteger, enum and typedef names
	KindObject                    // Pointer to an Objective-C class instance
	KindInvalid                   // Type could not be determined
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindPrimitive:
		return "Primitive"
	case KindObject:
		return "Object"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the closed set of types a declaration can resolve to.
// Exactly four implementations exist: *VoidDescriptor, *PrimitiveDescriptor,
// *ObjectDescriptor and *InvalidDescriptor. Consumers type-switch over all four.
type TypeDescriptor interface {
	// Kind returns the variant for switching.
	Kind() TypeKind

	// String returns a short human-readable form, used in rejection reasons.
	String() string

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// VoidDescriptor is the absence of a value.
type VoidDescriptor struct{}

func (*VoidDescriptor) Kind() TypeKind { return KindVoid }
func (*VoidDescriptor) String() string { return "void" }
func (*VoidDescriptor) sealed()        {}

// PrimitiveDescriptor is a C type identified by its canonical name.
type PrimitiveDescriptor struct {
	// Name is the canonical C spelling ("unsigned int", "char*", "NSUInteger").
	Name string

	// Const is set when the encoding carried the const qualifier.
	// Const-ness is not derived from type references.
	Const bool
}

func (*PrimitiveDescriptor) Kind() TypeKind { return KindPrimitive }
func (*PrimitiveDescriptor) sealed()        {}

func (d *PrimitiveDescriptor) String() string {
	if d.Const {
		return "const " + d.Name
	}
	return d.Name
}

// ObjectDescriptor is a reference to an instance of an Objective-C class.
type ObjectDescriptor struct {
	// Class is the class name. Never empty.
	Class string
}

func (*ObjectDescriptor) Kind() TypeKind   { return KindObject }
func (d *ObjectDescriptor) String() string { return d.Class + "*" }
func (*ObjectDescriptor) sealed()          {}

// InvalidDescriptor marks a type that could not be determined.
// It is never acceptable across the boundary.
type InvalidDescriptor struct {
	// Reason holds the residual encoding or lookup that failed.
	Reason string
}

func (*InvalidDescriptor) Kind() TypeKind { return KindInvalid }
func (*InvalidDescriptor) sealed()        {}

func (d *InvalidDescriptor) String() string {
	if d.Reason == "" {
		return "<invalid>"
	}
	return "<invalid " + d.Reason + ">"
}

// Convenience constructors.

// Void returns a VoidDescriptor.
func Void() *VoidDescriptor {
	return &VoidDescriptor{}
}

// Primitive returns a PrimitiveDescriptor.
func Primitive(name string, isConst bool) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{Name: name, Const: isConst}
}

// Object returns an ObjectDescriptor for the named class.
func Object(class string) *ObjectDescriptor {
	return &ObjectDescriptor{Class: class}
}

// Invalid returns an InvalidDescriptor carrying reason.
func Invalid(reason string) *InvalidDescriptor {
	return &InvalidDescriptor{Reason: reason}
}

// IsVoid reports whether t is the Void variant.
func IsVoid(t TypeDescriptor) bool {
	_, ok := t.(*VoidDescriptor)
	return ok
}

// IsInvalid reports whether t is nil or the Invalid variant.
func IsInvalid(t TypeDescriptor) bool {
	if t == nil {
		return true
	}
	_, ok := t.(*InvalidDescriptor)
	return ok
}

// Equal reports whether a and b describe the same type.
func Equal(a, b TypeDescriptor) bool {
	switch x := a.(type) {
	case *VoidDescriptor:
		_, ok := b.(*VoidDescriptor)
		return ok
	case *PrimitiveDescriptor:
		y, ok := b.(*PrimitiveDescriptor)
		return ok && x.Name == y.Name && x.Const == y.Const
	case *ObjectDescriptor:
		y, ok := b.(*ObjectDescriptor)
		return ok && x.Class == y.Class
	case *InvalidDescriptor:
		y, ok := b.(*InvalidDescriptor)
		return ok && x.Reason == y.Reason
	default:
		return false
	}
}
