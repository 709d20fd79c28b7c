package decl

import "strings"

// Kind identifies the category of a declaration node.
type Kind int

const (
	KindOther Kind = iota // Any cursor kind the engine does not consume
	KindTranslationUnit   // Root of the tree
	KindClassInterface    // @interface Foo : Bar
	KindCategory          // @interface Foo (Extras)
	KindInstanceMethod    // - (id)foo
	KindClassMethod       // + (id)foo
	KindProperty          // @property
	KindParameter         // Method parameter
	KindEnum              // enum declaration
	KindEnumConstant      // enum member
	KindTypedef           // typedef declaration
	KindSuperclassRef     // Superclass of an interface
	KindTypeRef           // Reference to a named type
	KindClassRef          // Reference to an Objective-C class
)

// clangNames maps each kind to the libclang cursor kind spelling.
var clangNames = [...]string{
	KindOther:           "OTHER",
	KindTranslationUnit: "TRANSLATION_UNIT",
	KindClassInterface:  "OBJC_INTERFACE_DECL",
	KindCategory:        "OBJC_CATEGORY_DECL",
	KindInstanceMethod:  "OBJC_INSTANCE_METHOD_DECL",
	KindClassMethod:     "OBJC_CLASS_METHOD_DECL",
	KindProperty:        "OBJC_PROPERTY_DECL",
	KindParameter:       "PARM_DECL",
	KindEnum:            "ENUM_DECL",
	KindEnumConstant:    "ENUM_CONSTANT_DECL",
	KindTypedef:         "TYPEDEF_DECL",
	KindSuperclassRef:   "OBJC_SUPER_CLASS_REF",
	KindTypeRef:         "TYPE_REF",
	KindClassRef:        "OBJC_CLASS_REF",
}

// String returns the libclang spelling of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(clangNames) {
		return "OTHER"
	}
	return clangNames[k]
}

// ParseKind maps a libclang cursor kind name to a Kind.
// A leading "CursorKind." is accepted. Names the engine does not consume map to KindOther.
func ParseKind(s string) Kind {
	s = strings.TrimPrefix(strings.TrimSpace(s), "CursorKind.")
	for k, name := range clangNames {
		if name == s {
			return Kind(k)
		}
	}
	return KindOther
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}
