package ir

import "testing"

func TestTypeKind_String(t *testing.T) {
	tests := []struct {
		kind TypeKind
		want string
	}{
		{KindVoid, "Void"},
		{KindPrimitive, "Primitive"},
		{KindObject, "Object"},
		{KindInvalid, "Invalid"},
		{TypeKind(999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TypeKind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		typ      TypeDescriptor
		wantKind TypeKind
		wantStr  string
	}{
		{"void", Void(), KindVoid, "void"},
		{"primitive", Primitive("unsigned int", false), KindPrimitive, "unsigned int"},
		{"const primitive", Primitive("char*", true), KindPrimitive, "const char*"},
		{"object", Object("NSString"), KindObject, "NSString*"},
		{"invalid", Invalid("{CGRect=dd}"), KindInvalid, "<invalid {CGRect=dd}>"},
		{"invalid no reason", Invalid(""), KindInvalid, "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.typ.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestIsVoidIsInvalid(t *testing.T) {
	if !IsVoid(Void()) || IsVoid(Primitive("int", false)) {
		t.Error("IsVoid mismatch")
	}
	if !IsInvalid(nil) || !IsInvalid(Invalid("x")) || IsInvalid(Object("NSObject")) {
		t.Error("IsInvalid mismatch")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b TypeDescriptor
		want bool
	}{
		{"void", Void(), Void(), true},
		{"same primitive", Primitive("int", false), Primitive("int", false), true},
		{"const differs", Primitive("int", true), Primitive("int", false), false},
		{"name differs", Primitive("int", false), Primitive("long", false), false},
		{"same object", Object("NSView"), Object("NSView"), true},
		{"object differs", Object("NSView"), Object("NSWindow"), false},
		{"cross kind", Object("int"), Primitive("int", false), false},
		{"invalid", Invalid("x"), Invalid("x"), true},
		{"nil", nil, Void(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
