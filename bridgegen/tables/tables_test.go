package tables

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/objcgo"
)

func TestDefault(t *testing.T) {
	tb := Default()
	if err := tb.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	encodings := map[string]string{
		"c": "char", "i": "int", "s": "short", "l": "long", "q": "long long",
		"C": "unsigned char", "I": "unsigned int", "S": "unsigned short",
		"L": "unsigned long", "Q": "unsigned long long",
		"f": "float", "d": "double", "B": "bool", "*": "char*", "^v": "void*",
	}
	if len(tb.Encodings) != len(encodings) {
		t.Errorf("len(Encodings) = %d, want %d", len(tb.Encodings), len(encodings))
	}
	for code, want := range encodings {
		got, ok := tb.Encoding(code)
		if !ok || got != want {
			t.Errorf("Encoding(%q) = %q, %v, want %q", code, got, ok, want)
		}
		if !tb.KnownPrimitive(want) {
			t.Errorf("KnownPrimitive(%q) = false, want true", want)
		}
	}

	if tb.RootClass != "NSObject" || tb.ReceiverSuffix != "@0:8" || tb.ObjectEncoding != "@" {
		t.Errorf("scalars = %q %q %q", tb.RootClass, tb.ReceiverSuffix, tb.ObjectEncoding)
	}
	if len(tb.DeniedTypes) != 28 {
		t.Errorf("len(DeniedTypes) = %d, want 28", len(tb.DeniedTypes))
	}
	if len(tb.DeniedMethods) != 26 {
		t.Errorf("len(DeniedMethods) = %d, want 26", len(tb.DeniedMethods))
	}
}

func TestDefault_FreshCopy(t *testing.T) {
	a := Default()
	a.Encodings["x"] = "mutated"
	if _, ok := Default().Encodings["x"]; ok {
		t.Error("Default() returned shared state")
	}
}

func TestLookups(t *testing.T) {
	tb := Default()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"denied NSRange", tb.IsDeniedType("NSRange"), true},
		{"denied NSString", tb.IsDeniedType("NSString"), false},
		{"denied method", tb.IsDeniedMethod("NSPredicate__predicateWithBlock"), true},
		{"allowed method", tb.IsDeniedMethod("NSString_length"), false},
		{"deprecated constant", tb.IsDeprecatedEnumConstant("NSDataWritingFileProtectionMask"), true},
		{"live constant", tb.IsDeprecatedEnumConstant("NSDataWritingAtomic"), false},
		{"reserved type", tb.Reserved()["type"], true},
		{"reserved goobj", tb.Reserved()["goobj"], true},
		{"not reserved", tb.Reserved()["name"], false},
		{"boxed NSRect", tb.IsBoxed("NSRect"), true},
		{"not boxed", tb.IsBoxed("C.int"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := tb.HostType("long long"); got != "C.longlong" {
		t.Errorf("HostType(long long) = %q", got)
	}
	if got := tb.HostType("NSWindowStyleMask"); got != "C.NSWindowStyleMask" {
		t.Errorf("HostType(NSWindowStyleMask) = %q", got)
	}
	if got := tb.ShimType("BOOL"); got != "bool" {
		t.Errorf("ShimType(BOOL) = %q", got)
	}
	if got := tb.ShimType("double"); got != "double" {
		t.Errorf("ShimType(double) = %q", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	tb, err := Load(filepath.Join("testdata", "override.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tb.DeniedTypes) != 1 || tb.DeniedTypes[0] != "NSRange" {
		t.Errorf("DeniedTypes = %v, want [NSRange]", tb.DeniedTypes)
	}
	if got, _ := tb.Encoding("#"); got != "Class" {
		t.Errorf("Encoding(#) = %q, want Class", got)
	}
	if got, _ := tb.Encoding("i"); got != "int" {
		t.Errorf("Encoding(i) = %q, default lost", got)
	}
	if got := tb.HostType("CGFloat"); got != "C.double" {
		t.Errorf("HostType(CGFloat) = %q", got)
	}
	if tb.RootClass != "NSObject" {
		t.Errorf("RootClass = %q, want default", tb.RootClass)
	}
}

func TestLoad_TOML(t *testing.T) {
	tb, err := Load(filepath.Join("testdata", "override.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if tb.RootClass != "MyObject" {
		t.Errorf("RootClass = %q, want MyObject", tb.RootClass)
	}
	if len(tb.ReservedIdentifiers) != 2 {
		t.Errorf("ReservedIdentifiers = %v", tb.ReservedIdentifiers)
	}
	if got := tb.ShimType("NSInteger"); got != "long" {
		t.Errorf("ShimType(NSInteger) = %q", got)
	}
	if got := tb.ShimType("BOOL"); got != "bool" {
		t.Errorf("ShimType(BOOL) = %q, default lost", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code objcgo.ErrorCode
	}{
		{"invalid values", filepath.Join("testdata", "invalid.yaml"), objcgo.CodeInvalidConfig},
		{"unsupported extension", filepath.Join("testdata", "tables.ini"), objcgo.CodeInvalidArgument},
		{"missing file", filepath.Join("testdata", "nope.yaml"), objcgo.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := objcgo.CodeOf(err); got != tt.code {
				t.Errorf("CodeOf() = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), "json")
	if got := objcgo.CodeOf(err); got != objcgo.CodeInvalidArgument {
		t.Errorf("CodeOf() = %v, want %v", got, objcgo.CodeInvalidArgument)
	}
}

func TestValidate_VoidEncodingCollision(t *testing.T) {
	tb := Default()
	tb.Encodings["v"] = "void"
	err := tb.Validate()
	if got := objcgo.CodeOf(err); got != objcgo.CodeInvalidConfig {
		t.Errorf("CodeOf() = %v, want %v", got, objcgo.CodeInvalidConfig)
	}
}

func TestEncode(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Default().Encode(&buf, format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !strings.Contains(buf.String(), "NSObject") {
				t.Errorf("output missing root class:\n%s", buf.String())
			}

			back, err := Parse(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if err := back.Validate(); err != nil {
				t.Errorf("re-parsed tables invalid: %v", err)
			}
			if len(back.Encodings) != 15 || back.ReceiverSuffix != "@0:8" {
				t.Errorf("re-parsed tables = %d encodings, suffix %q", len(back.Encodings), back.ReceiverSuffix)
			}
		})
	}

	if err := Default().Encode(&bytes.Buffer{}, "xml"); objcgo.CodeOf(err) != objcgo.CodeInvalidArgument {
		t.Errorf("Encode(xml) error = %v", err)
	}
}
