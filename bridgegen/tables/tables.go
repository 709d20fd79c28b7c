// Package tables holds the versioned lookup data that drives type resolution,
// acceptability and naming: the ABI encoding map, denylists, reserved
// identifiers and the host and shim type maps.
//
// The defaults are embedded from defaults.yaml. Load overlays a YAML or TOML
// file on top of them.
package tables

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/broady/objcgo"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Tables is the complete configuration data for one run.
type Tables struct {
	Version int `yaml:"version" toml:"version" validate:"gte=1"`

	// Encodings maps a runtime type encoding to a canonical C primitive name.
	Encodings map[string]string `yaml:"encodings" toml:"encodings" validate:"required,min=1,dive,keys,required,endkeys,required"`

	VoidEncoding   string `yaml:"void_encoding" toml:"void_encoding" validate:"required"`
	ObjectEncoding string `yaml:"object_encoding" toml:"object_encoding" validate:"required"`
	RootClass      string `yaml:"root_class" toml:"root_class" validate:"required,goident"`
	ErrorClass     string `yaml:"error_class" toml:"error_class" validate:"required,goident"`

	Qualifiers     string `yaml:"qualifiers" toml:"qualifiers" validate:"required,alpha"`
	ConstQualifier string `yaml:"const_qualifier" toml:"const_qualifier" validate:"required,len=1"`
	ReceiverSuffix string `yaml:"receiver_suffix" toml:"receiver_suffix" validate:"required,printascii"`

	ConstructorSelector string `yaml:"constructor_selector" toml:"constructor_selector" validate:"required,goident"`
	ConstructorPrefix   string `yaml:"constructor_prefix" toml:"constructor_prefix" validate:"required,goident"`

	DeprecatedMarker string `yaml:"deprecated_marker" toml:"deprecated_marker" validate:"required"`

	DeniedTypes             []string `yaml:"denied_types" toml:"denied_types" validate:"dive,required"`
	DeniedMethods           []string `yaml:"denied_methods" toml:"denied_methods" validate:"dive,required"`
	DeprecatedEnumConstants []string `yaml:"deprecated_enum_constants" toml:"deprecated_enum_constants" validate:"dive,required"`
	ReservedIdentifiers     []string `yaml:"reserved_identifiers" toml:"reserved_identifiers" validate:"dive,goident"`

	HostTypes  map[string]string `yaml:"host_types" toml:"host_types" validate:"required,min=1,dive,keys,required,endkeys,required"`
	BoxedTypes []string          `yaml:"boxed_types" toml:"boxed_types" validate:"dive,required"`
	ShimTypes  map[string]string `yaml:"shim_types" toml:"shim_types" validate:"dive,keys,required,endkeys,required"`
}

// Default returns a fresh copy of the embedded default tables.
func Default() *Tables {
	t := &Tables{}
	if err := yaml.Unmarshal(defaultsYAML, t); err != nil {
		panic(fmt.Sprintf("tables: embedded defaults: %v", err))
	}
	return t
}

// Validate checks the tables for missing or malformed entries.
func (t *Tables) Validate() error {
	if err := objcgo.NewValidator().Struct(t); err != nil {
		return objcgo.FromValidation(err)
	}
	if _, ok := t.Encodings[t.VoidEncoding]; ok {
		return objcgo.Errorf(objcgo.CodeInvalidConfig, "void encoding %q also maps to a primitive", t.VoidEncoding)
	}
	return nil
}

// Encoding returns the primitive name for a runtime encoding.
func (t *Tables) Encoding(code string) (string, bool) {
	name, ok := t.Encodings[code]
	return name, ok
}

// IsDeniedType reports whether a type name has no safe flat representation.
func (t *Tables) IsDeniedType(name string) bool {
	return slices.Contains(t.DeniedTypes, name)
}

// IsDeniedMethod reports whether a fully qualified shim function name is on
// the method denylist.
func (t *Tables) IsDeniedMethod(qualified string) bool {
	return slices.Contains(t.DeniedMethods, qualified)
}

// IsDeprecatedEnumConstant reports whether an enum member is dropped.
func (t *Tables) IsDeprecatedEnumConstant(name string) bool {
	return slices.Contains(t.DeprecatedEnumConstants, name)
}

// Reserved returns the reserved identifier set.
func (t *Tables) Reserved() map[string]bool {
	m := make(map[string]bool, len(t.ReservedIdentifiers))
	for _, r := range t.ReservedIdentifiers {
		m[r] = true
	}
	return m
}

// KnownPrimitive reports whether a primitive name has a host mapping.
func (t *Tables) KnownPrimitive(name string) bool {
	_, ok := t.HostTypes[name]
	return ok
}

// HostType returns the Go spelling of a C type name. Unmapped names render as
// cgo references.
func (t *Tables) HostType(name string) string {
	if h, ok := t.HostTypes[name]; ok {
		return h
	}
	return "C." + name
}

// IsBoxed reports whether a Go type is returned through a boxing function.
func (t *Tables) IsBoxed(goType string) bool {
	return slices.Contains(t.BoxedTypes, goType)
}

// ShimType returns the spelling of a C type name in shim signatures.
func (t *Tables) ShimType(name string) string {
	if s, ok := t.ShimTypes[name]; ok {
		return s
	}
	return name
}
