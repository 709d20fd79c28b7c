package ir

import "encoding/json"

// JSON serialization support for IR types.
// Type descriptors include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for VoidDescriptor.
func (d *VoidDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{
		Kind: "void",
	})
}

// MarshalJSON implements json.Marshaler for PrimitiveDescriptor.
func (d *PrimitiveDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Name  string `json:"name"`
		Const bool   `json:"const,omitempty"`
	}{
		Kind:  "primitive",
		Name:  d.Name,
		Const: d.Const,
	})
}

// MarshalJSON implements json.Marshaler for ObjectDescriptor.
func (d *ObjectDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Class string `json:"class"`
	}{
		Kind:  "object",
		Class: d.Class,
	})
}

// MarshalJSON implements json.Marshaler for InvalidDescriptor.
func (d *InvalidDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string `json:"kind"`
		Reason string `json:"reason,omitempty"`
	}{
		Kind:   "invalid",
		Reason: d.Reason,
	})
}

// MarshalJSON implements json.Marshaler for MethodDescriptor.
// The property back-link is flattened to its name to keep the output acyclic.
func (m *MethodDescriptor) MarshalJSON() ([]byte, error) {
	var prop string
	if m.Property != nil {
		prop = m.Property.Name
	}
	return json.Marshal(&struct {
		Selector        string                 `json:"selector"`
		Params          []*ParameterDescriptor `json:"params,omitempty"`
		Return          TypeDescriptor         `json:"return"`
		ClassScoped     bool                   `json:"classScoped,omitempty"`
		Constructor     bool                   `json:"constructor,omitempty"`
		Getter          bool                   `json:"getter,omitempty"`
		Setter          bool                   `json:"setter,omitempty"`
		Synthesized     bool                   `json:"synthesized,omitempty"`
		ReturnRecovered bool                   `json:"returnRecovered,omitempty"`
		Property        string                 `json:"property,omitempty"`
		Acceptable      bool                   `json:"acceptable"`
		RejectReason    string                 `json:"rejectReason,omitempty"`
	}{
		Selector:        m.Selector,
		Params:          m.Params,
		Return:          m.Return,
		ClassScoped:     m.ClassScoped,
		Constructor:     m.Constructor,
		Getter:          m.Getter,
		Setter:          m.Setter,
		Synthesized:     m.Synthesized,
		ReturnRecovered: m.ReturnRecovered,
		Property:        prop,
		Acceptable:      m.Acceptable,
		RejectReason:    m.RejectReason,
	})
}

// MarshalJSON implements json.Marshaler for ParameterDescriptor.
func (p *ParameterDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name string         `json:"name"`
		Type TypeDescriptor `json:"type"`
	}{
		Name: p.Name,
		Type: p.Type,
	})
}

// MarshalJSON implements json.Marshaler for PropertyDescriptor.
func (p *PropertyDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name string         `json:"name"`
		Type TypeDescriptor `json:"type"`
	}{
		Name: p.Name,
		Type: p.Type,
	})
}

// MarshalJSON implements json.Marshaler for ClassDescriptor.
func (c *ClassDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name         string                `json:"name"`
		Super        string                `json:"super,omitempty"`
		Properties   []*PropertyDescriptor `json:"properties,omitempty"`
		Declarations []*MethodDescriptor   `json:"declarations"`
		Categories   []string              `json:"categories,omitempty"`
		Acceptable   bool                  `json:"acceptable"`
		RejectReason string                `json:"rejectReason,omitempty"`
	}{
		Name:         c.Name,
		Super:        c.Super,
		Properties:   c.Properties,
		Declarations: c.Declarations(),
		Categories:   c.Categories,
		Acceptable:   c.Acceptable,
		RejectReason: c.RejectReason,
	})
}

// MarshalJSON implements json.Marshaler for TypedefDescriptor.
func (t *TypedefDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name   string         `json:"name"`
		Dest   TypeDescriptor `json:"dest"`
		Opaque bool           `json:"opaque,omitempty"`
	}{
		Name:   t.Name,
		Dest:   t.Dest,
		Opaque: t.Opaque,
	})
}

// MarshalJSON implements json.Marshaler for EnumDescriptor.
func (e *EnumDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name      string   `json:"name,omitempty"`
		Constants []string `json:"constants"`
	}{
		Name:      e.Name,
		Constants: e.Constants,
	})
}

// MarshalJSON implements json.Marshaler for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Classes    []*ClassDescriptor   `json:"classes"`
		Enums      []*EnumDescriptor    `json:"enums,omitempty"`
		Typedefs   []*TypedefDescriptor `json:"typedefs,omitempty"`
		Undeclared []string             `json:"undeclared,omitempty"`
		Warnings   []Warning            `json:"warnings,omitempty"`
	}{
		Classes:    s.Classes,
		Enums:      s.Enums,
		Typedefs:   s.Typedefs,
		Undeclared: s.Undeclared,
		Warnings:   s.Warnings,
	})
}
