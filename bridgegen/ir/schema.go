package ir

import (
	"errors"
	"fmt"
	"strings"
)

// Warning codes reported in Schema.Warnings.
const (
	WarnReturnRecovered    = "return_recovered"
	WarnOrphanCategory     = "orphan_category"
	WarnDeprecatedCategory = "deprecated_category"
	WarnCategoryDiscarded  = "category_members_discarded"
	WarnForwardDeclaration = "forward_declaration"
)

// Warning represents a non-fatal issue encountered while building the schema.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Class and Selector locate the warning, when applicable.
	Class    string `json:"class,omitempty"`
	Selector string `json:"selector,omitempty"`
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Code)
	if w.Class != "" {
		b.WriteString(" ")
		b.WriteString(w.Class)
		if w.Selector != "" {
			b.WriteString(" ")
			b.WriteString(w.Selector)
		}
	}
	b.WriteString(": ")
	b.WriteString(w.Message)
	return b.String()
}

// Schema is the complete output of one resolution pass.
type Schema struct {
	// Classes in declaration order, categories already merged.
	Classes []*ClassDescriptor

	Enums    []*EnumDescriptor
	Typedefs []*TypedefDescriptor

	// Undeclared lists, sorted, the classes referenced by some type but never
	// declared. Emitters synthesize pass-through wrappers for them.
	Undeclared []string

	// Warnings contains non-fatal issues.
	Warnings []Warning
}

// AddWarning appends a warning.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindClass looks up a class by name. Returns nil if not found.
func (s *Schema) FindClass(name string) *ClassDescriptor {
	for _, c := range s.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Rejected returns every rejected method, in class and declaration order.
func (s *Schema) Rejected() []*MethodDescriptor {
	var out []*MethodDescriptor
	for _, c := range s.Classes {
		for _, m := range c.Declarations() {
			if !m.Acceptable {
				out = append(out, m)
			}
		}
	}
	return out
}

// Stats summarizes a schema for logging.
type Stats struct {
	Classes    int
	Methods    int
	Accepted   int
	Rejected   int
	Undeclared int
}

// Stats counts the schema's contents.
func (s *Schema) Stats() Stats {
	st := Stats{Classes: len(s.Classes), Undeclared: len(s.Undeclared)}
	for _, c := range s.Classes {
		for _, m := range c.Declarations() {
			st.Methods++
			if m.Acceptable {
				st.Accepted++
			} else {
				st.Rejected++
			}
		}
	}
	return st
}

// Validate checks structural invariants of a finished schema.
// Returns all violations found (not just the first).
func (s *Schema) Validate() []error {
	var errs []error

	names := make(map[string]bool)
	for _, c := range s.Classes {
		if c.Name == "" {
			errs = append(errs, errors.New("class with empty name"))
			continue
		}
		if names[c.Name] {
			errs = append(errs, fmt.Errorf("duplicate class %s", c.Name))
		}
		names[c.Name] = true

		for _, m := range c.Declarations() {
			if m.Arity() != len(m.Params) {
				errs = append(errs, fmt.Errorf("%s %s: selector takes %d arguments, method has %d parameters",
					c.Name, m.Selector, m.Arity(), len(m.Params)))
			}
			if m.Return == nil {
				errs = append(errs, fmt.Errorf("%s %s: missing return type", c.Name, m.Selector))
			}
			for _, p := range m.Params {
				if IsVoid(p.Type) {
					errs = append(errs, fmt.Errorf("%s %s: parameter %s has void type", c.Name, m.Selector, p.Name))
				}
			}
			if !m.Acceptable && m.RejectReason == "" {
				errs = append(errs, fmt.Errorf("%s %s: rejected without a reason", c.Name, m.Selector))
			}
		}

		if c.Constructor != nil && c.HasConstructor() {
			errs = append(errs, fmt.Errorf("%s: synthesized constructor alongside a declared one", c.Name))
		}
	}

	for _, u := range s.Undeclared {
		if names[u] {
			errs = append(errs, fmt.Errorf("class %s is both declared and undeclared", u))
		}
	}

	return errs
}
