package golang

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/broady/objcgo/bridgegen/emit"
	"github.com/broady/objcgo/bridgegen/shim"
)

var runtimeTemplate = template.Must(template.New("runtime").Parse(`// Code generated by objcgo. DO NOT EDIT.

package {{.Package}}

/*
#include "{{.Header}}"
*/
import "C"

import "unsafe"

// Id is an untyped Objective-C object reference.
type Id unsafe.Pointer

func Id_(r unsafe.Pointer) Id {
	return Id(r)
}

// NSRect mirrors the Cocoa rectangle with Go floats.
type NSRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NSRect_(r C.NSRect) NSRect {
	return NSRect{float64(r.origin.x), float64(r.origin.y), float64(r.size.width), float64(r.size.height)}
}

// NSPoint mirrors the Cocoa point with Go floats.
type NSPoint struct {
	X float64
	Y float64
}

func NSPoint_(r C.NSPoint) NSPoint {
	return NSPoint{float64(r.x), float64(r.y)}
}

// String returns the object's description.
func (obj {{.Root}}) String() string {
	return C.GoString(C.{{.Description}}(obj.Self()))
}

// GetClassName returns the name of the object's runtime class.
func (obj {{.Root}}) GetClassName() string {
	return C.GoString(C.{{.ClassName}}(obj.Self()))
}
`))

type runtimeData struct {
	Package     string
	Header      string
	Root        string
	Description string
	ClassName   string
}

// Runtime renders the support file every wrapper depends on: the Id, NSRect
// and NSPoint types with their boxing functions, and the root class's
// String and GetClassName methods.
func Runtime(opts emit.Options) ([]byte, error) {
	var buf bytes.Buffer
	err := runtimeTemplate.Execute(&buf, runtimeData{
		Package:     opts.Package,
		Header:      opts.ShimHeader(),
		Root:        opts.Tables.RootClass,
		Description: shim.HelperDescription,
		ClassName:   shim.HelperClassName,
	})
	if err != nil {
		return nil, fmt.Errorf("executing runtime template: %w", err)
	}

	out, err := imports.Process(opts.Runtime(), buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", opts.Runtime(), err)
	}
	return out, nil
}
