// Package naming derives identifiers from Objective-C selectors and property
// names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Camel joins the parts of a multi-part selector into one camel-case
// identifier: getRed:green:blue:alpha: becomes getRedGreenBlueAlpha.
// Empty parts are dropped.
func Camel(selector string) string {
	var b strings.Builder
	for _, part := range strings.Split(selector, ":") {
		if part == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// Exported returns the public form of Camel(selector).
func Exported(selector string) string {
	return upperFirst(Camel(selector))
}

// Unexported lowercases the first character of name.
func Unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// SetterSelector returns the setter selector of a property: value becomes
// setValue:.
func SetterSelector(property string) string {
	return "set" + upperFirst(property) + ":"
}

// ShimFunc returns the shim function name of a method: Class_camel for
// instance methods, Class__camel for class methods. The same name keys the
// method denylist.
func ShimFunc(class, selector string, classScoped bool) string {
	sep := "_"
	if classScoped {
		sep = "__"
	}
	return class + sep + Camel(selector)
}

// StaticFunc returns the wrapper function name for class methods and
// constructors: Class_lowerCamel.
func StaticFunc(class, selector string) string {
	return class + "_" + Unexported(Camel(selector))
}

// Escape appends an underscore to names found in reserved.
func Escape(name string, reserved map[string]bool) string {
	if reserved[name] {
		return name + "_"
	}
	return name
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
