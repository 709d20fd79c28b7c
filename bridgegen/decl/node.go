// Package decl defines the declaration tree consumed by the generator.
//
// The tree is produced by an external front end (a libclang walker) and is never
// mutated by the engine. Cursor is the JSON-backed implementation; any other
// implementation of Node works as well.
package decl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/broady/objcgo"
)

// Node is a read-only view of one declaration.
type Node interface {
	// Kind returns the node category.
	Kind() Kind

	// IsDefinition reports whether the node defines the entity rather than
	// merely mentioning it.
	IsDefinition() bool

	// Spelling returns the bare name of the entity.
	Spelling() string

	// DisplayName returns the display name. For methods this is the full
	// selector; for categories it is only the category suffix.
	DisplayName() string

	// USR returns the unified symbol resolution identifier.
	USR() string

	// Encoding returns the Objective-C runtime type encoding.
	Encoding() string

	// Children returns the child nodes in source order.
	Children() []Node
}

// Cursor is a Node decoded from the front end's JSON dump.
type Cursor struct {
	CursorKind Kind      `json:"kind"`
	Name       string    `json:"spelling"`
	Display    string    `json:"disp"`
	Symbol     string    `json:"usr"`
	Enc        string    `json:"enc"`
	Definition bool      `json:"is_definition"`
	Kids       []*Cursor `json:"children"`
}

func (c *Cursor) Kind() Kind         { return c.CursorKind }
func (c *Cursor) IsDefinition() bool { return c.Definition }
func (c *Cursor) Spelling() string   { return c.Name }
func (c *Cursor) USR() string        { return c.Symbol }
func (c *Cursor) Encoding() string   { return c.Enc }

// DisplayName falls back to the spelling when no display name was recorded.
func (c *Cursor) DisplayName() string {
	if c.Display == "" {
		return c.Name
	}
	return c.Display
}

// Children returns the child cursors as Nodes.
func (c *Cursor) Children() []Node {
	nodes := make([]Node, len(c.Kids))
	for i, k := range c.Kids {
		nodes[i] = k
	}
	return nodes
}

// New creates a defining Cursor whose spelling and display name are both name.
func New(kind Kind, name string) *Cursor {
	return &Cursor{CursorKind: kind, Name: name, Display: name, Definition: true}
}

// WithEncoding sets the type encoding and returns c.
func (c *Cursor) WithEncoding(enc string) *Cursor {
	c.Enc = enc
	return c
}

// WithUSR sets the USR and returns c.
func (c *Cursor) WithUSR(usr string) *Cursor {
	c.Symbol = usr
	return c
}

// WithDisplay sets the display name and returns c.
func (c *Cursor) WithDisplay(disp string) *Cursor {
	c.Display = disp
	return c
}

// Forward marks c as a forward mention and returns c.
func (c *Cursor) Forward() *Cursor {
	c.Definition = false
	return c
}

// Append adds children and returns c.
func (c *Cursor) Append(children ...*Cursor) *Cursor {
	c.Kids = append(c.Kids, children...)
	return c
}

// Decode reads a JSON cursor tree.
func Decode(r io.Reader) (*Cursor, error) {
	var root Cursor
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding declaration tree: %w", err)
	}
	return &root, nil
}

// ReadFile reads a JSON cursor tree from path.
func ReadFile(path string) (*Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening declaration tree: %w", err)
	}
	defer f.Close()

	root, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Filter returns the direct children of n with the given kind, in order.
func Filter(n Node, kind Kind) []Node {
	var out []Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the single direct child of n with the given kind, or nil when
// there is none. More than one match is malformed input.
func Find(n Node, kind Kind) (Node, error) {
	matches := Filter(n, kind)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, objcgo.Malformedf("%s %q has %d %s children, want at most one",
			n.Kind(), n.DisplayName(), len(matches), kind).
			WithDetail("usr", n.USR())
	}
}
