// Package schema compiles YAML schema definitions into immutable validator
// node trees. A compiled tree is read-only and safe to share across any
// number of validation calls.
package schema

import "regexp"

// Node is one compiled unit of a schema definition tree.
type Node interface {
	// Tag returns the DSL type tag the node was compiled from.
	Tag() string
}

// Field is a single required field of an Object node. Objects keep their
// fields in declaration order so that validation results are deterministic.
type Field struct {
	Name string
	Node Node
}

// Object requires every listed field to be present and valid. Fields not
// listed in the schema are ignored, not rejected.
type Object struct {
	Fields []Field
}

// Field returns the node declared for the given field name.
func (o *Object) Field(name string) (Node, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Node, true
		}
	}
	return nil, false
}

// String validates string values. Pattern holds the schema author's regex
// text; Regex is its precompiled, fully-anchored form. Length bounds count
// characters, not bytes.
type String struct {
	Pattern   string
	Regex     *regexp.Regexp
	MinLength *int64
	MaxLength *int64
}

// Integer validates integer values against optional inclusive bounds.
type Integer struct {
	Minimum *int64
	Maximum *int64
}

// Decimal validates decimal values against optional inclusive bounds.
type Decimal struct {
	Minimum *float64
	Maximum *float64
}

// List requires every element to match the same node.
type List struct {
	Elem Node
}

// Map validates arbitrarily-named fields: each value against Value, and
// each key (coerced from its string form) against Key.
type Map struct {
	Key   Node
	Value Node
}

type Bool struct{}

// Date accepts strings in YYYY-MM-DD form.
type Date struct{}

// Nullable permits the wrapped node's validation to be skipped when the
// data is null.
type Nullable struct {
	Inner Node
}

func (*Object) Tag() string  { return "Object" }
func (*String) Tag() string  { return "String" }
func (*Integer) Tag() string { return "Integer" }
func (*Decimal) Tag() string { return "Decimal" }
func (*List) Tag() string    { return "List" }
func (*Map) Tag() string     { return "Map" }
func (*Bool) Tag() string    { return "Bool" }
func (*Date) Tag() string    { return "Date" }

func (n *Nullable) Tag() string { return n.Inner.Tag() + "?" }
