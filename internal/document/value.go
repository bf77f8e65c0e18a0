// Package document holds the decoded runtime form of the data being checked.
// A Value tree is built once per validation run and never mutated afterwards.
package document

// Kind identifies which variant a Value is.
type Kind string

const (
	KindObject  Kind = "Object"
	KindList    Kind = "List"
	KindString  Kind = "String"
	KindInteger Kind = "Integer"
	KindDecimal Kind = "Decimal"
	KindBool    Kind = "Bool"
	KindNull    Kind = "Null"
)

// Value is one node of a decoded document tree.
type Value interface {
	Kind() Kind
}

// Object maps field names to values. Field names are unique; insertion
// order carries no meaning.
type Object map[string]Value

// List is an ordered sequence of values.
type List []Value

type String string

// Integer holds numbers whose JSON token has no fraction or exponent part.
type Integer int64

type Decimal float64

type Bool bool

type Null struct{}

func (Object) Kind() Kind  { return KindObject }
func (List) Kind() Kind    { return KindList }
func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Decimal) Kind() Kind { return KindDecimal }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
