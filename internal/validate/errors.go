package validate

import (
	"fmt"
)

// PathError locates a validation failure within the document.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v in [%s]", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// TypeError reports a value whose kind does not match its schema node.
type TypeError struct {
	Expected string // the node's type tag
	Got      string // the value's kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("mismatched types: expected `%s`, got `%s`", e.Expected, e.Got)
}

type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key `%s` is required but missing", e.Key)
}

type RegexError struct {
	Word  string
	Regex string
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("word `%s` is not following the `%s` regex", e.Word, e.Regex)
}

type MinimumError struct {
	Number  float64
	Minimum float64
}

func (e *MinimumError) Error() string {
	return fmt.Sprintf("`%v` is under the minimum of `%v`", e.Number, e.Minimum)
}

type MaximumError struct {
	Number  float64
	Maximum float64
}

func (e *MaximumError) Error() string {
	return fmt.Sprintf("`%v` is above the maximum of `%v`", e.Number, e.Maximum)
}

type MinimumStringError struct {
	String    string
	Length    int64
	MinLength int64
}

func (e *MinimumStringError) Error() string {
	return fmt.Sprintf("`%s` is %d characters long, under the minimum length of %d",
		e.String, e.Length, e.MinLength)
}

type MaximumStringError struct {
	String    string
	Length    int64
	MaxLength int64
}

func (e *MaximumStringError) Error() string {
	return fmt.Sprintf("`%s` is %d characters long, above the maximum length of %d",
		e.String, e.Length, e.MaxLength)
}

type NotNullableNullError struct{}

func (e *NotNullableNullError) Error() string {
	return "field is null but its schema is not nullable"
}

// GenericError carries date-format and map key-coercion failures.
type GenericError struct {
	Message string
}

func (e *GenericError) Error() string {
	return e.Message
}

// KeyCoercionError reports a map key string that cannot be converted to
// the declared key type.
type KeyCoercionError struct {
	Key    string
	Target string
}

func (e *KeyCoercionError) Error() string {
	article := "a"
	if e.Target == "Integer" {
		article = "an"
	}
	return fmt.Sprintf("The Key `%s` can't be converted to %s %s", e.Key, article, e.Target)
}

type UnsupportedKeyTypeError struct{}

func (e *UnsupportedKeyTypeError) Error() string {
	return "unsupported Map key type [supported: String, Integer, Bool, Date]"
}
