package schema

import (
	"fmt"
	"strings"
)

type InvalidDefinitionError struct {
	Wrapped error
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("definition is not a valid YAML document: %v", e.Wrapped)
}

type NotAMappingError struct{}

func (e *NotAMappingError) Error() string {
	return "definition must start with a YAML mapping"
}

type MissingRootError struct{}

func (e *MissingRootError) Error() string {
	return fmt.Sprintf("missing root word `%s` from definition", RootWord)
}

type MissingTypeError struct {
	Path string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("type definition missing for %s", e.Path)
}

type UnsupportedTypeError struct {
	TypeTag string
	Path    string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("`%s` is an unsupported type [ %s ]", e.TypeTag, e.Path)
}

// BareTypeError reports a parameterised type written in the abbreviated
// scalar form, which only parameterless types support.
type BareTypeError struct {
	TypeTag string
	Path    string
}

func (e *BareTypeError) Error() string {
	return fmt.Sprintf("`%s` can't be used without the `+type` property [ %s ]", e.TypeTag, e.Path)
}

type MissingValueTypeError struct {
	Path string
}

func (e *MissingValueTypeError) Error() string {
	return fmt.Sprintf("List defined without the required `+ValueType` property [ %s ]", e.Path)
}

type MissingKeyValueTypeError struct {
	Path string
}

func (e *MissingKeyValueTypeError) Error() string {
	return fmt.Sprintf("Map MUST have the `+KeyType` and `+ValueType` fields [ %s ]", e.Path)
}

// ConflictingAliasesError reports that more than one spelling of the same
// length bound was supplied on a String node.
type ConflictingAliasesError struct {
	Aliases []string
	Path    string
}

func (e *ConflictingAliasesError) Error() string {
	return fmt.Sprintf("multiple fields indicating the same length bound of a String have been passed: (%s) [ %s ]",
		strings.Join(e.Aliases, ","), e.Path)
}

type InvalidRegexError struct {
	Pattern string
	Path    string
	Wrapped error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("`%s` is not a valid regex [ %s ]: %v", e.Pattern, e.Path, e.Wrapped)
}
