package schema

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RootWord is the reserved top-level key of a schema definition.
const RootWord = "Root"

// Reserved per-node property keys of the definition language.
const (
	typeKey      = "+type"
	regexKey     = "+regex"
	minKey       = "+min"
	maxKey       = "+max"
	valueTypeKey = "+ValueType"
	keyTypeKey   = "+KeyType"
)

// The length bounds of a String node accept three spellings each, but a
// node may only use one of them.
var (
	maxLengthAliases = []string{"+MaxLength", "+maxLength", "+max_length"}
	minLengthAliases = []string{"+MinLength", "+minLength", "+min_length"}
)

// Compile parses a YAML schema definition into a validator node tree.
// The definition must be a mapping whose top level contains RootWord.
func Compile(definition []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(definition, &doc); err != nil {
		return nil, &InvalidDefinitionError{Wrapped: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &NotAMappingError{}
	}
	top := resolved(doc.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, &NotAMappingError{}
	}
	root := mappingValue(top, RootWord)
	if root == nil {
		return nil, &MissingRootError{}
	}
	return compileNode(root, RootWord)
}

// compileNode compiles one definition node. The path parameter is the
// breadcrumb used in compile diagnostics only.
func compileNode(n *yaml.Node, path string) (Node, error) {
	n = resolved(n)

	tag, err := typeTag(n, path)
	if err != nil {
		return nil, err
	}

	nullable := strings.HasSuffix(tag, "?")
	base := strings.TrimSuffix(tag, "?")

	if n.Kind == yaml.ScalarNode && !bareTag(base) {
		if knownTag(base) {
			return nil, &BareTypeError{TypeTag: base, Path: path}
		}
		return nil, &UnsupportedTypeError{TypeTag: base, Path: path}
	}

	var node Node
	switch {
	case base == "Object":
		node, err = compileObject(n, path)
	case base == "String":
		node, err = compileString(n, path)
	case base == "Integer":
		node = &Integer{Minimum: intAttr(n, minKey), Maximum: intAttr(n, maxKey)}
	case base == "Decimal" || base == "Float":
		node = &Decimal{Minimum: floatAttr(n, minKey), Maximum: floatAttr(n, maxKey)}
	case base == "List":
		node, err = compileList(n, path)
	case base == "Map":
		node, err = compileMap(n, path)
	case strings.EqualFold(base, "Bool") || strings.EqualFold(base, "Boolean"):
		node = &Bool{}
	case base == "Date":
		node = &Date{}
	default:
		return nil, &UnsupportedTypeError{TypeTag: base, Path: path}
	}
	if err != nil {
		return nil, err
	}

	if nullable {
		node = &Nullable{Inner: node}
	}
	return node, nil
}

func compileObject(n *yaml.Node, path string) (Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &BareTypeError{TypeTag: "Object", Path: path}
	}
	obj := &Object{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		if name == typeKey {
			continue
		}
		child, err := compileNode(n.Content[i+1], path+" -> "+name)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, Field{Name: name, Node: child})
	}
	return obj, nil
}

func compileString(n *yaml.Node, path string) (Node, error) {
	s := &String{}
	if r := mappingValue(n, regexKey); r != nil && r.Kind == yaml.ScalarNode {
		// Anchored so that validation requires the whole string to match.
		re, err := regexp.Compile(`\A(?:` + r.Value + `)\z`)
		if err != nil {
			return nil, &InvalidRegexError{Pattern: r.Value, Path: path, Wrapped: err}
		}
		s.Pattern = r.Value
		s.Regex = re
	}
	maxLength, err := lengthAttr(n, maxLengthAliases, path)
	if err != nil {
		return nil, err
	}
	minLength, err := lengthAttr(n, minLengthAliases, path)
	if err != nil {
		return nil, err
	}
	s.MaxLength = maxLength
	s.MinLength = minLength
	return s, nil
}

func compileList(n *yaml.Node, path string) (Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &BareTypeError{TypeTag: "List", Path: path}
	}
	vt := mappingValue(n, valueTypeKey)
	if vt == nil {
		return nil, &MissingValueTypeError{Path: path}
	}
	elem, err := compileNode(vt, path+" -> "+valueTypeKey)
	if err != nil {
		return nil, err
	}
	return &List{Elem: elem}, nil
}

func compileMap(n *yaml.Node, path string) (Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &BareTypeError{TypeTag: "Map", Path: path}
	}
	kt := mappingValue(n, keyTypeKey)
	vt := mappingValue(n, valueTypeKey)
	if kt == nil || vt == nil {
		return nil, &MissingKeyValueTypeError{Path: path}
	}
	key, err := compileNode(kt, path+" -> "+keyTypeKey)
	if err != nil {
		return nil, err
	}
	value, err := compileNode(vt, path+" -> "+valueTypeKey)
	if err != nil {
		return nil, err
	}
	return &Map{Key: key, Value: value}, nil
}

// bareTag reports whether a type may be written in the abbreviated scalar
// form. The aliases (Float, Boolean) and the parameterised types need the
// full +type mapping.
func bareTag(tag string) bool {
	switch tag {
	case "String", "Integer", "Decimal", "Date", "Bool":
		return true
	}
	return false
}

// knownTag reports whether a tag is accepted anywhere in the language.
func knownTag(tag string) bool {
	switch tag {
	case "Object", "List", "Map", "Float":
		return true
	}
	return strings.EqualFold(tag, "Bool") || strings.EqualFold(tag, "Boolean")
}

// typeTag reads the node's type tag, either from the +type property
// (canonical form) or from the node itself when it is a bare scalar string
// (abbreviated form).
func typeTag(n *yaml.Node, path string) (string, error) {
	if t := mappingValue(n, typeKey); t != nil && t.Kind == yaml.ScalarNode {
		return t.Value, nil
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		return n.Value, nil
	}
	return "", &MissingTypeError{Path: path}
}

// lengthAttr reads a length bound allowing exactly one of its alias
// spellings to be present.
func lengthAttr(n *yaml.Node, aliases []string, path string) (*int64, error) {
	var found []string
	for _, a := range aliases {
		if mappingValue(n, a) != nil {
			found = append(found, a)
		}
	}
	if len(found) > 1 {
		return nil, &ConflictingAliasesError{Aliases: found, Path: path}
	}
	if len(found) == 0 {
		return nil, nil
	}
	return intValue(mappingValue(n, found[0])), nil
}

func intAttr(n *yaml.Node, key string) *int64 {
	return intValue(mappingValue(n, key))
}

func floatAttr(n *yaml.Node, key string) *float64 {
	v := mappingValue(n, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return nil
	}
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return nil
	}
	return &f
}

func intValue(v *yaml.Node) *int64 {
	if v == nil || v.Kind != yaml.ScalarNode {
		return nil
	}
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// mappingValue returns the value node stored under key, or nil when n is
// not a mapping or has no such key.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolved(n.Content[i+1])
		}
	}
	return nil
}

func resolved(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
