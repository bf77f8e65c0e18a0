// Package validate decides whether a decoded document conforms to a
// compiled schema node tree, reporting the first violation found together
// with its breadcrumb path.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/bitshepherds/yamlschema/internal/document"
	"github.com/bitshepherds/yamlschema/internal/schema"
)

// Digit-range check only: 2021-02-30 is accepted as syntactically valid.
var dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// Validate checks a decoded document value against a compiled schema node.
// It returns nil on conformance, or a *PathError locating the first
// violation. The node tree is only read, never written, so a single tree
// may serve any number of concurrent Validate calls.
func Validate(node schema.Node, value document.Value) error {
	return check(node, value, Root())
}

func check(node schema.Node, value document.Value, path Path) error {
	// Null is only acceptable under a Nullable node, and a null under a
	// Nullable node needs no further checks.
	if _, isNull := value.(document.Null); isNull {
		if _, ok := node.(*schema.Nullable); ok {
			return nil
		}
		return fail(path, &NotNullableNullError{})
	}
	if n, ok := node.(*schema.Nullable); ok {
		return check(n.Inner, value, path)
	}

	switch n := node.(type) {
	case *schema.Object:
		if obj, ok := value.(document.Object); ok {
			return checkObject(n, obj, path)
		}
	case *schema.Map:
		if obj, ok := value.(document.Object); ok {
			return checkMap(n, obj, path)
		}
	case *schema.Integer:
		if num, ok := value.(document.Integer); ok {
			return checkInteger(n, int64(num), path)
		}
	case *schema.Decimal:
		if num, ok := value.(document.Decimal); ok {
			return checkDecimal(n, float64(num), path)
		}
	case *schema.String:
		if s, ok := value.(document.String); ok {
			return checkString(n, string(s), path)
		}
	case *schema.List:
		if list, ok := value.(document.List); ok {
			// Element paths are deliberately not indexed: a failure inside
			// a list reports the list's own path.
			for _, item := range list {
				if err := check(n.Elem, item, path); err != nil {
					return err
				}
			}
			return nil
		}
	case *schema.Date:
		if s, ok := value.(document.String); ok {
			return checkDate(string(s), path)
		}
	case *schema.Bool:
		if _, ok := value.(document.Bool); ok {
			return nil
		}
	}

	return fail(path, &TypeError{Expected: node.Tag(), Got: string(value.Kind())})
}

// checkObject fans the declared fields out to independent goroutines.
// Sibling checks share no mutable state: each gets its own path copy and
// only reads the node tree. All siblings run to completion; the results
// are then reduced in declaration order, so the reported failure is always
// the first declared field that failed.
func checkObject(node *schema.Object, obj document.Object, path Path) error {
	results := make([]error, len(node.Fields))
	var g errgroup.Group
	for i, field := range node.Fields {
		g.Go(func() error {
			value, ok := obj[field.Name]
			if !ok {
				results[i] = fail(path, &MissingKeyError{Key: field.Name})
				return nil
			}
			results[i] = check(field.Node, value, path.Push(field.Name))
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range results {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkMap validates every entry of the data object: the value against the
// map's value type, and the key (coerced from its string form) against the
// key type. Entries are visited in sorted key order so the first-failure
// choice is deterministic.
func checkMap(node *schema.Map, obj document.Object, path Path) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entryPath := path.Push(key)
		if err := check(node.Value, obj[key], entryPath); err != nil {
			return err
		}
		if err := checkMapKey(key, node.Key, entryPath); err != nil {
			return fail(entryPath, &GenericError{Message: err.Error()})
		}
	}
	return nil
}

// checkMapKey coerces a map key, always received as a string, to the
// declared key type and validates the result.
func checkMapKey(key string, want schema.Node, path Path) error {
	switch n := want.(type) {
	case *schema.String:
		return check(n, document.String(key), path)
	case *schema.Integer:
		parsed, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return &KeyCoercionError{Key: key, Target: "Integer"}
		}
		return check(n, document.Integer(parsed), path)
	case *schema.Bool:
		switch strings.ToLower(key) {
		case "true", "false", "1", "0":
			return nil
		}
		return &KeyCoercionError{Key: key, Target: "Boolean"}
	case *schema.Date:
		if !dateRegex.MatchString(key) {
			return &KeyCoercionError{Key: key, Target: "Date"}
		}
		return nil
	default:
		return &UnsupportedKeyTypeError{}
	}
}

func checkInteger(node *schema.Integer, number int64, path Path) error {
	if node.Minimum != nil && number < *node.Minimum {
		return fail(path, &MinimumError{Number: float64(number), Minimum: float64(*node.Minimum)})
	}
	if node.Maximum != nil && number > *node.Maximum {
		return fail(path, &MaximumError{Number: float64(number), Maximum: float64(*node.Maximum)})
	}
	return nil
}

func checkDecimal(node *schema.Decimal, number float64, path Path) error {
	if node.Minimum != nil && number < *node.Minimum {
		return fail(path, &MinimumError{Number: number, Minimum: *node.Minimum})
	}
	if node.Maximum != nil && number > *node.Maximum {
		return fail(path, &MaximumError{Number: number, Maximum: *node.Maximum})
	}
	return nil
}

func checkString(node *schema.String, str string, path Path) error {
	if node.Regex != nil && !node.Regex.MatchString(str) {
		return fail(path, &RegexError{Word: str, Regex: node.Pattern})
	}
	length := int64(utf8.RuneCountInString(str))
	if node.MinLength != nil && length < *node.MinLength {
		return fail(path, &MinimumStringError{String: str, Length: length, MinLength: *node.MinLength})
	}
	if node.MaxLength != nil && length > *node.MaxLength {
		return fail(path, &MaximumStringError{String: str, Length: length, MaxLength: *node.MaxLength})
	}
	return nil
}

func checkDate(str string, path Path) error {
	if !dateRegex.MatchString(str) {
		return fail(path, &GenericError{
			Message: fmt.Sprintf("`%s` can't be converted to a valid date [supported YYYY-MM-DD]", str),
		})
	}
	return nil
}

func fail(path Path, err error) error {
	return &PathError{Path: path.String(), Err: err}
}
