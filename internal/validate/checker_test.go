package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitshepherds/yamlschema/internal/document"
	"github.com/bitshepherds/yamlschema/internal/schema"
)

func compile(t *testing.T, definition string) schema.Node {
	t.Helper()
	node, err := schema.Compile([]byte(definition))
	require.NoError(t, err)
	return node
}

func decode(t *testing.T, raw string) document.Value {
	t.Helper()
	value, err := document.FromJSON([]byte(raw))
	require.NoError(t, err)
	return value
}

func TestValidateConformingDocument(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  age:
    +type: Integer
  children:
    +type: Integer
  name:
    +type: String
    +regex: "[A-Z][a-z]+"
  vehicles:
    +type: Object
    list:
      +type: List
      +ValueType:
        +type: Object
        name:
          +type: String
        maker:
          +type: String
        year:
          +type: Integer
`)
	data := decode(t, `{
	  "age": 25,
	  "children": 5,
	  "name": "Dilec",
	  "vehicles": {
	    "list": [
	      {"name": "model3", "maker": "Tesla", "year": 2018},
	      {"name": "Raptor", "maker": "Ford", "year": 2018}
	    ]
	  }
	}`)

	assert.NoError(t, Validate(node, data))
}

func TestValidateMinimum(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  age:
    +type: Integer
    +min: 20
`)

	err := Validate(node, decode(t, `{"age": 18}`))
	require.Error(t, err)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "ROOT -> age", pathErr.Path)

	var minErr *MinimumError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, &MinimumError{Number: 18, Minimum: 20}, minErr)

	assert.NoError(t, Validate(node, decode(t, `{"age": 20}`)), "bound is inclusive")
}

func TestValidateNumericBoundsInclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		definition string
		data       string
		wantErr    any
	}{
		{
			name:       "Integer at minimum passes",
			definition: "Root:\n  +type: Integer\n  +min: 10\n",
			data:       `10`,
		},
		{
			name:       "Integer below minimum fails",
			definition: "Root:\n  +type: Integer\n  +min: 10\n",
			data:       `9`,
			wantErr:    new(*MinimumError),
		},
		{
			name:       "Integer at maximum passes",
			definition: "Root:\n  +type: Integer\n  +max: 10\n",
			data:       `10`,
		},
		{
			name:       "Integer above maximum fails",
			definition: "Root:\n  +type: Integer\n  +max: 10\n",
			data:       `11`,
			wantErr:    new(*MaximumError),
		},
		{
			name:       "Decimal at minimum passes",
			definition: "Root:\n  +type: Decimal\n  +min: 0.5\n",
			data:       `0.5`,
		},
		{
			name:       "Decimal below minimum fails",
			definition: "Root:\n  +type: Decimal\n  +min: 0.5\n",
			data:       `0.4`,
			wantErr:    new(*MinimumError),
		},
		{
			name:       "Decimal above maximum fails",
			definition: "Root:\n  +type: Decimal\n  +max: 2.5\n",
			data:       `2.6`,
			wantErr:    new(*MaximumError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(compile(t, tt.definition), decode(t, tt.data))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRegex(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  name:
    +type: String
    +regex: "^[A-Z][a-z]+"
`)

	err := Validate(node, decode(t, `{"name": "bob"}`))
	require.Error(t, err)

	var regexErr *RegexError
	require.ErrorAs(t, err, &regexErr)
	assert.Equal(t, "bob", regexErr.Word)
	assert.Equal(t, "^[A-Z][a-z]+", regexErr.Regex)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "ROOT -> name", pathErr.Path)

	assert.NoError(t, Validate(node, decode(t, `{"name": "Bob"}`)))
}

// The whole string has to match the pattern, not just a substring of it.
func TestValidateRegexFullMatch(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: String
  +regex: "[a-z]+"
`)

	assert.NoError(t, Validate(node, decode(t, `"abc"`)))

	err := Validate(node, decode(t, `"abc1"`))
	var regexErr *RegexError
	require.ErrorAs(t, err, &regexErr)
}

func TestValidateStringLengths(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: String
  +MinLength: 3
  +MaxLength: 5
`)

	tests := []struct {
		name    string
		data    string
		wantErr any
	}{
		{name: "Within bounds", data: `"abcd"`},
		{name: "At minimum", data: `"abc"`},
		{name: "At maximum", data: `"abcde"`},
		{name: "Too short", data: `"ab"`, wantErr: new(*MinimumStringError)},
		{name: "Too long", data: `"abcdef"`, wantErr: new(*MaximumStringError)},
		{name: "Length counts characters not bytes", data: `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(node, decode(t, tt.data))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.wantErr)
		})
	}
}

func TestValidateStringCheckOrder(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: String
  +regex: "[a-z]+"
  +MinLength: 5
`)

	// "ab1" violates both the pattern and the minimum length; the pattern
	// is checked first.
	err := Validate(node, decode(t, `"ab1"`))
	var regexErr *RegexError
	require.ErrorAs(t, err, &regexErr)
}

func TestValidateTypeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		definition   string
		data         string
		wantExpected string
		wantGot      string
	}{
		{
			name:         "String for integer",
			definition:   "Root: Integer\n",
			data:         `"2018"`,
			wantExpected: "Integer",
			wantGot:      "String",
		},
		{
			name:         "Decimal for integer",
			definition:   "Root: Integer\n",
			data:         `20.18`,
			wantExpected: "Integer",
			wantGot:      "Decimal",
		},
		{
			name:         "Integer for string",
			definition:   "Root: String\n",
			data:         `20`,
			wantExpected: "String",
			wantGot:      "Integer",
		},
		{
			name:         "List for object",
			definition:   "Root:\n  +type: Object\n  a: Integer\n",
			data:         `[1, 2]`,
			wantExpected: "Object",
			wantGot:      "List",
		},
		{
			name:         "Integer for bool",
			definition:   "Root: Bool\n",
			data:         `1`,
			wantExpected: "Bool",
			wantGot:      "Integer",
		},
		{
			name:         "Integer for date",
			definition:   "Root: Date\n",
			data:         `20201015`,
			wantExpected: "Date",
			wantGot:      "Integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(compile(t, tt.definition), decode(t, tt.data))
			require.Error(t, err)

			var typeErr *TypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tt.wantExpected, typeErr.Expected)
			assert.Equal(t, tt.wantGot, typeErr.Got)
		})
	}
}

func TestValidateMissingKey(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  students:
    +type: List
    +ValueType:
      +type: Object
      surname:
        +type: String
      year:
        +type: Integer
`)
	data := decode(t, `{
	  "students": [
	    {"surname": "Bob", "year": 2020},
	    {"surname": "Ann", "grade": "A"}
	  ]
	}`)

	err := Validate(node, data)
	require.Error(t, err)

	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "year", missing.Key)

	// List element paths are not indexed: the failure reports the path of
	// the object owning the field, which is the list's own path.
	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "ROOT -> students", pathErr.Path)
}

// Unlisted fields in the data are ignored, not rejected.
func TestValidateExtraFieldsIgnored(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  name: String
`)
	assert.NoError(t, Validate(node, decode(t, `{"name": "Ann", "extra": 42}`)))
}

// When several declared fields fail at once, the first declared failing
// field wins, regardless of goroutine scheduling.
func TestValidateFirstDeclaredFailureWins(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  alpha: Integer
  beta: Integer
  gamma: Integer
`)
	data := decode(t, `{"alpha": "x", "beta": "y", "gamma": "z"}`)

	for range 50 {
		err := Validate(node, data)
		require.Error(t, err)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "ROOT -> alpha", pathErr.Path)
	}
}

func TestValidateNullable(t *testing.T) {
	t.Parallel()

	nullable := compile(t, "Root: Integer?\n")
	plain := compile(t, "Root: Integer\n")

	t.Run("Null under nullable succeeds", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Validate(nullable, decode(t, `null`)))
	})

	t.Run("Null under plain node fails", func(t *testing.T) {
		t.Parallel()
		err := Validate(plain, decode(t, `null`))
		var nullErr *NotNullableNullError
		require.ErrorAs(t, err, &nullErr)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "ROOT", pathErr.Path)
	})

	t.Run("Non-null under nullable checks the inner node", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Validate(nullable, decode(t, `7`)))

		err := Validate(nullable, decode(t, `"seven"`))
		var typeErr *TypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("Nested null field", func(t *testing.T) {
		t.Parallel()
		node := compile(t, "Root:\n  +type: Object\n  nick: String?\n  name: String\n")
		assert.NoError(t, Validate(node, decode(t, `{"nick": null, "name": "Ann"}`)))

		err := Validate(node, decode(t, `{"nick": null, "name": null}`))
		var nullErr *NotNullableNullError
		require.ErrorAs(t, err, &nullErr)
		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "ROOT -> name", pathErr.Path)
	})
}

func TestValidateDate(t *testing.T) {
	t.Parallel()

	node := compile(t, "Root: Date\n")

	tests := []struct {
		name  string
		data  string
		valid bool
	}{
		{name: "Valid date", data: `"2020-10-15"`, valid: true},
		{name: "First day of month", data: `"2020-01-01"`, valid: true},
		{name: "Digit ranges only, no calendar check", data: `"2021-02-30"`, valid: true},
		{name: "Slash separators", data: `"2020/10/15"`, valid: false},
		{name: "Month out of range", data: `"2020-13-01"`, valid: false},
		{name: "Day out of range", data: `"2020-12-32"`, valid: false},
		{name: "Zero month", data: `"2020-00-10"`, valid: false},
		{name: "Missing leading zeros", data: `"2020-1-5"`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(node, decode(t, tt.data))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var generic *GenericError
			require.ErrorAs(t, err, &generic)
			assert.Contains(t, generic.Message, "can't be converted to a valid date")
		})
	}
}

func TestValidateMap(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: String
  +ValueType:
    +type: Object
    name:
      +type: String
    age:
      +type: Integer
`)

	assert.NoError(t, Validate(node, decode(t, `{
	  "NY": {"name": "casey", "age": 48},
	  "LA": {"name": "ann", "age": 30}
	}`)))

	err := Validate(node, decode(t, `{"NY": {"name": "casey"}}`))
	require.Error(t, err)
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "age", missing.Key)
}

func TestValidateMapKeyCoercion(t *testing.T) {
	t.Parallel()

	t.Run("Date keys", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: Date
  +ValueType: String
`)
		assert.NoError(t, Validate(node, decode(t, `{"2020-10-15": "x"}`)))

		err := Validate(node, decode(t, `{"2020/10/15": "x"}`))
		require.Error(t, err)
		var generic *GenericError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "The Key `2020/10/15` can't be converted to a Date", generic.Message)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "ROOT -> 2020/10/15", pathErr.Path)
	})

	t.Run("Integer keys round-trip through the bounds", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: Integer
  +ValueType: String
`)
		assert.NoError(t, Validate(node, decode(t, `{"15": "x", "-7": "y"}`)))

		err := Validate(node, decode(t, `{"abc": "x"}`))
		require.Error(t, err)
		var generic *GenericError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "The Key `abc` can't be converted to an Integer", generic.Message)
	})

	t.Run("Integer key violating the bounds", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: Integer
    +min: 10
  +ValueType: String
`)
		err := Validate(node, decode(t, `{"5": "x"}`))
		require.Error(t, err)
		var generic *GenericError
		require.ErrorAs(t, err, &generic)
		assert.Contains(t, generic.Message, "under the minimum")
	})

	t.Run("Bool keys", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: Bool
  +ValueType: String
`)
		assert.NoError(t, Validate(node, decode(t, `{"true": "a", "False": "b", "1": "c", "0": "d"}`)))

		err := Validate(node, decode(t, `{"maybe": "a"}`))
		require.Error(t, err)
		var generic *GenericError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "The Key `maybe` can't be converted to a Boolean", generic.Message)
	})

	t.Run("Unsupported key type", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: List
    +ValueType: String
  +ValueType: String
`)
		err := Validate(node, decode(t, `{"a": "x"}`))
		require.Error(t, err)
		var generic *GenericError
		require.ErrorAs(t, err, &generic)
		assert.Contains(t, generic.Message, "unsupported Map key type")
	})

	t.Run("Value failure wins over key failure", func(t *testing.T) {
		t.Parallel()
		node := compile(t, `
Root:
  +type: Map
  +KeyType:
    +type: Integer
  +ValueType: Integer
`)
		err := Validate(node, decode(t, `{"abc": "not a number"}`))
		require.Error(t, err)
		var typeErr *TypeError
		require.ErrorAs(t, err, &typeErr, "the value's type error is reported, not the key coercion")
	})
}

func TestValidateAbbreviatedSchema(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  name: String
  age: Integer
  birth: Date
  height: Decimal
  male: Bool
`)
	data := decode(t, `{
	  "name": "Dilec",
	  "birth": "2022-04-01",
	  "age": 21,
	  "height": 1.75,
	  "male": true
	}`)

	assert.NoError(t, Validate(node, data))
}

// Repeated validation of the same pair always returns the same outcome.
func TestValidateDeterministic(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  a:
    +type: Integer
    +min: 10
`)
	data := decode(t, `{"a": 5}`)

	first := Validate(node, data)
	require.Error(t, first)
	for range 20 {
		err := Validate(node, data)
		require.Error(t, err)
		assert.Equal(t, first.Error(), err.Error())
	}
}

func TestValidateDeepPath(t *testing.T) {
	t.Parallel()

	node := compile(t, `
Root:
  +type: Object
  vehicles:
    +type: Object
    list:
      +type: List
      +ValueType:
        +type: Object
        year: Integer
`)
	data := decode(t, `{"vehicles": {"list": [{"year": "old"}]}}`)

	err := Validate(node, data)
	require.Error(t, err)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "ROOT -> vehicles -> list -> year", pathErr.Path)
}

func TestPathErrorMessage(t *testing.T) {
	t.Parallel()

	err := &PathError{Path: "ROOT -> age", Err: &MinimumError{Number: 18, Minimum: 20}}
	assert.Equal(t, "`18` is under the minimum of `20` in [ROOT -> age]", err.Error())
	assert.ErrorIs(t, err, err.Err, "PathError unwraps to its cause")
}

func TestPathPushDoesNotShareStorage(t *testing.T) {
	t.Parallel()

	base := Root().Push("a")
	left := base.Push("left")
	right := base.Push("right")

	assert.Equal(t, "ROOT -> a -> left", left.String())
	assert.Equal(t, "ROOT -> a -> right", right.String())
	assert.Equal(t, "ROOT -> a", base.String())
}
