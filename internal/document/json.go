package document

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FromJSON decodes a raw JSON document into a Value tree.
// Numbers keep the integer/decimal distinction of their source token: a
// token without a fraction or exponent part becomes an Integer, anything
// else becomes a Decimal.
func FromJSON(raw []byte) (Value, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &InvalidJSONError{}
	}
	return fromResult(gjson.ParseBytes(raw)), nil
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null{}
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.String:
		return String(r.String())
	case gjson.Number:
		if n, ok := integerToken(r.Raw); ok {
			return Integer(n)
		}
		return Decimal(r.Float())
	default:
		if r.IsArray() {
			items := r.Array()
			list := make(List, 0, len(items))
			for _, item := range items {
				list = append(list, fromResult(item))
			}
			return list
		}
		obj := make(Object)
		r.ForEach(func(key, value gjson.Result) bool {
			obj[key.String()] = fromResult(value)
			return true
		})
		return obj
	}
}

// integerToken reports whether a raw JSON number token denotes an integer
// that fits in int64. Out-of-range integer literals fall back to Decimal.
func integerToken(raw string) (int64, bool) {
	if strings.ContainsAny(raw, ".eE") {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
