package mintsoft

import (
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ResponseObject wraps one decoded JSON value (object, array, or scalar)
// behind a normalized view: every object key at every nesting level is
// converted to lower_snake_case, nested objects become nested
// ResponseObjects, and array elements are wrapped element-wise. The exact
// input is retained alongside the normalized view and is always available
// via [ResponseObject.Original].
//
// Only keys are ever renamed; values pass through untouched on both views.
type ResponseObject struct {
	fields   map[string]any // normalized view when the input is an object
	value    any            // normalized wrapping when the input is not an object
	original any
}

// NewResponseObject wraps a decoded JSON value.
func NewResponseObject(v any) *ResponseObject {
	ro := &ResponseObject{original: deepCopy(v)}

	if m, ok := v.(map[string]any); ok {
		ro.fields = normalizeMap(m)
	} else {
		ro.value = wrapValue(v)
	}

	return ro
}

// Original returns the exact value the object was constructed from: same
// keys, same casing, same nesting. The retained copy is isolated from both
// the caller's input and the returned value, so mutations never leak in.
func (ro *ResponseObject) Original() any {
	return deepCopy(ro.original)
}

// ToHash converts the normalized view back into plain nested
// maps/slices/scalars, keyed by the normalized (underscore) names.
func (ro *ResponseObject) ToHash() any {
	if ro.fields != nil {
		return unwrapMap(ro.fields)
	}

	return unwrapValue(ro.value)
}

// Get returns the normalized field's value, or nil when the field is absent
// or the wrapped value is not an object. Nested objects are returned as
// *ResponseObject and arrays as []any of wrapped elements.
func (ro *ResponseObject) Get(key string) any {
	if ro.fields == nil {
		return nil
	}

	return ro.fields[key]
}

// Has reports whether the normalized field is present.
func (ro *ResponseObject) Has(key string) bool {
	_, ok := ro.fields[key]
	return ok
}

// Keys returns the normalized field names in sorted order.
func (ro *ResponseObject) Keys() []string {
	keys := make([]string, 0, len(ro.fields))
	for k := range ro.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// String returns the field as a string, or "" when absent or not a string.
func (ro *ResponseObject) String(key string) string {
	s, _ := ro.Get(key).(string)
	return s
}

// Int returns the field coerced to an int, or 0 when absent or not numeric.
func (ro *ResponseObject) Int(key string) int {
	return cast.ToInt(ro.Get(key))
}

// Float returns the field coerced to a float64, or 0 when absent or not
// numeric.
func (ro *ResponseObject) Float(key string) float64 {
	return cast.ToFloat64(ro.Get(key))
}

// Bool returns the field as a bool, or false when absent or not a bool.
func (ro *ResponseObject) Bool(key string) bool {
	b, _ := ro.Get(key).(bool)
	return b
}

// Object returns the field as a nested *ResponseObject, or nil when absent
// or not an object.
func (ro *ResponseObject) Object(key string) *ResponseObject {
	o, _ := ro.Get(key).(*ResponseObject)
	return o
}

// Slice returns the field as a slice of wrapped elements, or nil when
// absent or not an array.
func (ro *ResponseObject) Slice(key string) []any {
	s, _ := ro.Get(key).([]any)
	return s
}

// Order is an order returned by the search and retrieve endpoints. Every
// field traces back to the server response; nothing is synthesized.
type Order struct {
	ResponseObject
}

func newOrder(v any) *Order {
	return &Order{*NewResponseObject(v)}
}

// ReturnReason is one entry from the return-reasons listing.
type ReturnReason struct {
	ResponseObject
}

func newReturnReason(v any) *ReturnReason {
	return &ReturnReason{*NewResponseObject(v)}
}

// Return is a created return, or the result of adding an item to one.
type Return struct {
	ResponseObject
}

func newReturn(v any) *Return {
	return &Return{*NewResponseObject(v)}
}

// wrapValue applies the recursive normalization rule: objects become
// ResponseObjects, arrays are wrapped element-wise, scalars pass through.
func wrapValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return NewResponseObject(t)
	case []any:
		wrapped := make([]any, len(t))
		for i, e := range t {
			wrapped[i] = wrapValue(e)
		}

		return wrapped
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		normalized[normalizeKey(k)] = wrapValue(v)
	}

	return normalized
}

// normalizeKey converts a key to lower_snake_case by inserting an
// underscore at each lower-to-upper case boundary: "OrderNumber" becomes
// "order_number" and "CustomerID" becomes "customer_id". Acronym runs are
// not split further.
func normalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 2)

	var prev rune
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}

		prev = r
	}

	return b.String()
}

func unwrapValue(v any) any {
	switch t := v.(type) {
	case *ResponseObject:
		return t.ToHash()
	case []any:
		unwrapped := make([]any, len(t))
		for i, e := range t {
			unwrapped[i] = unwrapValue(e)
		}

		return unwrapped
	default:
		return v
	}
}

func unwrapMap(m map[string]any) map[string]any {
	plain := make(map[string]any, len(m))
	for k, v := range m {
		plain[k] = unwrapValue(v)
	}

	return plain
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		c := make(map[string]any, len(t))
		for k, e := range t {
			c[k] = deepCopy(e)
		}

		return c
	case []any:
		c := make([]any, len(t))
		for i, e := range t {
			c[i] = deepCopy(e)
		}

		return c
	default:
		return v
	}
}
