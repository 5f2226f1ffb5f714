// Package values converts loosely typed record values the way the web client
// does, so records decoded from JSON, YAML or Go structs compare alike.
package values

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// IsNull reports whether v is nil or a nil pointer, map, slice or interface
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsEmpty reports whether v is null or the empty string
func IsEmpty(v any) bool {
	if IsNull(v) {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// ToString renders v as text. ok is false for null values.
func ToString(v any) (string, bool) {
	if IsNull(v) {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case time.Time:
		return t.Format(time.RFC3339), true
	case fmt.Stringer:
		return t.String(), true
	}
	if items, ok := AsSlice(v); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i], _ = ToString(item)
		}
		return strings.Join(parts, ","), true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return ToString(rv.Elem().Interface())
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return s, true
}

// ToNumber coerces v to a float64, returning NaN when v has no numeric
// reading. The empty string and null read as 0.
func ToNumber(v any) float64 {
	if IsNull(v) {
		return 0
	}
	switch t := v.(type) {
	case string:
		return parseNumber(strings.TrimSpace(t))
	case time.Time:
		return float64(t.UnixMilli())
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return ToNumber(rv.Elem().Interface())
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// parseNumber reads the numeric string forms a browser accepts. Go-only
// spellings such as "Inf", "NaN", "1_000" or hex floats are NaN.
func parseNumber(s string) float64 {
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if decimalLiteral.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return f
	}
	if radixLiteral.MatchString(s) {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	return math.NaN()
}

// IsNumeric reports whether v holds a Go numeric kind
func IsNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// StrictEqual compares without type coercion. Numbers of different Go kinds
// are equal when their values are.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if IsNumeric(a) && IsNumeric(b) {
		return cast.ToFloat64(a) == cast.ToFloat64(b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// AsSlice returns the elements of any slice or array value
func AsSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
