package search

import (
	"strings"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// matchesFilters reports whether item passes every filter
func matchesFilters(item records.Fielder, filters []Filter) bool {
	for _, f := range filters {
		if !evaluateFilter(item.Field(f.Field), f) {
			return false
		}
	}
	return true
}

// evaluateFilter applies one filter to a field value. Null field values and
// malformed filter values never match.
func evaluateFilter(fieldValue any, f Filter) bool {
	if values.IsNull(fieldValue) {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return values.StrictEqual(fieldValue, f.Value)

	case OpContains, OpStartsWith, OpEndsWith:
		field, ok := values.ToString(fieldValue)
		if !ok {
			return false
		}
		needle, ok := values.ToString(f.Value)
		if !ok {
			return false
		}
		if !f.CaseSensitive {
			field = strings.ToLower(field)
			needle = strings.ToLower(needle)
		}
		switch f.Operator {
		case OpContains:
			return strings.Contains(field, needle)
		case OpStartsWith:
			return strings.HasPrefix(field, needle)
		default:
			return strings.HasSuffix(field, needle)
		}

	case OpGreaterThan:
		return values.ToNumber(fieldValue) > values.ToNumber(f.Value)

	case OpLessThan:
		return values.ToNumber(fieldValue) < values.ToNumber(f.Value)

	case OpBetween:
		bounds, ok := values.AsSlice(f.Value)
		if !ok || len(bounds) != 2 {
			return false
		}
		n := values.ToNumber(fieldValue)
		return n >= values.ToNumber(bounds[0]) && n <= values.ToNumber(bounds[1])

	case OpIn:
		set, ok := values.AsSlice(f.Value)
		if !ok {
			return false
		}
		for _, candidate := range set {
			if values.StrictEqual(fieldValue, candidate) {
				return true
			}
		}
		return false
	}

	return false
}
