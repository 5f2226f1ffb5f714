package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFilter(t *testing.T) {
	tests := []struct {
		name   string
		field  any
		filter Filter
		want   bool
	}{
		{"equals string", "A", Filter{Operator: OpEquals, Value: "A"}, true},
		{"equals is case sensitive", "a", Filter{Operator: OpEquals, Value: "A"}, false},
		{"equals across numeric kinds", 65.0, Filter{Operator: OpEquals, Value: 65}, true},
		{"equals does not coerce", "65", Filter{Operator: OpEquals, Value: 65}, false},
		{"equals array holding slices", [1]any{[]int{1}}, Filter{Operator: OpEquals, Value: [1]any{[]int{1}}}, false},
		{"in array holding slices", [1]any{[]int{1}}, Filter{Operator: OpIn, Value: []any{[1]any{[]int{1}}}}, false},

		{"contains ignores case", "Data Structures", Filter{Operator: OpContains, Value: "STRUCT"}, true},
		{"contains case sensitive", "Data Structures", Filter{Operator: OpContains, Value: "STRUCT", CaseSensitive: true}, false},
		{"contains number", 2024, Filter{Operator: OpContains, Value: "02"}, true},
		{"starts with", "CS101", Filter{Operator: OpStartsWith, Value: "cs"}, true},
		{"starts with case sensitive", "CS101", Filter{Operator: OpStartsWith, Value: "cs", CaseSensitive: true}, false},
		{"ends with", "CS101", Filter{Operator: OpEndsWith, Value: "101"}, true},
		{"ends with miss", "CS101", Filter{Operator: OpEndsWith, Value: "201"}, false},
		{"contains null value", "x", Filter{Operator: OpContains, Value: nil}, false},

		{"greater than", 90, Filter{Operator: OpGreaterThan, Value: 85}, true},
		{"greater than coerces strings", "90", Filter{Operator: OpGreaterThan, Value: "85"}, true},
		{"greater than equal", 85, Filter{Operator: OpGreaterThan, Value: 85}, false},
		{"greater than non numeric", "abc", Filter{Operator: OpGreaterThan, Value: 1}, false},
		{"greater than Inf spelling", "Inf", Filter{Operator: OpGreaterThan, Value: 50}, false},
		{"less than NaN spelling", "NaN", Filter{Operator: OpLessThan, Value: 50}, false},
		{"greater than Infinity", "Infinity", Filter{Operator: OpGreaterThan, Value: 50}, true},
		{"less than", 3.5, Filter{Operator: OpLessThan, Value: 4}, true},
		{"less than non numeric bound", 3, Filter{Operator: OpLessThan, Value: "four"}, false},

		{"between low bound", 60, Filter{Operator: OpBetween, Value: []int{60, 70}}, true},
		{"between high bound", 70, Filter{Operator: OpBetween, Value: []float64{60, 70}}, true},
		{"between outside", 71, Filter{Operator: OpBetween, Value: []any{60, 70}}, false},
		{"between string field", "65", Filter{Operator: OpBetween, Value: []any{60, 70}}, true},
		{"between one element", 65, Filter{Operator: OpBetween, Value: []any{60}}, false},
		{"between three elements", 65, Filter{Operator: OpBetween, Value: []any{60, 70, 80}}, false},
		{"between scalar", 65, Filter{Operator: OpBetween, Value: 60}, false},
		{"between nil", 65, Filter{Operator: OpBetween, Value: nil}, false},

		{"in strings", "B", Filter{Operator: OpIn, Value: []string{"A", "B"}}, true},
		{"in is strict", "b", Filter{Operator: OpIn, Value: []string{"A", "B"}}, false},
		{"in numbers", 3.0, Filter{Operator: OpIn, Value: []any{1, 2, 3}}, true},
		{"in without coercion", "3", Filter{Operator: OpIn, Value: []any{1, 2, 3}}, false},
		{"in scalar", "A", Filter{Operator: OpIn, Value: "A"}, false},

		{"unknown operator", "A", Filter{Operator: "regex", Value: "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluateFilter(tt.field, tt.filter))
		})
	}
}

func TestEvaluateFilter_NullNeverMatches(t *testing.T) {
	for _, op := range Operators {
		t.Run(string(op), func(t *testing.T) {
			assert.False(t, evaluateFilter(nil, Filter{Operator: op, Value: nil}))
			assert.False(t, evaluateFilter((*float64)(nil), Filter{Operator: op, Value: []any{0, 100}}))
		})
	}
}
