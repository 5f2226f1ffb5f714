package search

// Operator names a filter comparison
type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpStartsWith  Operator = "startsWith"
	OpEndsWith    Operator = "endsWith"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
	OpBetween     Operator = "between"
	OpIn          Operator = "in"
)

// Operators lists every supported operator
var Operators = []Operator{
	OpEquals, OpContains, OpStartsWith, OpEndsWith,
	OpGreaterThan, OpLessThan, OpBetween, OpIn,
}

// Filter is a structured predicate over one field.
// Value is a scalar, a [lo, hi] pair for between, or a slice for in.
type Filter struct {
	Field         string   `json:"field"`
	Operator      Operator `json:"operator"`
	Value         any      `json:"value"`
	CaseSensitive bool     `json:"caseSensitive,omitempty"`
}

// Direction is a sort order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders results by a single field
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Options describes one search call. A Limit of zero or less returns every
// remaining item after Offset; a negative Offset is treated as zero.
type Options struct {
	Query            string   `json:"query,omitempty"`
	Filters          []Filter `json:"filters,omitempty"`
	Sort             *Sort    `json:"sort,omitempty"`
	Limit            int      `json:"limit,omitempty"`
	Offset           int      `json:"offset,omitempty"`
	Fuzzy            bool     `json:"fuzzy,omitempty"`
	HighlightMatches bool     `json:"highlightMatches,omitempty"`
}

// Result is one page of matches plus metadata
type Result[T any] struct {
	Items           []T      `json:"items"`
	Total           int      `json:"total"`
	HasMore         bool     `json:"hasMore"`
	Query           string   `json:"query"`
	ExecutionTimeMs float64  `json:"executionTime"`
	Suggestions     []string `json:"suggestions"`
	// Highlights[i] belongs to Items[i]; set only when HighlightMatches was requested
	Highlights []map[string]string `json:"highlights,omitempty"`
}
