package search

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// sortItems stable-sorts items in place. Null values rank last in either
// direction; the direction only applies between two non-null values.
func sortItems[T records.Fielder](items []T, s Sort, tag language.Tag) {
	// Collators keep scratch buffers, so each sort gets its own.
	col := collate.New(tag)
	sign := 1
	if s.Direction == Desc {
		sign = -1
	}

	slices.SortStableFunc(items, func(a, b T) int {
		av, bv := a.Field(s.Field), b.Field(s.Field)
		aNull, bNull := values.IsNull(av), values.IsNull(bv)
		switch {
		case aNull && bNull:
			return 0
		case aNull:
			return 1
		case bNull:
			return -1
		}
		return sign * compareValues(col, av, bv)
	})
}

// compareValues orders two non-null values: strings by collation, numbers
// numerically, anything else by collating their string forms
func compareValues(col *collate.Collator, a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return col.CompareString(as, bs)
		}
	}

	if values.IsNumeric(a) && values.IsNumeric(b) {
		diff := values.ToNumber(a) - values.ToNumber(b)
		switch {
		case diff < 0:
			return -1
		case diff > 0:
			return 1
		}
		return 0
	}

	as, _ := values.ToString(a)
	bs, _ := values.ToString(b)
	return col.CompareString(as, bs)
}
