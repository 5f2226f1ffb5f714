package search

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// matchesExact reports whether any searchable field contains query.
// query must already be lower-cased.
func matchesExact(item records.Fielder, fields []string, query string) bool {
	for _, field := range fields {
		s, ok := values.ToString(item.Field(field))
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

// matchesFuzzy reports whether a single searchable field is within the edit
// distance threshold of every query word. The whole field value is compared
// to each word, so long multi-word fields rarely match.
func matchesFuzzy(item records.Fielder, fields []string, words []string, ratio float64) bool {
	for _, field := range fields {
		s, ok := values.ToString(item.Field(field))
		if !ok {
			continue
		}
		s = strings.ToLower(s)

		all := true
		for _, w := range words {
			if levenshtein.ComputeDistance(s, w) > fuzzyThreshold(w, ratio) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// fuzzyThreshold is max(1, floor(len(word) * ratio)) measured in runes
func fuzzyThreshold(word string, ratio float64) int {
	t := int(math.Floor(float64(len([]rune(word))) * ratio))
	if t < 1 {
		return 1
	}
	return t
}
