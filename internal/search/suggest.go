package search

import (
	"regexp"
	"strings"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// suggestions collects history entries containing query (other than query
// itself) followed by field words that extend query, up to limit.
func suggestions[T records.Fielder](query string, history []string, data []T, fields []string, limit int) []string {
	out := make([]string, 0, limit)
	if limit <= 0 {
		return out
	}
	seen := make(map[string]struct{}, limit)
	add := func(s string) bool {
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			out = append(out, s)
		}
		return len(out) >= limit
	}

	lower := strings.ToLower(query)
	for _, h := range history {
		if h != query && strings.Contains(strings.ToLower(h), lower) {
			if add(h) {
				return out
			}
		}
	}

	for _, item := range data {
		for _, field := range fields {
			s, ok := values.ToString(item.Field(field))
			if !ok {
				continue
			}
			for _, word := range strings.Fields(strings.ToLower(s)) {
				if len(word) > len(lower) && strings.HasPrefix(word, lower) {
					if add(word) {
						return out
					}
				}
			}
		}
	}

	return out
}

// highlight wraps every case-insensitive occurrence of query in the
// searchable fields of item with <mark> tags. Fields without a match are
// left out.
func highlight(item records.Fielder, fields []string, pattern *regexp.Regexp) map[string]string {
	marked := make(map[string]string)
	for _, field := range fields {
		s, ok := values.ToString(item.Field(field))
		if !ok || !pattern.MatchString(s) {
			continue
		}
		marked[field] = pattern.ReplaceAllString(s, "<mark>$0</mark>")
	}
	return marked
}

func highlightPattern(query string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}
