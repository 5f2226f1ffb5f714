package search

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/davidschrooten/open-academic-records/config"
	"github.com/davidschrooten/open-academic-records/internal/records"
)

const (
	defaultHistorySize     = 10
	defaultSuggestionLimit = 5
	defaultFuzzyRatio      = 0.3
)

// Engine searches an in-memory snapshot of records. The snapshot is held by
// reference and replaced wholesale by UpdateData.
type Engine[T records.Fielder] struct {
	data   []T
	fields []string
	mutex  sync.RWMutex

	history         *History
	suggestionLimit int
	fuzzyRatio      float64
	locale          language.Tag
}

// Option configures an Engine
type Option func(*settings)

type settings struct {
	historySize     int
	suggestionLimit int
	fuzzyRatio      float64
	locale          language.Tag
}

// WithHistorySize caps the number of remembered queries
func WithHistorySize(n int) Option {
	return func(s *settings) { s.historySize = n }
}

// WithSuggestionLimit caps the number of suggestions per result
func WithSuggestionLimit(n int) Option {
	return func(s *settings) { s.suggestionLimit = n }
}

// WithFuzzyRatio sets the edit distance allowed per rune of a query word
func WithFuzzyRatio(r float64) Option {
	return func(s *settings) { s.fuzzyRatio = r }
}

// WithLocale sets the collation used for string sorts. Unparseable tags
// fall back to the root locale.
func WithLocale(tag string) Option {
	return func(s *settings) {
		t, err := language.Parse(tag)
		if err != nil {
			t = language.Und
		}
		s.locale = t
	}
}

// OptionsFromConfig maps search configuration onto engine options
func OptionsFromConfig(cfg config.SearchConfig) []Option {
	opts := []Option{}
	if cfg.HistorySize > 0 {
		opts = append(opts, WithHistorySize(cfg.HistorySize))
	}
	if cfg.SuggestionLimit > 0 {
		opts = append(opts, WithSuggestionLimit(cfg.SuggestionLimit))
	}
	if cfg.FuzzyRatio > 0 {
		opts = append(opts, WithFuzzyRatio(cfg.FuzzyRatio))
	}
	if cfg.Locale != "" {
		opts = append(opts, WithLocale(cfg.Locale))
	}
	return opts
}

// New creates an engine over data searching the given fields
func New[T records.Fielder](data []T, fields []string, opts ...Option) *Engine[T] {
	s := settings{
		historySize:     defaultHistorySize,
		suggestionLimit: defaultSuggestionLimit,
		fuzzyRatio:      defaultFuzzyRatio,
		locale:          language.English,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Engine[T]{
		data:            data,
		fields:          append([]string(nil), fields...),
		history:         NewHistory(s.historySize),
		suggestionLimit: s.suggestionLimit,
		fuzzyRatio:      s.fuzzyRatio,
		locale:          s.locale,
	}
}

// Fields returns the searchable fields
func (e *Engine[T]) Fields() []string {
	return append([]string(nil), e.fields...)
}

// UpdateData replaces the snapshot
func (e *Engine[T]) UpdateData(data []T) {
	e.mutex.Lock()
	e.data = data
	e.mutex.Unlock()
}

// Search runs text matching, filters, sort and pagination over the current
// snapshot. A non-empty query is recorded in the history.
func (e *Engine[T]) Search(opts Options) *Result[T] {
	start := time.Now()

	e.mutex.RLock()
	data := e.data
	e.mutex.RUnlock()

	query := strings.TrimSpace(opts.Query)

	results := make([]T, 0, len(data))
	if query != "" {
		e.history.Add(query)

		lower := strings.ToLower(query)
		words := strings.Fields(lower)
		for _, item := range data {
			var ok bool
			if opts.Fuzzy {
				ok = matchesFuzzy(item, e.fields, words, e.fuzzyRatio)
			} else {
				ok = matchesExact(item, e.fields, lower)
			}
			if ok {
				results = append(results, item)
			}
		}
	} else {
		results = append(results, data...)
	}

	if len(opts.Filters) > 0 {
		filtered := results[:0]
		for _, item := range results {
			if matchesFilters(item, opts.Filters) {
				filtered = append(filtered, item)
			}
		}
		results = filtered
	}

	if opts.Sort != nil && opts.Sort.Field != "" {
		sortItems(results, *opts.Sort, e.locale)
	}

	total := len(results)
	page := paginate(results, opts.Offset, opts.Limit)

	offset := max(opts.Offset, 0)
	result := &Result[T]{
		Items:       page,
		Total:       total,
		HasMore:     offset+len(page) < total,
		Query:       query,
		Suggestions: []string{},
	}
	result.ExecutionTimeMs = float64(time.Since(start).Microseconds()) / 1000

	if query != "" {
		result.Suggestions = suggestions(query, e.history.Entries(), data, e.fields, e.suggestionLimit)

		if opts.HighlightMatches {
			pattern := highlightPattern(query)
			result.Highlights = make([]map[string]string, len(page))
			for i, item := range page {
				result.Highlights[i] = highlight(item, e.fields, pattern)
			}
		}
	}

	return result
}

// History returns the recent queries, newest first
func (e *Engine[T]) History() []string {
	return e.history.Entries()
}

// ClearHistory forgets every recorded query
func (e *Engine[T]) ClearHistory() {
	e.history.Clear()
}

// paginate slices items[offset:offset+limit], clamping to the bounds
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
