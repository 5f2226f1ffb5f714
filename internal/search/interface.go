package search

import "github.com/davidschrooten/open-academic-records/internal/records"

// Searcher defines the in-memory search operations over records of type T.
// This interface allows callers to swap the engine for a fake in tests.
type Searcher[T records.Fielder] interface {
	// Snapshot management
	UpdateData(data []T)

	// Search operations
	Search(opts Options) *Result[T]

	// History tracking
	History() []string
	ClearHistory()
}

var _ Searcher[records.Record] = (*Engine[records.Record])(nil)
