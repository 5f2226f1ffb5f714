package search

import "sync"

// History keeps the most recent distinct queries, newest first
type History struct {
	entries []string
	max     int
	mutex   sync.Mutex
}

// NewHistory creates a history holding at most max entries
func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max}
}

// Add moves query to the front, dropping older duplicates and overflow
func (h *History) Add(query string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	entries := make([]string, 0, h.max)
	entries = append(entries, query)
	for _, e := range h.entries {
		if e == query {
			continue
		}
		if len(entries) == h.max {
			break
		}
		entries = append(entries, e)
	}
	h.entries = entries
}

// Entries returns a copy of the history, newest first
func (h *History) Entries() []string {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes every entry
func (h *History) Clear() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.entries = nil
}
