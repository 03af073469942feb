// FILE: src/internal/buffer/buffer.go
package buffer

import (
	"strings"
	"sync"

	"logtap/src/internal/core"
)

// Buffer is a bounded, capture-ordered in-memory store of log entries.
// When full, appending evicts the oldest entry first (FIFO). A capacity
// of zero or less disables eviction.
type Buffer struct {
	mu      sync.RWMutex
	entries []core.LogEntry
	max     int
}

// New creates a buffer holding at most max entries.
func New(max int) *Buffer {
	capHint := max
	if capHint <= 0 || capHint > 4096 {
		capHint = 1024
	}
	return &Buffer{
		entries: make([]core.LogEntry, 0, capHint),
		max:     max,
	}
}

// Append stores a new entry, evicting the oldest when the buffer is full.
func (b *Buffer) Append(entry core.LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	if b.max > 0 && len(b.entries) > b.max {
		b.entries = b.entries[1:]
	}
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Snapshot returns a copy of all retained entries in capture order.
func (b *Buffer) Snapshot() []core.LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]core.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// ByLevel returns the entries captured on the given channel, in order.
func (b *Buffer) ByLevel(level core.Level) []core.LogEntry {
	return b.filter(func(e core.LogEntry) bool {
		return e.Level == level
	})
}

// ByTimeRange returns the entries whose timestamp falls within
// [start, end]. Comparison is lexicographic on the stored timestamp
// string, which is only well-defined for the ISO representation.
func (b *Buffer) ByTimeRange(start, end string) []core.LogEntry {
	return b.filter(func(e core.LogEntry) bool {
		return e.Timestamp >= start && e.Timestamp <= end
	})
}

// Search returns the entries whose stringified message contains term,
// case-insensitively.
func (b *Buffer) Search(term string) []core.LogEntry {
	needle := strings.ToLower(term)
	return b.filter(func(e core.LogEntry) bool {
		return strings.Contains(strings.ToLower(e.Message.String()), needle)
	})
}

func (b *Buffer) filter(keep func(core.LogEntry) bool) []core.LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]core.LogEntry, 0)
	for _, e := range b.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Stats summarizes the retained window.
type Stats struct {
	Total    int                `json:"total"`
	ByLevel  map[core.Level]int `json:"byLevel,omitempty"`
	Earliest string             `json:"earliest,omitempty"`
	Latest   string             `json:"latest,omitempty"`
}

// Stats returns counts and the earliest/latest timestamps of the
// retained window. Only channels with at least one entry appear in
// ByLevel; Earliest and Latest are empty when the buffer is.
func (b *Buffer) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := Stats{
		Total:   len(b.entries),
		ByLevel: make(map[core.Level]int),
	}
	for _, e := range b.entries {
		stats.ByLevel[e.Level]++
	}
	if len(b.entries) > 0 {
		stats.Earliest = b.entries[0].Timestamp
		stats.Latest = b.entries[len(b.entries)-1].Timestamp
	}
	return stats
}

// Clear discards every retained entry.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = b.entries[:0]
}
