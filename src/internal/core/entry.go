// FILE: src/internal/core/entry.go
package core

// Level tags one of the fixed logging channels.
type Level string

const (
	LevelLog   Level = "log"
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Levels returns every channel tag in display order.
func Levels() []Level {
	return []Level{LevelLog, LevelError, LevelWarn, LevelInfo, LevelDebug}
}

// Valid reports whether l is one of the fixed channel tags.
func (l Level) Valid() bool {
	switch l {
	case LevelLog, LevelError, LevelWarn, LevelInfo, LevelDebug:
		return true
	}
	return false
}

// LogEntry represents a single captured channel call.
// Entries are immutable after capture.
type LogEntry struct {
	ID        uint64 `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     Level  `json:"level"`
	Message   Value  `json:"message"`
	Source    string `json:"source,omitempty"`
}
