// FILE: src/internal/core/timestamp.go
package core

import (
	"strconv"
	"time"
)

// TimestampFormat selects the wire representation of entry timestamps.
// It is chosen once per collector instance.
type TimestampFormat string

const (
	// TimestampISO renders UTC ISO-8601 with fixed-width millisecond
	// precision, so lexicographic order equals chronological order.
	TimestampISO TimestampFormat = "iso"

	// TimestampEpoch renders epoch milliseconds as a decimal string.
	TimestampEpoch TimestampFormat = "epoch"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// Valid reports whether f is a recognized format.
func (f TimestampFormat) Valid() bool {
	return f == TimestampISO || f == TimestampEpoch
}

// Render formats t in the configured representation.
func (f TimestampFormat) Render(t time.Time) string {
	if f == TimestampEpoch {
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return t.UTC().Format(isoLayout)
}
