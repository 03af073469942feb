// FILE: src/internal/collector/presets.go
package collector

import (
	"strings"
	"time"

	"logtap/src/internal/channel"
	"logtap/src/internal/core"

	"github.com/lixenwraith/log"
)

// NewErrorOnly creates a collector that intercepts and restores only
// the error channel; the other channels are left untouched for the
// collector's entire lifetime.
func NewErrorOnly(board *channel.Board, opts Options, logger *log.Logger) *Collector {
	return newForLevels(board, opts, logger, core.LevelError)
}

// MarkerFilter accepts a call when any argument is text containing the
// marker substring.
func MarkerFilter(marker string) Filter {
	return func(args []core.Value) bool {
		for _, arg := range args {
			if s, ok := arg.Text(); ok && strings.Contains(s, marker) {
				return true
			}
		}
		return false
	}
}

// NewMarkerFiltered creates a collector recording only calls where some
// text argument contains marker.
func NewMarkerFiltered(board *channel.Board, marker string, opts Options, logger *log.Logger) *Collector {
	opts.CaptureAll = false
	opts.Filter = MarkerFilter(marker)
	return New(board, opts, logger)
}

// NewTimed creates a collector that appends a trailing argument with
// elapsed milliseconds since construction to every captured call, and
// records call sites.
func NewTimed(board *channel.Board, opts Options, logger *log.Logger) *Collector {
	opts.IncludeStackTrace = true
	c := New(board, opts, logger)

	birth := c.birth
	c.augment = func(args []core.Value) []core.Value {
		out := make([]core.Value, 0, len(args)+1)
		out = append(out, args...)
		elapsed := float64(time.Since(birth)) / float64(time.Millisecond)
		return append(out, core.Number(elapsed))
	}
	return c
}
