// FILE: src/internal/collector/collector.go
package collector

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"logtap/src/internal/buffer"
	"logtap/src/internal/channel"
	"logtap/src/internal/core"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
)

// ErrNotOwner is returned by Stop when the supplied token does not
// belong to the active capture session.
var ErrNotOwner = errors.New("stop token does not match active session")

// Filter gates capture of a channel call based on its raw arguments.
// When configured it is the sole gate, regardless of CaptureAll.
type Filter func(args []core.Value) bool

// Options configures a collector. Use DefaultOptions as the base; the
// zero value captures nothing unless a Filter is set.
type Options struct {
	// CaptureAll records every call when no Filter is configured.
	CaptureAll bool `json:"captureAll"`

	// Filter, when non-nil, decides capture per call.
	Filter Filter `json:"-"`

	// IncludeStackTrace attaches a best-effort call-site description
	// to each entry.
	IncludeStackTrace bool `json:"includeStackTrace"`

	// MaxLogs bounds the buffer; zero or negative selects the default.
	MaxLogs int `json:"maxLogs"`

	// TimestampFormat selects the entry timestamp representation.
	TimestampFormat core.TimestampFormat `json:"timestampFormat"`
}

// DefaultOptions returns the documented defaults: capture everything,
// no stack traces, 1000 retained entries, ISO timestamps.
func DefaultOptions() Options {
	return Options{
		CaptureAll:      true,
		MaxLogs:         defaultMaxLogs,
		TimestampFormat: core.TimestampISO,
	}
}

const defaultMaxLogs = 1000

// Collector intercepts a set of channels on one board, records
// qualifying calls, and forwards every call unchanged to the handler
// captured at construction time.
type Collector struct {
	opts   Options
	board  *channel.Board
	buf    *buffer.Buffer
	logger *log.Logger

	// Channels this collector intercepts, fixed for its lifetime.
	levels []core.Level

	// Original handlers, captured once at construction so that later
	// reassignment by other code cannot corrupt restoration.
	originals map[core.Level]channel.Handler

	// augment rewrites the raw argument sequence before the capture
	// policy runs. Set by the timed preset; nil otherwise.
	augment func(args []core.Value) []core.Value

	birth time.Time

	mu     sync.Mutex
	active bool
	seq    uint64
	token  uuid.UUID

	// Statistics
	totalSeen     atomic.Uint64
	totalCaptured atomic.Uint64
	totalFiltered atomic.Uint64
}

// New creates a collector intercepting all five channels of board.
func New(board *channel.Board, opts Options, logger *log.Logger) *Collector {
	return newForLevels(board, opts, logger, core.Levels()...)
}

func newForLevels(board *channel.Board, opts Options, logger *log.Logger, levels ...core.Level) *Collector {
	if opts.MaxLogs <= 0 {
		opts.MaxLogs = defaultMaxLogs
	}
	if !opts.TimestampFormat.Valid() {
		opts.TimestampFormat = core.TimestampISO
	}

	c := &Collector{
		opts:      opts,
		board:     board,
		buf:       buffer.New(opts.MaxLogs),
		logger:    logger,
		levels:    levels,
		originals: make(map[core.Level]channel.Handler, len(levels)),
		birth:     time.Now(),
	}
	for _, level := range levels {
		c.originals[level] = board.Handler(level)
	}
	return c
}

// Active reports whether a capture session is running.
func (c *Collector) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Start begins a capture session and returns its ownership token, which
// Stop requires. The buffer and counter are reset. Calling Start while
// already active is a warned no-op returning the running session's token.
func (c *Collector) Start() uuid.UUID {
	c.mu.Lock()
	if c.active {
		token := c.token
		c.mu.Unlock()
		c.logger.Warn("msg", "Collector already active",
			"component", "collector",
			"token", token.String())
		return token
	}
	c.active = true
	c.seq = 0
	c.token = uuid.New()
	token := c.token
	c.mu.Unlock()

	c.buf.Clear()

	for _, level := range c.levels {
		level := level
		original := c.originals[level]
		c.board.Swap(level, func(args ...core.Value) {
			c.capture(level, args)
			if original != nil {
				original(args...)
			}
		})
	}

	c.logger.Info("msg", "Collector started",
		"component", "collector",
		"channels", len(c.levels),
		"max_logs", c.opts.MaxLogs)
	return token
}

// Stop ends the session owned by token, restoring every intercepted
// channel to the handler captured at construction. Stopping an inactive
// collector is a silent no-op; a token from a different session is a
// detectable misuse.
func (c *Collector) Stop(token uuid.UUID) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	if token != c.token {
		c.mu.Unlock()
		return ErrNotOwner
	}
	c.active = false
	c.mu.Unlock()

	for _, level := range c.levels {
		c.board.Swap(level, c.originals[level])
	}

	c.logger.Info("msg", "Collector stopped",
		"component", "collector",
		"total_seen", c.totalSeen.Load(),
		"total_captured", c.totalCaptured.Load(),
		"total_filtered", c.totalFiltered.Load())
	return nil
}

// capture applies the capture policy to one intercepted call.
func (c *Collector) capture(level core.Level, args []core.Value) {
	c.totalSeen.Add(1)

	if c.augment != nil {
		args = c.augment(args)
	}

	if c.opts.Filter != nil {
		if !c.opts.Filter(args) {
			c.totalFiltered.Add(1)
			return
		}
	} else if !c.opts.CaptureAll {
		c.totalFiltered.Add(1)
		return
	}

	var message core.Value
	if len(args) == 1 {
		message = args[0]
	} else {
		message = core.List(args...)
	}

	entry := core.LogEntry{
		Timestamp: c.opts.TimestampFormat.Render(time.Now()),
		Level:     level,
		Message:   message,
	}
	if c.opts.IncludeStackTrace {
		entry.Source = callSite()
	}

	c.mu.Lock()
	c.seq++
	entry.ID = c.seq
	c.mu.Unlock()

	c.buf.Append(entry)
	c.totalCaptured.Add(1)
}

// Logs returns every retained entry in capture order.
func (c *Collector) Logs() []core.LogEntry {
	return c.buf.Snapshot()
}

// LogsByLevel returns the retained entries of one channel, in order.
func (c *Collector) LogsByLevel(level core.Level) []core.LogEntry {
	return c.buf.ByLevel(level)
}

// LogsByTimeRange returns the retained entries whose timestamp falls
// within [start, end]; see buffer.ByTimeRange for the comparison rule.
func (c *Collector) LogsByTimeRange(start, end string) []core.LogEntry {
	return c.buf.ByTimeRange(start, end)
}

// Search returns the retained entries whose message contains term,
// case-insensitively.
func (c *Collector) Search(term string) []core.LogEntry {
	return c.buf.Search(term)
}

// Stats summarizes the retained window.
func (c *Collector) Stats() buffer.Stats {
	return c.buf.Stats()
}

// Clear empties the buffer and resets the entry counter. The session
// state is untouched: an active collector keeps capturing, with the
// next entry assigned ID 1.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.seq = 0
	c.mu.Unlock()
	c.buf.Clear()
}
