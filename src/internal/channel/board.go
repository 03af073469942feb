// FILE: src/internal/channel/board.go
package channel

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"logtap/src/internal/core"
)

// Handler consumes one channel call.
type Handler func(args ...core.Value)

// Board is the host logging surface: one handler per channel. Handlers
// are swappable, which is the indirection point a collector wraps to
// observe calls without changing what the installed handler sees.
type Board struct {
	mu       sync.RWMutex
	handlers map[core.Level]Handler
}

// New creates a board whose channels print "LEVEL: args..." lines to w.
func New(w io.Writer) *Board {
	b := &Board{
		handlers: make(map[core.Level]Handler, len(core.Levels())),
	}
	for _, level := range core.Levels() {
		b.handlers[level] = writerHandler(w, level)
	}
	return b
}

func writerHandler(w io.Writer, level core.Level) Handler {
	tag := strings.ToUpper(string(level))
	return func(args ...core.Value) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintf(w, "%s: %s\n", tag, strings.Join(parts, " "))
	}
}

// Emit dispatches one call to the channel's current handler. Argument
// order, count and values reach the handler untouched. Calls on an
// unknown channel are dropped.
func (b *Board) Emit(level core.Level, args ...core.Value) {
	b.mu.RLock()
	h := b.handlers[level]
	b.mu.RUnlock()

	if h != nil {
		h(args...)
	}
}

// Log emits on the log channel.
func (b *Board) Log(args ...core.Value) { b.Emit(core.LevelLog, args...) }

// Error emits on the error channel.
func (b *Board) Error(args ...core.Value) { b.Emit(core.LevelError, args...) }

// Warn emits on the warn channel.
func (b *Board) Warn(args ...core.Value) { b.Emit(core.LevelWarn, args...) }

// Info emits on the info channel.
func (b *Board) Info(args ...core.Value) { b.Emit(core.LevelInfo, args...) }

// Debug emits on the debug channel.
func (b *Board) Debug(args ...core.Value) { b.Emit(core.LevelDebug, args...) }

// Handler returns the channel's currently installed handler.
func (b *Board) Handler(level core.Level) Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.handlers[level]
}

// Swap installs h on the channel and returns the previous handler.
func (b *Board) Swap(level core.Level, h Handler) Handler {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.handlers[level]
	b.handlers[level] = h
	return prev
}
