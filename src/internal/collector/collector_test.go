// FILE: src/internal/collector/collector_test.go
package collector

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"logtap/src/internal/channel"
	"logtap/src/internal/core"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func newTestBoard() (*channel.Board, *bytes.Buffer) {
	var out bytes.Buffer
	return channel.New(&out), &out
}

func TestCollector_BasicCapture(t *testing.T) {
	board, out := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	board.Log(core.Text("hello"))
	board.Error(core.Text("boom"))
	require.NoError(t, c.Stop(token))

	logs := c.Logs()
	require.Len(t, logs, 2)

	assert.Equal(t, uint64(1), logs[0].ID)
	assert.Equal(t, core.LevelLog, logs[0].Level)
	assert.Equal(t, "hello", logs[0].Message.String())

	assert.Equal(t, uint64(2), logs[1].ID)
	assert.Equal(t, core.LevelError, logs[1].Level)
	assert.Equal(t, "boom", logs[1].Message.String())

	// Interception forwards to the original handlers unchanged.
	assert.Contains(t, out.String(), "LOG: hello\n")
	assert.Contains(t, out.String(), "ERROR: boom\n")
}

func TestCollector_IDsFollowCaptureOrder(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("a"))
	board.Warn(core.Text("b"))
	board.Info(core.Text("c"))
	board.Debug(core.Text("d"))
	board.Error(core.Text("e"))

	logs := c.Logs()
	require.Len(t, logs, 5)
	for i, e := range logs {
		assert.Equal(t, uint64(i+1), e.ID)
	}
}

func TestCollector_FIFOEviction(t *testing.T) {
	board, _ := newTestBoard()
	opts := DefaultOptions()
	opts.MaxLogs = 2
	c := New(board, opts, newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("a"))
	board.Log(core.Text("b"))
	board.Log(core.Text("c"))

	logs := c.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, "b", logs[0].Message.String())
	assert.Equal(t, "c", logs[1].Message.String())
	assert.Equal(t, uint64(2), logs[0].ID)
	assert.Equal(t, uint64(3), logs[1].ID)
}

func TestCollector_MessageCollapse(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("single"))
	board.Log(core.Text("request"), core.Number(404))
	board.Log()

	logs := c.Logs()
	require.Len(t, logs, 3)

	assert.Equal(t, core.KindText, logs[0].Message.Kind(), "one argument stays a single value")

	require.Equal(t, core.KindList, logs[1].Message.Kind(), "several arguments become an ordered list")
	items, _ := logs[1].Message.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "request", items[0].String())
	assert.Equal(t, "404", items[1].String())

	assert.Equal(t, core.KindList, logs[2].Message.Kind(), "no arguments become an empty list")
}

func TestCollector_StopRestoresOriginals(t *testing.T) {
	board, out := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	board.Log(core.Text("captured"))
	require.NoError(t, c.Stop(token))

	out.Reset()
	board.Log(core.Text("after stop"))

	assert.Len(t, c.Logs(), 1, "no capture after stop")
	assert.Equal(t, "LOG: after stop\n", out.String(), "original side effect only")
}

func TestCollector_RestorationUsesConstructionTimeHandlers(t *testing.T) {
	board, out := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()

	// Some other code hijacks the channel while the collector is active.
	board.Swap(core.LevelLog, func(args ...core.Value) {})

	require.NoError(t, c.Stop(token))
	board.Log(core.Text("restored"))

	assert.Contains(t, out.String(), "LOG: restored\n",
		"stop must write back the handler captured at construction, not the hijacker")
}

func TestCollector_RedundantStart(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	first := c.Start()
	board.Log(core.Text("before"))

	second := c.Start()
	assert.Equal(t, first, second, "redundant start returns the running session's token")

	board.Log(core.Text("after"))
	assert.Len(t, c.Logs(), 2, "redundant start must not reset the buffer")

	require.NoError(t, c.Stop(first))
}

func TestCollector_StartResetsBufferAndCounter(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	board.Log(core.Text("first session"))
	require.NoError(t, c.Stop(token))

	token = c.Start()
	defer c.Stop(token)
	board.Log(core.Text("second session"))

	logs := c.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, uint64(1), logs[0].ID)
	assert.Equal(t, "second session", logs[0].Message.String())
}

func TestCollector_StopTokenOwnership(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	t.Run("InactiveStopIsNoOp", func(t *testing.T) {
		assert.NoError(t, c.Stop(uuid.New()))
	})

	t.Run("WrongTokenIsRejected", func(t *testing.T) {
		token := c.Start()
		err := c.Stop(uuid.New())
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.True(t, c.Active(), "rejected stop must not deactivate")
		require.NoError(t, c.Stop(token))
		assert.False(t, c.Active())
	})
}

func TestCollector_Clear(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("one"))
	board.Log(core.Text("two"))
	c.Clear()

	assert.Empty(t, c.Logs())
	assert.True(t, c.Active(), "clear must not deactivate")

	board.Log(core.Text("fresh"))
	logs := c.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, uint64(1), logs[0].ID, "counter restarts after clear")
}

func TestCollector_FilterGate(t *testing.T) {
	t.Run("RejectAll", func(t *testing.T) {
		board, out := newTestBoard()
		opts := DefaultOptions()
		opts.Filter = func(args []core.Value) bool { return false }
		c := New(board, opts, newTestLogger())

		token := c.Start()
		defer c.Stop(token)

		for i := 0; i < 50; i++ {
			board.Log(core.Text("noise"))
		}

		assert.Empty(t, c.Logs())
		assert.Equal(t, 50, strings.Count(out.String(), "LOG: noise\n"),
			"rejected calls still reach the original handler")
	})

	t.Run("FilterOverridesCaptureAll", func(t *testing.T) {
		board, _ := newTestBoard()
		opts := DefaultOptions()
		opts.CaptureAll = false
		opts.Filter = func(args []core.Value) bool { return true }
		c := New(board, opts, newTestLogger())

		token := c.Start()
		defer c.Stop(token)

		board.Log(core.Text("kept"))
		assert.Len(t, c.Logs(), 1, "a configured filter is the sole gate")
	})

	t.Run("CaptureAllFalseWithoutFilter", func(t *testing.T) {
		board, _ := newTestBoard()
		opts := DefaultOptions()
		opts.CaptureAll = false
		c := New(board, opts, newTestLogger())

		token := c.Start()
		defer c.Stop(token)

		board.Log(core.Text("dropped"))
		assert.Empty(t, c.Logs())
	})
}

func TestCollector_QuerySurface(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("all good"))
	board.Warn(core.Text("low disk"))
	board.Log(core.Text("an error occurred"))

	t.Run("ByLevel", func(t *testing.T) {
		warns := c.LogsByLevel(core.LevelWarn)
		require.Len(t, warns, 1)
		assert.Equal(t, "low disk", warns[0].Message.String())
	})

	t.Run("Search", func(t *testing.T) {
		got := c.Search("ERR")
		require.Len(t, got, 1)
		assert.Equal(t, "an error occurred", got[0].Message.String())
	})

	t.Run("TimeRange", func(t *testing.T) {
		logs := c.Logs()
		got := c.LogsByTimeRange(logs[0].Timestamp, logs[len(logs)-1].Timestamp)
		assert.Len(t, got, 3)
	})

	t.Run("Stats", func(t *testing.T) {
		stats := c.Stats()
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.ByLevel[core.LevelLog])
		assert.Equal(t, 1, stats.ByLevel[core.LevelWarn])
		assert.NotContains(t, stats.ByLevel, core.LevelError)
		assert.NotEmpty(t, stats.Earliest)
		assert.NotEmpty(t, stats.Latest)
	})

	t.Run("SnapshotIsDefensive", func(t *testing.T) {
		logs := c.Logs()
		logs[0].Message = core.Text("mutated")
		assert.Equal(t, "all good", c.Logs()[0].Message.String())
	})
}

func TestCollector_EpochTimestamps(t *testing.T) {
	board, _ := newTestBoard()
	opts := DefaultOptions()
	opts.TimestampFormat = core.TimestampEpoch
	c := New(board, opts, newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("tick"))
	logs := c.Logs()
	require.Len(t, logs, 1)

	for _, r := range logs[0].Timestamp {
		assert.True(t, r >= '0' && r <= '9', "epoch timestamps are decimal strings")
	}
}

func TestCollector_StackTraceCapture(t *testing.T) {
	board, _ := newTestBoard()
	opts := DefaultOptions()
	opts.IncludeStackTrace = true
	c := New(board, opts, newTestLogger())

	token := c.Start()
	defer c.Stop(token)

	board.Log(core.Text("where am I"))
	logs := c.Logs()
	require.Len(t, logs, 1)
	assert.NotEmpty(t, logs[0].Source)
}

func TestCollector_ExportJSON(t *testing.T) {
	board, _ := newTestBoard()
	c := New(board, DefaultOptions(), newTestLogger())

	token := c.Start()
	board.Log(core.Text("hello"))
	board.Error(core.Text("boom"))
	require.NoError(t, c.Stop(token))

	out, err := c.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	metadata, ok := doc["metadata"].(map[string]any)
	require.True(t, ok, "document must have a metadata object")
	assert.NotEmpty(t, metadata["exportTime"])
	assert.Equal(t, float64(2), metadata["totalLogs"])

	options, ok := metadata["collectorOptions"].(map[string]any)
	require.True(t, ok, "metadata must carry the active configuration")
	assert.Equal(t, true, options["captureAll"])
	assert.Equal(t, float64(1000), options["maxLogs"])
	assert.Equal(t, "iso", options["timestampFormat"])

	logs, ok := doc["logs"].([]any)
	require.True(t, ok, "document must have the ordered entry array")
	require.Len(t, logs, 2)

	first, ok := logs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "log", first["level"])
	assert.Equal(t, "hello", first["message"])
}
