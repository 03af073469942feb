// FILE: src/cmd/logtap/main_test.go
package main

import (
	"testing"

	"logtap/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name      string
		line      string
		wantLevel core.Level
		wantMsg   string
	}{
		{"ErrorPrefix", "error: connection refused", core.LevelError, "connection refused"},
		{"UppercasePrefix", "WARN: low disk", core.LevelWarn, "low disk"},
		{"PaddedPrefix", "  debug : verbose detail", core.LevelDebug, "verbose detail"},
		{"NoPrefix", "plain line", core.LevelLog, "plain line"},
		{"UnknownPrefix", "http: handler panic", core.LevelLog, "http: handler panic"},
		{"ColonOnly", ":", core.LevelLog, ":"},
		{"EmptyMessage", "info:", core.LevelInfo, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, msg := parseLine(tc.line)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}
