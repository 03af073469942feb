// FILE: src/internal/collector/export.go
package collector

import (
	"encoding/json"
	"fmt"
	"time"

	"logtap/src/internal/core"
)

// The export document layout is a contract: metadata.exportTime,
// metadata.totalLogs, metadata.collectorOptions, logs.
type exportDocument struct {
	Metadata exportMetadata  `json:"metadata"`
	Logs     []core.LogEntry `json:"logs"`
}

type exportMetadata struct {
	ExportTime       string        `json:"exportTime"`
	TotalLogs        int           `json:"totalLogs"`
	CollectorOptions exportOptions `json:"collectorOptions"`
}

type exportOptions struct {
	Options
	Filtered bool `json:"filtered"`
}

// ExportJSON serializes the full entry buffer together with export
// metadata as an indented JSON document.
func (c *Collector) ExportJSON() ([]byte, error) {
	logs := c.buf.Snapshot()

	doc := exportDocument{
		Metadata: exportMetadata{
			ExportTime: c.opts.TimestampFormat.Render(time.Now()),
			TotalLogs:  len(logs),
			CollectorOptions: exportOptions{
				Options:  c.opts,
				Filtered: c.opts.Filter != nil,
			},
		},
		Logs: logs,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return out, nil
}
