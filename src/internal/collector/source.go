// FILE: src/internal/collector/source.go
package collector

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Frames from these packages belong to the capture path itself and are
// skipped when deriving a call-site description.
var internalFrames = []string{
	"logtap/src/internal/collector",
	"logtap/src/internal/channel",
}

// callSite walks the stack for the first frame outside the capture
// path. Best-effort: returns "" when the stack is unavailable or too
// shallow, which simply leaves the entry's source empty.
func callSite() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !isInternalFrame(frame.Function) {
			return fmt.Sprintf("%s:%d %s", filepath.Base(frame.File), frame.Line, frame.Function)
		}
		if !more {
			return ""
		}
	}
}

func isInternalFrame(fn string) bool {
	for _, prefix := range internalFrames {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}
