package shared

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Leak tracking is an opt-in diagnostic: while enabled, every control
// block records the stack that created it, and ReportLeaks logs the
// blocks still alive. Off by default; the handle hot paths only pay a
// flag check.

type blockOrigin struct {
	kind  string
	stack string
}

var (
	leakMu     sync.Mutex
	leakTrack  bool
	liveBlocks map[controlBlock]blockOrigin
	leakLog    = logrus.New()
)

// SetLeakLogger replaces the logger used by ReportLeaks.
func SetLeakLogger(l *logrus.Logger) {
	leakMu.Lock()
	defer leakMu.Unlock()
	leakLog = l
}

// EnableLeakTracking starts recording creation sites of control
// blocks. Blocks created while tracking was off are not observed.
func EnableLeakTracking() {
	leakMu.Lock()
	defer leakMu.Unlock()
	leakTrack = true
	liveBlocks = make(map[controlBlock]blockOrigin)
}

// DisableLeakTracking stops recording and drops what was recorded.
func DisableLeakTracking() {
	leakMu.Lock()
	defer leakMu.Unlock()
	leakTrack = false
	liveBlocks = nil
}

// ReportLeaks logs every tracked control block still alive and returns
// how many there were. A nonzero result means some handle was never
// released.
func ReportLeaks() int {
	leakMu.Lock()
	defer leakMu.Unlock()
	for b, origin := range liveBlocks {
		leakLog.WithFields(logrus.Fields{
			"kind":   origin.kind,
			"strong": b.strongCount(),
			"weak":   b.weakCount(),
		}).Warnf("live control block, created at:\n%s", origin.stack)
	}
	return len(liveBlocks)
}

func registerBlock(b controlBlock, kind string) {
	leakMu.Lock()
	defer leakMu.Unlock()
	if !leakTrack {
		return
	}
	liveBlocks[b] = blockOrigin{kind: kind, stack: creationStack()}
}

func unregisterBlock(b controlBlock) {
	leakMu.Lock()
	defer leakMu.Unlock()
	if !leakTrack {
		return
	}
	delete(liveBlocks, b)
}

func creationStack() string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(4, pc)
	frames := runtime.CallersFrames(pc[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
