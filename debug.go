package sway

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame display link metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime time.Duration
	tickers  int
	steps    uint64
}

// debugLog prints link stats to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] frame %d | step: %v | tickers: %d | scroll views: %d\n",
		s.stats.steps, s.stats.stepTime, s.stats.tickers, len(s.scrollViews))
}

// debugLogf prints a single diagnostic line to stderr when debug mode is on.
func debugLogf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sway] "+format+"\n", args...)
}

// logTransition records an animated update on l.
func logTransition(l *Layer, what string, tr Transition) {
	if !globalDebug {
		return
	}
	debugLogf("%s on %q (id %d): %v", what, l.Name, l.ID, tr)
}

// debugCheckDisposed panics with a descriptive message when a disposed layer is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(l *Layer, op string) {
	if l.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed layer %q (ID was %d)", op, l.Name, l.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(l *Layer) {
	depth := 0
	for p := l; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: tree depth %d exceeds %d (layer %q)\n",
			depth, debugMaxTreeDepth, l.Name)
	}
}
