package gdoc2html

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one document is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent conversions; each holds a document tree
	// and its DOM in memory.
	MaxWorkers = 16
)

// ResolveWorkers determines how many documents to convert concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// Conversion is CPU bound: one worker per available processor
	// (adjusted by automaxprocs for containers).
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
