package testutil

import (
	"fmt"
	"sync"
)

// FixedRunID returns a run ID generator that always yields id.
//
// If id is empty, the generator returns "test-run-default".
func FixedRunID(id string) func() string {
	if id == "" {
		id = "test-run-default"
	}
	return func() string { return id }
}

// SequentialRunIDs yields run IDs "test-run-0001", "test-run-0002", ...
// so repeated runs against one archive stay distinguishable and
// deterministic.
//
// Thread-safety: Next is safe for concurrent use.
type SequentialRunIDs struct {
	mu  sync.Mutex
	seq int
}

// Next returns the next run ID.
func (g *SequentialRunIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("test-run-%04d", g.seq)
}

// Reset restarts the sequence. After Reset, Next returns "test-run-0001".
func (g *SequentialRunIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
