package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRunID(t *testing.T) {
	gen := FixedRunID("run-abc")
	assert.Equal(t, "run-abc", gen())
	assert.Equal(t, "run-abc", gen())

	assert.Equal(t, "test-run-default", FixedRunID("")())
}

func TestSequentialRunIDs(t *testing.T) {
	var gen SequentialRunIDs

	assert.Equal(t, "test-run-0001", gen.Next())
	assert.Equal(t, "test-run-0002", gen.Next())

	gen.Reset()
	assert.Equal(t, "test-run-0001", gen.Next())
}

func TestSequentialRunIDs_ThreadSafe(t *testing.T) {
	var gen SequentialRunIDs
	const numGoroutines = 50

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			id := gen.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, numGoroutines, "every ID is unique")
	assert.True(t, seen["test-run-0050"])
}
