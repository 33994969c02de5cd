package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden returns a goldie instance reading testdata/golden/<name>.golden
// relative to the calling package.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// AssertGolden compares data byte for byte against the named golden file.
func AssertGolden(t *testing.T, name string, data []byte) {
	t.Helper()
	Golden(t).Assert(t, name, data)
}
