package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/motiondump/internal/jsonv"
	"github.com/roach88/motiondump/internal/lottie"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "motion.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"runs", "dumps", "keyframes"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		assert.NoError(t, err, "table %q not found", table)
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, NewRunID())
}

func TestWriteDumpRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	runID := NewRunID()
	require.NoError(t, s.BeginRun(ctx, runID, "motion.html"))
	require.NoError(t, s.BeginRun(ctx, runID, "motion.html"), "BeginRun is idempotent")

	transform := jsonv.NewObject(
		jsonv.P("ty", jsonv.String("tr")),
		jsonv.P("p", jsonv.NewObject(jsonv.P("a", jsonv.Number(1)))),
	)
	kfs := []lottie.Keyframe{
		{Time: 0, Values: []float64{1, 2}},
		{Time: 12.5, Values: []float64{-3.25, 4}},
	}

	err := s.WriteDump(ctx, Dump{
		RunID:     runID,
		File:      "Bounce.json",
		Field:     "position",
		SVGPath:   "Bounce.position.svg",
		Transform: transform,
		Keyframes: kfs,
	})
	require.NoError(t, err)

	got, err := s.ReadKeyframes(ctx, runID, "Bounce.json", "position")
	require.NoError(t, err)
	assert.Equal(t, kfs, got)

	dumps, err := s.ReadDumps(ctx, runID)
	require.NoError(t, err)
	require.Len(t, dumps, 1)
	assert.Equal(t, DumpSummary{
		File:          "Bounce.json",
		Field:         "position",
		KeyframeCount: 2,
		SVGPath:       "Bounce.position.svg",
		Transform:     `{"p":{"a":1},"ty":"tr"}`,
	}, dumps[0])
}

func TestWriteDumpReplacesWithinRun(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	runID := NewRunID()
	require.NoError(t, s.BeginRun(ctx, runID, "motion.html"))

	d := Dump{
		RunID:     runID,
		File:      "a.json",
		Field:     "rotation",
		SVGPath:   "a.rotation.svg",
		Transform: jsonv.NewObject(),
		Keyframes: []lottie.Keyframe{{Time: 0, Values: []float64{0}}, {Time: 1, Values: []float64{90}}},
	}
	require.NoError(t, s.WriteDump(ctx, d))

	d.Keyframes = []lottie.Keyframe{{Time: 5, Values: []float64{45}}}
	require.NoError(t, s.WriteDump(ctx, d))

	got, err := s.ReadKeyframes(ctx, runID, "a.json", "rotation")
	require.NoError(t, err)
	assert.Equal(t, d.Keyframes, got)

	dumps, err := s.ReadDumps(ctx, runID)
	require.NoError(t, err)
	require.Len(t, dumps, 1)
	assert.Equal(t, 1, dumps[0].KeyframeCount)
}

func TestWriteDumpRequiresRun(t *testing.T) {
	s := openTestStore(t)

	err := s.WriteDump(context.Background(), Dump{
		RunID:     "missing-run",
		File:      "a.json",
		Field:     "scale",
		Transform: jsonv.NewObject(),
	})
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	kfs, err := s.ReadKeyframes(ctx, "nope", "a.json", "position")
	require.NoError(t, err)
	assert.NotNil(t, kfs)
	assert.Empty(t, kfs)

	dumps, err := s.ReadDumps(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, dumps)
	assert.Empty(t, dumps)
}
