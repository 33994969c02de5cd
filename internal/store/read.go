package store

import (
	"context"
	"fmt"

	"github.com/roach88/motiondump/internal/jsonv"
	"github.com/roach88/motiondump/internal/lottie"
)

// DumpSummary describes a stored dump without its keyframes.
type DumpSummary struct {
	File          string
	Field         string
	KeyframeCount int
	SVGPath       string
	Transform     string // canonical JSON
}

// ReadDumps returns the dumps recorded for a run, in insertion order.
// Returns an empty slice (not nil) if the run has none.
func (s *Store) ReadDumps(ctx context.Context, runID string) ([]DumpSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT file, field, keyframe_count, svg_path, transform
		FROM dumps
		WHERE run_id = ?
		ORDER BY rowid ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query dumps: %w", err)
	}
	defer rows.Close()

	dumps := []DumpSummary{}
	for rows.Next() {
		var d DumpSummary
		if err := rows.Scan(&d.File, &d.Field, &d.KeyframeCount, &d.SVGPath, &d.Transform); err != nil {
			return nil, fmt.Errorf("scan dump: %w", err)
		}
		dumps = append(dumps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dumps: %w", err)
	}
	return dumps, nil
}

// ReadKeyframes returns the keyframes of one dump ordered by seq.
// Returns an empty slice (not nil) if no records exist.
func (s *Store) ReadKeyframes(ctx context.Context, runID, file, field string) ([]lottie.Keyframe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT time, value
		FROM keyframes
		WHERE run_id = ? AND file = ? AND field = ?
		ORDER BY seq ASC
	`, runID, file, field)
	if err != nil {
		return nil, fmt.Errorf("query keyframes: %w", err)
	}
	defer rows.Close()

	keyframes := []lottie.Keyframe{}
	for rows.Next() {
		var (
			t     float64
			value string
		)
		if err := rows.Scan(&t, &value); err != nil {
			return nil, fmt.Errorf("scan keyframe: %w", err)
		}
		values, err := unmarshalValues(value)
		if err != nil {
			return nil, fmt.Errorf("keyframe at t=%g: %w", t, err)
		}
		keyframes = append(keyframes, lottie.Keyframe{Time: t, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keyframes: %w", err)
	}
	return keyframes, nil
}

func unmarshalValues(s string) ([]float64, error) {
	v, err := jsonv.Parse([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	arr, ok := v.(jsonv.Array)
	if !ok {
		return nil, fmt.Errorf("unmarshal values: got %s, want array", jsonv.Kind(v))
	}
	values := make([]float64, len(arr))
	for i, elem := range arr {
		n, ok := elem.(jsonv.Number)
		if !ok {
			return nil, fmt.Errorf("unmarshal values: [%d] is %s, want number", i, jsonv.Kind(elem))
		}
		values[i] = float64(n)
	}
	return values, nil
}
