package store

import (
	"context"
	"fmt"

	"github.com/roach88/motiondump/internal/jsonv"
	"github.com/roach88/motiondump/internal/lottie"
)

// Dump is one charted field of one input file.
type Dump struct {
	RunID     string
	File      string // base name of the input file
	Field     string // field display name, e.g. "position"
	SVGPath   string
	Transform *jsonv.Object     // the transform the keyframes were read from
	Keyframes []lottie.Keyframe // in time order
}

// WriteDump stores d and its keyframes in one transaction. The run must
// already exist (foreign key constraint). Writing the same dump twice within a
// run replaces the earlier copy.
func (s *Store) WriteDump(ctx context.Context, d Dump) error {
	transformJSON, err := jsonv.MarshalCanonical(d.Transform)
	if err != nil {
		return fmt.Errorf("write dump: transform: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM keyframes WHERE run_id = ? AND file = ? AND field = ?
	`, d.RunID, d.File, d.Field); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dumps (run_id, file, field, keyframe_count, svg_path, transform)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, file, field) DO UPDATE SET
			keyframe_count = excluded.keyframe_count,
			svg_path = excluded.svg_path,
			transform = excluded.transform
	`, d.RunID, d.File, d.Field, len(d.Keyframes), d.SVGPath, string(transformJSON)); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	for seq, kf := range d.Keyframes {
		value, err := marshalValues(kf.Values)
		if err != nil {
			return fmt.Errorf("write dump: keyframe %d: %w", seq, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO keyframes (run_id, file, field, seq, time, value)
			VALUES (?, ?, ?, ?, ?, ?)
		`, d.RunID, d.File, d.Field, seq, kf.Time, value); err != nil {
			return fmt.Errorf("write dump: keyframe %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write dump: commit: %w", err)
	}
	return nil
}

func marshalValues(values []float64) (string, error) {
	arr := make(jsonv.Array, len(values))
	for i, v := range values {
		arr[i] = jsonv.Number(v)
	}
	data, err := jsonv.MarshalCanonical(arr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
