package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"funcsamp/internal/estimate"
)

// Run describes one convergence computation for persistence.
type Run struct {
	RunKey       string
	StartedAt    time.Time
	FinishedAt   time.Time
	FunctionName string
	Reference    float64
	CorpusPath   string
	NumSamples   int
	NumSequences int
}

// SaveRun inserts a run and its checkpoints in a single transaction and
// returns the generated run id.
func SaveRun(ctx context.Context, db *sql.DB, run Run, checkpoints []estimate.Checkpoint) (string, error) {
	if ctx == nil {
		return "", errors.New("store: context is nil")
	}
	if db == nil {
		return "", errors.New("store: db is nil")
	}
	if run.RunKey == "" {
		return "", errors.New("store: run key is empty")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	id := uuid.NewString()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, run_key, started_at, finished_at, function_name, reference, corpus_path, num_samples, num_sequences)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		run.RunKey,
		run.StartedAt.UTC(),
		run.FinishedAt.UTC(),
		run.FunctionName,
		run.Reference,
		run.CorpusPath,
		run.NumSamples,
		run.NumSequences,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, cp := range checkpoints {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO checkpoints (run_id, sample_count, avg_error, max_error)
			 VALUES (?, ?, ?, ?)`,
			id,
			cp.SampleCount,
			cp.AvgError,
			cp.MaxError,
		); err != nil {
			return "", fmt.Errorf("insert checkpoint %d: %w", cp.SampleCount, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// Recorder accumulates reported checkpoints for a later SaveRun. It records
// only checkpoints on the reporting stride to keep stored runs aligned with
// the emitted table.
type Recorder struct {
	stride      int
	checkpoints []estimate.Checkpoint
}

// NewRecorder constructs a Recorder with the given stride. A stride of 1
// records every checkpoint.
func NewRecorder(stride int) *Recorder {
	if stride < 1 {
		stride = 1
	}
	return &Recorder{stride: stride}
}

// OnCheckpoint implements estimate.Observer.
func (r *Recorder) OnCheckpoint(cp estimate.Checkpoint) {
	if cp.SampleCount%r.stride != 0 {
		return
	}
	r.checkpoints = append(r.checkpoints, cp)
}

// Checkpoints returns the recorded checkpoints in emission order.
func (r *Recorder) Checkpoints() []estimate.Checkpoint {
	return r.checkpoints
}
