// Package history records per-generation fitness statistics of evolution runs.
// It keeps telemetry only: genomes and network weights are never stored.
package history

import (
	"context"
	"errors"
)

// ErrRunNotFound is returned when a generation is appended to an unknown run.
var ErrRunNotFound = errors.New("run not found")

// Store defines persistence operations for runs and their generation statistics.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]RunRecord, error)
	AppendGeneration(ctx context.Context, generation GenerationRecord) error
	ListGenerations(ctx context.Context, runID string) ([]GenerationRecord, error)
}
