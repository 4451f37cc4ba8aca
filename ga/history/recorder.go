package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/baldhumanity/neuroga/ga"
)

// Recorder turns generation statistics into stored GenerationRecords and
// metric updates. It implements ga.Observer.
//
// The context given to NewRecorder is bound for the lifetime of the run and
// used for every store write made by Observe.
type Recorder struct {
	ctx     context.Context
	store   Store
	metrics *Metrics
	logger  *slog.Logger
	run     RunRecord
}

// NewRecorder saves run and returns a recorder appending to it. A missing run
// ID is filled with a fresh UUID and a zero CreatedAt with the current time.
// store and metrics may each be nil; the store must already be initialized.
func NewRecorder(ctx context.Context, store Store, metrics *Metrics, logger *slog.Logger, run RunRecord) (*Recorder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.VersionedRecord = currentVersion()

	if store != nil {
		if err := store.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("save run %s: %w", run.ID, err)
		}
	}
	logger.Info("run started", slog.String("run_id", run.ID), slog.String("label", run.Label))

	return &Recorder{
		ctx:     ctx,
		store:   store,
		metrics: metrics,
		logger:  logger,
		run:     run,
	}, nil
}

// Run returns the run this recorder appends to.
func (r *Recorder) Run() RunRecord {
	return r.run
}

// Observe records one generation. Store failures are logged, never returned.
func (r *Recorder) Observe(stats ga.GenerationStats) {
	record := GenerationRecord{
		VersionedRecord: currentVersion(),
		RunID:           r.run.ID,
		Generation:      stats.Generation,
		Best:            stats.Best,
		Worst:           stats.Worst,
		Mean:            stats.Mean,
		StdDev:          stats.StdDev,
		BestDNA:         stats.BestDNA,
		DistinctDNA:     stats.DistinctDNA,
	}

	if r.metrics != nil {
		r.metrics.observe(record)
	}
	if r.store == nil {
		return
	}
	if err := r.store.AppendGeneration(r.ctx, record); err != nil {
		r.logger.Warn("failed to record generation",
			slog.String("run_id", r.run.ID),
			slog.Int("generation", stats.Generation),
			slog.Any("error", err),
		)
	}
}

var _ ga.Observer = (*Recorder)(nil)
