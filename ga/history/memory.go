package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore keeps runs and generations in maps. It is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]RunRecord
	generations map[string][]GenerationRecord
}

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to empty.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]RunRecord)
	s.generations = make(map[string][]GenerationRecord)
	return nil
}

// SaveRun inserts or replaces a run.
func (s *MemoryStore) SaveRun(_ context.Context, run RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.runs[run.ID] = run
	return nil
}

// GetRun returns the run with the given id and whether it exists.
func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

// ListRuns returns every run, oldest first.
func (s *MemoryStore) ListRuns(_ context.Context) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}

// AppendGeneration adds a generation to an existing run.
func (s *MemoryStore) AppendGeneration(_ context.Context, generation GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	if _, ok := s.runs[generation.RunID]; !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, generation.RunID)
	}
	s.generations[generation.RunID] = append(s.generations[generation.RunID], generation)
	return nil
}

// ListGenerations returns a copy of the generations of a run in append order.
func (s *MemoryStore) ListGenerations(_ context.Context, runID string) ([]GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	generations := s.generations[runID]
	copied := make([]GenerationRecord, len(generations))
	copy(copied, generations)
	return copied, nil
}
