// Package runrepo holds concrete repository.RunRepository implementations,
// an in-memory map-backed store and a Postgres-backed one, collapsed down
// to the single Run aggregate.
package runrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	"github.com/j3soon/nurse-scheduling-go/internal/run"
)

// MemoryRepository is an in-memory RunRepository, for tests and for running
// the server without a configured database.
type MemoryRepository struct {
	mu         sync.RWMutex
	runs       map[uuid.UUID]*run.Run
	queryCount int
}

// NewMemoryRepository creates a new in-memory run repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{runs: make(map[uuid.UUID]*run.Run)}
}

// Create stores a new run.
func (r *MemoryRepository) Create(ctx context.Context, rn *run.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++

	if rn == nil {
		return &repository.NotFoundError{ResourceType: "Run", ResourceID: "nil"}
	}
	r.runs[rn.ID] = rn
	return nil
}

// GetByID retrieves a run by ID.
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++

	rn, exists := r.runs[id]
	if !exists {
		return nil, &repository.NotFoundError{ResourceType: "Run", ResourceID: id.String()}
	}
	return rn, nil
}

// Update updates an existing run.
func (r *MemoryRepository) Update(ctx context.Context, rn *run.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++

	if rn == nil {
		return &repository.NotFoundError{ResourceType: "Run", ResourceID: "nil"}
	}
	if _, exists := r.runs[rn.ID]; !exists {
		return &repository.NotFoundError{ResourceType: "Run", ResourceID: rn.ID.String()}
	}
	rn.UpdatedAt = time.Now().UTC()
	r.runs[rn.ID] = rn
	return nil
}

// List returns the most recently created runs, newest first, capped at
// limit (0 means unbounded).
func (r *MemoryRepository) List(ctx context.Context, limit int) ([]*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++

	result := make([]*run.Run, 0, len(r.runs))
	for _, rn := range r.runs {
		result = append(result, rn)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Count returns the total number of runs.
func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	return int64(len(r.runs)), nil
}

// QueryCount returns the number of queries executed (for testing purposes).
func (r *MemoryRepository) QueryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queryCount
}

// Reset clears all data and resets query count.
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = make(map[uuid.UUID]*run.Run)
	r.queryCount = 0
}
