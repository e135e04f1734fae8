package runrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	"github.com/j3soon/nurse-scheduling-go/internal/run"
)

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	rn := run.New(nil, "apiVersion: v1\n", run.Options{})

	require.NoError(t, repo.Create(context.Background(), rn))

	got, err := repo.GetByID(context.Background(), rn.ID)
	require.NoError(t, err)
	assert.Equal(t, rn.ID, got.ID)
	assert.Equal(t, run.StatusPending, got.Status)
}

func TestMemoryRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), run.New(nil, "", run.Options{}).ID)
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	rn := run.New(nil, "", run.Options{})
	require.NoError(t, repo.Create(context.Background(), rn))

	rn.Status = run.StatusSucceeded
	rn.Summary = &run.Summary{Score: 42}
	require.NoError(t, repo.Update(context.Background(), rn))

	got, err := repo.GetByID(context.Background(), rn.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, got.Status)
	assert.Equal(t, int64(42), got.Summary.Score)
}

func TestMemoryRepositoryUpdateNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	rn := run.New(nil, "", run.Options{})

	err := repo.Update(context.Background(), rn)
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func TestMemoryRepositoryListOrdersNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	first := run.New(nil, "", run.Options{})
	repo.Create(context.Background(), first)
	second := run.New(nil, "", run.Options{})
	second.CreatedAt = first.CreatedAt.Add(1)
	repo.Create(context.Background(), second)

	runs, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
}

func TestMemoryRepositoryListRespectsLimit(t *testing.T) {
	repo := NewMemoryRepository()
	for i := 0; i < 5; i++ {
		repo.Create(context.Background(), run.New(nil, "", run.Options{}))
	}

	runs, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestMemoryRepositoryCount(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Create(context.Background(), run.New(nil, "", run.Options{}))
	repo.Create(context.Background(), run.New(nil, "", run.Options{}))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryRepositoryReset(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Create(context.Background(), run.New(nil, "", run.Options{}))
	assert.Positive(t, repo.QueryCount())

	repo.Reset()
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, repo.QueryCount())
}
