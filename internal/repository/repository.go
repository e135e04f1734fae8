// Package repository defines the storage contracts for runs: a
// Database/Transaction/NotFoundError pattern collapsed down to the single
// Run aggregate this system persists.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/j3soon/nurse-scheduling-go/internal/run"
)

// Database provides access to the run repository and connection lifecycle.
type Database interface {
	RunRepository() RunRepository
	Close() error
	Health(ctx context.Context) error
}

// RunRepository defines data access operations for solve runs.
type RunRepository interface {
	Create(ctx context.Context, r *run.Run) error
	GetByID(ctx context.Context, id uuid.UUID) (*run.Run, error)
	Update(ctx context.Context, r *run.Run) error
	List(ctx context.Context, limit int) ([]*run.Run, error)
	Count(ctx context.Context) (int64, error)
}

// NotFoundError represents a record not found error.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return "not found: " + e.ResourceType + " " + e.ResourceID
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	Field   string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
