// Package job wraps async solve dispatch over Asynq/Redis: a single
// solve job type, enqueued by the API and picked up by the worker.
package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// JobScheduler manages job enqueueing to Asynq.
type JobScheduler struct {
	client *asynq.Client
	addr   string
}

// NewJobScheduler creates a new job scheduler.
func NewJobScheduler(redisAddr string) (*JobScheduler, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})

	if err := client.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &JobScheduler{client: client, addr: redisAddr}, nil
}

// TypeScheduleSolve is the only job type this system enqueues: solve one
// submitted run.
const TypeScheduleSolve = "schedule:solve"

// ScheduleSolvePayload carries a run's ID. The scenario itself lives in
// the run repository — the task payload stays small so Asynq's Redis
// storage and retry machinery aren't burdened by a potentially large
// scenario document.
type ScheduleSolvePayload struct {
	RunID uuid.UUID `json:"run_id"`
}

// EnqueueScheduleSolve enqueues a solve job for runID. The task timeout is
// the solver timeout (30 minutes when timeout <= 0) plus 2 minutes of
// headroom.
func (s *JobScheduler) EnqueueScheduleSolve(ctx context.Context, runID uuid.UUID, timeout time.Duration) (*asynq.TaskInfo, error) {
	payload := ScheduleSolvePayload{RunID: runID}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeScheduleSolve, payloadBytes)

	taskTimeout := timeout
	if taskTimeout <= 0 {
		taskTimeout = 30 * time.Minute
	}
	// Headroom above the solver's own wall-time limit for index/context
	// build and table extraction.
	taskTimeout += 2 * time.Minute

	info, err := s.client.EnqueueContext(ctx, task, asynq.MaxRetry(1), asynq.Timeout(taskTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue schedule solve job: %w", err)
	}

	return info, nil
}

// Close closes the job scheduler and releases resources.
func (s *JobScheduler) Close() error {
	return s.client.Close()
}

// GetTaskInfo retrieves information about a task.
func (s *JobScheduler) GetTaskInfo(ctx context.Context, taskID string) (*asynq.TaskInfo, error) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: s.addr})
	defer inspector.Close()

	return inspector.GetTaskInfo(ctx, "default", taskID)
}
