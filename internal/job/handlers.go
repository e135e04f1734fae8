package job

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/j3soon/nurse-scheduling-go/internal/extract"
	"github.com/j3soon/nurse-scheduling-go/internal/orchestrator"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	"github.com/j3soon/nurse-scheduling-go/internal/run"
	"github.com/j3soon/nurse-scheduling-go/internal/solver/cpsat"
)

// JobHandlers executes solve jobs against the run repository.
type JobHandlers struct {
	runs repository.RunRepository
}

// NewJobHandlers creates a new job handlers instance.
func NewJobHandlers(runs repository.RunRepository) *JobHandlers {
	return &JobHandlers{runs: runs}
}

// RegisterHandlers registers all job handlers with the Asynq mux.
func (h *JobHandlers) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeScheduleSolve, h.HandleScheduleSolve)
}

// HandleScheduleSolve loads a run's scenario, solves it, and persists the
// outcome back onto the run — mirroring cmd/schedcli's pipeline but
// writing the result instead of printing it.
func (h *JobHandlers) HandleScheduleSolve(ctx context.Context, t *asynq.Task) error {
	var payload ScheduleSolvePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Printf("executing schedule solve job: run=%s", payload.RunID)

	rn, err := h.runs.GetByID(ctx, payload.RunID)
	if err != nil {
		return fmt.Errorf("run not found: %w", asynq.SkipRetry)
	}

	rn.Status = run.StatusRunning
	if err := h.runs.Update(ctx, rn); err != nil {
		log.Printf("failed to mark run running: %v", err)
	}

	opts := orchestrator.Options{Deterministic: rn.Options.Deterministic}
	if rn.Options.TimeoutSec > 0 {
		opts.Timeout = time.Duration(rn.Options.TimeoutSec) * time.Second
	}

	result, err := orchestrator.Solve(ctx, rn.Scenario, cpsat.New(), opts)
	if err != nil {
		rn.Status = run.StatusFailed
		rn.Error = err.Error()
		if uerr := h.runs.Update(ctx, rn); uerr != nil {
			log.Printf("failed to persist run failure: %v", uerr)
		}
		log.Printf("schedule solve failed: run=%s err=%v", payload.RunID, err)
		return fmt.Errorf("solve failed: %w", err)
	}

	summary := &run.Summary{Status: result.Status, Score: result.Score}
	if result.Status.Success() {
		table := extract.Build(rn.Scenario, result.Index, result.Context, result.Sol)
		summary.Rows = table.Rows
	}

	rn.Status = run.StatusSucceeded
	rn.Summary = summary
	if err := h.runs.Update(ctx, rn); err != nil {
		log.Printf("failed to persist run result: %v", err)
		return fmt.Errorf("failed to persist run result: %w", err)
	}

	log.Printf("schedule solve completed: run=%s status=%s score=%d", payload.RunID, result.Status, result.Score)
	return nil
}
