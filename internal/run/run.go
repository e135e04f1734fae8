// Package run is the ambient-stack entity wrapping one scenario solve
// request as it moves through submission, queuing, and completion — the
// API/job/repository layers' domain object, distinct from the solver-facing
// types in internal/scenario and internal/orchestrator.
package run

import (
	"time"

	"github.com/google/uuid"

	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// Status is a run's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Options mirrors orchestrator.Options for the fields that make sense to
// expose over the wire (no AvoidSolution/Progress — those are in-process
// only).
type Options struct {
	Deterministic bool          `json:"deterministic"`
	TimeoutSec    int           `json:"timeout_seconds,omitempty"`
}

// Summary is the JSON-serializable solve outcome: the extracted table plus
// the solver's terminal classification, persisted instead of the live
// schedmodel.Context/solver.Solution (which hold backend-internal handles).
type Summary struct {
	Status solver.Status `json:"status"`
	Score  int64         `json:"score"`
	Rows   [][]string    `json:"rows,omitempty"`
}

// Run is one submitted scenario plus its processing state. ScenarioYAML
// is the source of truth for persistence (scenario.Document's Preferences
// field is a sealed interface with no JSON encoding of its own); Scenario
// is the parsed form, populated on load and reparsed from ScenarioYAML
// when a repository reads a run back.
type Run struct {
	ID           uuid.UUID          `json:"id"`
	ScenarioYAML string             `json:"-"`
	Scenario     *scenario.Document `json:"-"`
	Options      Options            `json:"options"`
	Status       Status             `json:"status"`
	Summary      *Summary           `json:"summary,omitempty"`
	Error        string             `json:"error,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// New creates a pending run for a loaded scenario document and the raw
// YAML it was parsed from.
func New(doc *scenario.Document, rawYAML string, opts Options) *Run {
	now := time.Now().UTC()
	return &Run{
		ID:           uuid.New(),
		ScenarioYAML: rawYAML,
		Scenario:     doc,
		Options:      opts,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
