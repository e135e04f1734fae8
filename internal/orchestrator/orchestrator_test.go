package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
	"github.com/j3soon/nurse-scheduling-go/internal/solver/solvertest"
)

func simpleScenario() *scenario.Document {
	preferred := 2
	return &scenario.Document{
		APIVersion: "alpha",
		Dates:      scenario.Dates{Range: scenario.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-02"}},
		People:     scenario.People{Items: []scenario.Person{{ID: "alice"}, {ID: "bob"}}},
		ShiftTypes: scenario.ShiftTypes{Items: []scenario.ShiftType{{ID: "D"}, {ID: "E"}}},
		Preferences: []scenario.Preference{
			scenario.AtMostOneShiftPerDay{},
			scenario.ShiftTypeRequirement{ShiftType: scenario.IDList{"D"}, RequiredNumPeople: 0, PreferredNumPeople: &preferred, Weight: -1},
		},
	}
}

func TestSolveReturnsOptimalResult(t *testing.T) {
	result, err := Solve(context.Background(), simpleScenario(), solvertest.New(), Options{})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOptimal, result.Status)
	assert.NotNil(t, result.Context)
	assert.NotNil(t, result.Index)
}

func TestSolvePropagatesIdentifierBuildError(t *testing.T) {
	doc := simpleScenario()
	doc.Dates.Range.StartDate = "not-a-date"

	_, err := Solve(context.Background(), doc, solvertest.New(), Options{})
	assert.Error(t, err)
}

func TestSolveReportsProgress(t *testing.T) {
	var updates []solver.Progress
	_, err := Solve(context.Background(), simpleScenario(), solvertest.New(), Options{
		Progress: func(p solver.Progress) { updates = append(updates, p) },
	})
	require.NoError(t, err)
	assert.NotEmpty(t, updates)
}

func TestSolveDeterministicOptionReachesParams(t *testing.T) {
	result, err := Solve(context.Background(), simpleScenario(), solvertest.New(), Options{Deterministic: true})
	require.NoError(t, err)
	assert.True(t, result.Status.Success())
}
