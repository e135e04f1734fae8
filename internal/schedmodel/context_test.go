package schedmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
	"github.com/j3soon/nurse-scheduling-go/internal/solver/solvertest"
)

func buildIndex(t *testing.T) *identifier.Index {
	t.Helper()
	doc := &scenario.Document{
		Dates:      scenario.Dates{Range: scenario.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-02"}},
		People:     scenario.People{Items: []scenario.Person{{ID: "alice"}, {ID: "bob"}}},
		ShiftTypes: scenario.ShiftTypes{Items: []scenario.ShiftType{{ID: "D"}, {ID: "E"}}},
	}
	idx, err := identifier.Build(doc)
	require.NoError(t, err)
	return idx
}

func TestBuildContextMaterializesShiftVars(t *testing.T) {
	idx := buildIndex(t)
	model := solvertest.New()

	ctx, err := BuildContext(idx, model, nil)
	require.NoError(t, err)

	assert.Len(t, ctx.Shift, idx.NDays*idx.NShiftTypes*idx.NPeople)
	assert.Len(t, ctx.Off, idx.NDays*idx.NPeople)
}

func TestBuildContextLookupMaps(t *testing.T) {
	idx := buildIndex(t)
	ctx, err := BuildContext(idx, solvertest.New(), nil)
	require.NoError(t, err)

	assert.Len(t, ctx.MapDSp[DS{0, 0}], idx.NPeople)
	assert.Len(t, ctx.MapDPs[DP{0, 0}], idx.NShiftTypes)
	assert.Len(t, ctx.MapDsp[0], idx.NShiftTypes*idx.NPeople)
	assert.Len(t, ctx.MapSdp[0], idx.NDays*idx.NPeople)
	assert.Len(t, ctx.MapPds[0], idx.NDays*idx.NShiftTypes)
}

func TestBuildContextRejectsInvalidAvoidSolutionValue(t *testing.T) {
	idx := buildIndex(t)
	_, err := BuildContext(idx, solvertest.New(), map[DSP]int{{0, 0, 0}: 2})
	assert.Error(t, err)
}

func TestBuildContextAvoidSolutionAddsConstraint(t *testing.T) {
	idx := buildIndex(t)
	avoid := make(map[DSP]int)
	for d := 0; d < idx.NDays; d++ {
		for s := 0; s < idx.NShiftTypes; s++ {
			for p := 0; p < idx.NPeople; p++ {
				avoid[DSP{d, s, p}] = 0
			}
		}
	}
	model := solvertest.New()
	ctx, err := BuildContext(idx, model, avoid)
	require.NoError(t, err)
	assert.NotNil(t, ctx)
}

func TestAddObjectivePositiveWeight(t *testing.T) {
	model := solvertest.New()
	ctx := &Context{Model: model}
	v := model.NewBoolVar("x")

	ctx.AddObjective(5, false, false, solver.Lit{V: v})
	assert.Equal(t, []solver.LinearTerm{{V: v, Coeff: 5}}, ctx.Objective.Terms)
}

func TestAddObjectiveNegatedLiteral(t *testing.T) {
	model := solvertest.New()
	ctx := &Context{Model: model}
	v := model.NewBoolVar("x")

	ctx.AddObjective(5, false, false, solver.Lit{V: v, Neg: true})
	assert.Equal(t, int64(5), ctx.Objective.Const)
	assert.Equal(t, []solver.LinearTerm{{V: v, Coeff: -5}}, ctx.Objective.Terms)
}

func TestAddObjectivePosInfForcesTrue(t *testing.T) {
	model := solvertest.New()
	ctx := &Context{Model: model}
	v := model.NewBoolVar("x")

	ctx.AddObjective(0, true, false, solver.Lit{V: v})
	sol, err := model.Solve(context.Background(), solver.Params{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sol.Values[v])
}

func TestReportDefaultsSkipToNil(t *testing.T) {
	model := solvertest.New()
	ctx := &Context{Model: model}
	v := model.NewBoolVar("x")

	ctx.AddReport("x should be off", v, nil)
	require.Len(t, ctx.Reports, 1)
	assert.Nil(t, ctx.Reports[0].Skip)
	assert.Equal(t, "x should be off", ctx.Reports[0].Description)
}
