// Package cpsat adapts github.com/google/or-tools's CP-SAT Go bindings
// (ortools/sat/go/cpmodel) to the narrow solver.Model trait.
package cpsat

import (
	"context"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// Model wraps a cpmodel.CpModelBuilder and tracks the Var handles we hand
// back to callers against the builder's own variable objects, since
// solver.Var is an opaque int index meaningful only to this adapter.
type Model struct {
	builder *cpmodel.CpModelBuilder
	vars    []cpmodel.IntVar
}

// New constructs an empty CP-SAT model.
func New() *Model {
	return &Model{builder: cpmodel.NewCpModelBuilder()}
}

func (m *Model) register(v cpmodel.IntVar) solver.Var {
	m.vars = append(m.vars, v)
	return solver.Var(len(m.vars) - 1)
}

func (m *Model) lookup(v solver.Var) cpmodel.IntVar {
	return m.vars[int(v)]
}

func (m *Model) literal(l solver.Lit) cpmodel.BoolVar {
	bv := cpmodel.BoolVar(m.lookup(l.V))
	if l.Neg {
		return bv.Not()
	}
	return bv
}

func (m *Model) NewBoolVar(name string) solver.Var {
	return m.register(cpmodel.IntVar(m.builder.NewBoolVar(name)))
}

func (m *Model) NewIntVar(lb, ub int64, name string) solver.Var {
	return m.register(m.builder.NewIntVarFromDomain(cpmodel.NewDomain(lb, ub), name))
}

func (m *Model) expr(e solver.LinearExpr) cpmodel.LinearExpr {
	b := cpmodel.NewLinearExprBuilder()
	for _, t := range e.Terms {
		b.AddTerm(m.lookup(t.V), t.Coeff)
	}
	if e.Const != 0 {
		b.AddConstant(e.Const)
	}
	return b.Build()
}

type enforceableConstraint struct {
	m *Model
	c cpmodel.Constraint
}

func (e enforceableConstraint) OnlyEnforceIf(lits ...solver.Lit) {
	bvs := make([]cpmodel.BoolVar, len(lits))
	for i, l := range lits {
		bvs[i] = e.m.literal(l)
	}
	e.c.OnlyEnforceIf(bvs...)
}

func (m *Model) AddLinear(lhs solver.LinearExpr, op solver.CmpOp, rhs int64) solver.Enforceable {
	le := m.expr(lhs)
	var c cpmodel.Constraint
	switch op {
	case solver.OpEQ:
		c = m.builder.AddEquality(le, rhs)
	case solver.OpLE:
		c = m.builder.AddLessOrEqual(le, rhs)
	case solver.OpGE:
		c = m.builder.AddGreaterOrEqual(le, rhs)
	case solver.OpLT:
		c = m.builder.AddLessThan(le, rhs)
	case solver.OpGT:
		c = m.builder.AddGreaterThan(le, rhs)
	case solver.OpNE:
		c = m.builder.AddNotEqual(le, rhs)
	}
	return enforceableConstraint{m: m, c: c}
}

func (m *Model) AddBoolOr(lits []solver.Lit) {
	bvs := make([]cpmodel.BoolVar, len(lits))
	for i, l := range lits {
		bvs[i] = m.literal(l)
	}
	m.builder.AddBoolOr(bvs...)
}

func (m *Model) AddAbsEquality(target solver.Var, expr solver.LinearExpr) {
	m.builder.AddAbsEquality(m.lookup(target), m.expr(expr))
}

func (m *Model) AddMultiplicationEquality(target solver.Var, a, b solver.Var) {
	m.builder.AddMultiplicationEquality(m.lookup(target), m.lookup(a), m.lookup(b))
}

func (m *Model) Maximize(expr solver.LinearExpr) {
	m.builder.Maximize(m.expr(expr))
}

func (m *Model) Solve(ctx context.Context, params solver.Params, progress func(solver.Progress)) (solver.Solution, error) {
	searchParams := cpmodel.NewSatParameters()
	if params.Deterministic {
		searchParams.SetRandomSeed(0)
		searchParams.SetNumWorkers(1)
	}
	if params.TimeLimit > 0 {
		searchParams.SetMaxTimeInSeconds(params.TimeLimit.Seconds())
	}

	start := time.Now()
	nSolutions := 0
	bestScore := int64(0)
	haveBest := false

	response, err := cpmodel.SolveCpModelWithContext(ctx, m.builder.Model(), searchParams,
		cpmodel.SolutionCallback(func(resp *cpmodel.CpSolverResponse) {
			score := resp.ObjectiveValue()
			if !haveBest || score > bestScore {
				bestScore = score
				nSolutions = 1
				haveBest = true
			} else {
				nSolutions++
			}
			if progress != nil {
				progress(solver.Progress{
					Score:         score,
					ElapsedWall:   time.Since(start),
					SolutionCount: nSolutions,
				})
			}
		}))
	if err != nil {
		return solver.Solution{Status: solver.StatusUnknown}, err
	}

	status := translateStatus(response.Status())
	sol := solver.Solution{Status: status}
	if status.Success() {
		sol.Score = response.ObjectiveValue()
		sol.Values = make(map[solver.Var]int64, len(m.vars))
		for i, v := range m.vars {
			sol.Values[solver.Var(i)] = response.Value(v)
		}
	}
	return sol, nil
}

func translateStatus(s cpmodel.CpSolverStatus) solver.Status {
	switch s {
	case cpmodel.OPTIMAL:
		return solver.StatusOptimal
	case cpmodel.FEASIBLE:
		return solver.StatusFeasible
	case cpmodel.INFEASIBLE:
		return solver.StatusInfeasible
	case cpmodel.MODEL_INVALID:
		return solver.StatusModelInvalid
	default:
		return solver.StatusUnknown
	}
}
