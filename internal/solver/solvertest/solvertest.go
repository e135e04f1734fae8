// Package solvertest is a small, bounded brute-force implementation of
// solver.Model used only by unit tests. It exhaustively enumerates every
// variable assignment within bounds, so it is only suitable for small
// scenarios, never for production use — that is internal/solver/cpsat's
// job.
package solvertest

import (
	"context"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

type varInfo struct {
	lb, ub int64
}

type linearConstraint struct {
	lhs       solver.LinearExpr
	op        solver.CmpOp
	rhs       int64
	enforceIf []solver.Lit
}

func (c *linearConstraint) vars() []solver.Var {
	vs := make([]solver.Var, len(c.lhs.Terms))
	for i, t := range c.lhs.Terms {
		vs[i] = t.V
	}
	return vs
}

func evalLinear(e solver.LinearExpr, a []int64) int64 {
	sum := e.Const
	for _, t := range e.Terms {
		sum += t.Coeff * a[t.V]
	}
	return sum
}

func cmp(lhs int64, op solver.CmpOp, rhs int64) bool {
	switch op {
	case solver.OpEQ:
		return lhs == rhs
	case solver.OpLE:
		return lhs <= rhs
	case solver.OpGE:
		return lhs >= rhs
	case solver.OpLT:
		return lhs < rhs
	case solver.OpGT:
		return lhs > rhs
	case solver.OpNE:
		return lhs != rhs
	default:
		return false
	}
}

func litValue(a []int64, l solver.Lit) bool {
	v := a[l.V] != 0
	if l.Neg {
		return !v
	}
	return v
}

type absEq struct {
	target solver.Var
	expr   solver.LinearExpr
}

type multEq struct {
	target, a, b solver.Var
}

// Model is the bounded enumerator. Zero value is not usable; use New().
type Model struct {
	vars      []varInfo
	linears   []*linearConstraint
	boolOrs   [][]solver.Lit
	absEqs    []absEq
	multEqs   []multEq
	objective solver.LinearExpr
}

func New() *Model { return &Model{} }

func (m *Model) addVar(lb, ub int64) solver.Var {
	m.vars = append(m.vars, varInfo{lb: lb, ub: ub})
	return solver.Var(len(m.vars) - 1)
}

func (m *Model) NewBoolVar(name string) solver.Var      { return m.addVar(0, 1) }
func (m *Model) NewIntVar(lb, ub int64, _ string) solver.Var { return m.addVar(lb, ub) }

type enforceableTest struct{ c *linearConstraint }

func (e enforceableTest) OnlyEnforceIf(lits ...solver.Lit) {
	e.c.enforceIf = append(e.c.enforceIf, lits...)
}

func (m *Model) AddLinear(lhs solver.LinearExpr, op solver.CmpOp, rhs int64) solver.Enforceable {
	c := &linearConstraint{lhs: lhs, op: op, rhs: rhs}
	m.linears = append(m.linears, c)
	return enforceableTest{c: c}
}

func (m *Model) AddBoolOr(lits []solver.Lit) {
	cp := append([]solver.Lit{}, lits...)
	m.boolOrs = append(m.boolOrs, cp)
}

func (m *Model) AddAbsEquality(target solver.Var, expr solver.LinearExpr) {
	m.absEqs = append(m.absEqs, absEq{target: target, expr: expr})
}

func (m *Model) AddMultiplicationEquality(target solver.Var, a, b solver.Var) {
	m.multEqs = append(m.multEqs, multEq{target: target, a: a, b: b})
}

func (m *Model) Maximize(expr solver.LinearExpr) { m.objective = expr }

func (m *Model) satisfiesAll(a []int64) bool {
	for _, c := range m.linears {
		enforced := true
		for _, l := range c.enforceIf {
			if !litValue(a, l) {
				enforced = false
				break
			}
		}
		if !enforced {
			continue
		}
		if !cmp(evalLinear(c.lhs, a), c.op, c.rhs) {
			return false
		}
	}
	for _, bo := range m.boolOrs {
		ok := false
		for _, l := range bo {
			if litValue(a, l) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, ae := range m.absEqs {
		v := evalLinear(ae.expr, a)
		if v < 0 {
			v = -v
		}
		if a[ae.target] != v {
			return false
		}
	}
	for _, me := range m.multEqs {
		if a[me.target] != a[me.a]*a[me.b] {
			return false
		}
	}
	return true
}

// Solve exhaustively enumerates every assignment within variable bounds,
// tracking the best-scoring feasible one. It respects ctx cancellation and
// params.TimeLimit by returning the best incumbent found so far, classified
// FEASIBLE rather than OPTIMAL when the search didn't complete.
func (m *Model) Solve(ctx context.Context, params solver.Params, progress func(solver.Progress)) (solver.Solution, error) {
	n := len(m.vars)
	a := make([]int64, n)
	best := make([]int64, n)
	haveBest := false
	var bestScore int64
	nSolutions := 0
	start := time.Now()
	completed := true

	var deadline time.Time
	if params.TimeLimit > 0 {
		deadline = start.Add(params.TimeLimit)
	}

	var dfs func(i int) bool // returns false to abort the whole search (timeout/cancel)
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			completed = false
			return false
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			completed = false
			return false
		}
		if i == n {
			if !m.satisfiesAll(a) {
				return true
			}
			score := evalLinear(m.objective, a)
			nSolutions++
			if !haveBest || score > bestScore {
				haveBest = true
				bestScore = score
				copy(best, a)
				if progress != nil {
					progress(solver.Progress{Score: score, ElapsedWall: time.Since(start), SolutionCount: nSolutions})
				}
			}
			return true
		}
		for v := m.vars[i].lb; v <= m.vars[i].ub; v++ {
			a[i] = v
			if !dfs(i + 1) {
				return false
			}
		}
		return true
	}
	dfs(0)

	if !haveBest {
		return solver.Solution{Status: solver.StatusInfeasible}, nil
	}
	status := solver.StatusOptimal
	if !completed {
		status = solver.StatusFeasible
	}
	values := make(map[solver.Var]int64, n)
	for i, v := range best {
		values[solver.Var(i)] = v
	}
	return solver.Solution{Status: status, Score: bestScore, Values: values}, nil
}
