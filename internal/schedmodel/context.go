// Package schedmodel owns the materialized decision variables, the five
// lookup maps, and the solver model shared by every preference compiler.
package schedmodel

import (
	"fmt"

	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// DSP is a (day, shift-type, person) coordinate.
type DSP struct{ D, S, P int }

// DP is a (day, person) coordinate.
type DP struct{ D, P int }

// DS is a (day, shift-type) coordinate.
type DS struct{ D, S int }

// SP is a (shift-type, person) coordinate.
type SP struct{ S, P int }

// Context is built once per solve; after BuildContext returns, Shift/Off and
// the five lookup maps are immutable. Preference compilation mutates only
// the solver model and Objective.
type Context struct {
	Idx   *identifier.Index
	Model solver.Model

	Shift map[DSP]solver.Var
	Off   map[DP]solver.Var

	MapDSp map[DS][]int // (d,s) -> people indices
	MapDPs map[DP][]int // (d,p) -> shift-type indices
	MapDsp map[int][]SP // d -> (s,p) pairs
	MapSdp map[int][]DP // s -> (d,p) pairs
	MapPds map[int][]DS // p -> (d,s) pairs

	Objective solver.LinearExpr
	Reports   []Report
}

// BuildContext materializes shift[d,s,p], the optional avoid_solution
// disjunction, off[d,p], and the five lookup maps, in that order.
func BuildContext(idx *identifier.Index, model solver.Model, avoidSolution map[DSP]int) (*Context, error) {
	ctx := &Context{
		Idx:    idx,
		Model:  model,
		Shift:  make(map[DSP]solver.Var, idx.NDays*idx.NShiftTypes*idx.NPeople),
		Off:    make(map[DP]solver.Var, idx.NDays*idx.NPeople),
		MapDSp: make(map[DS][]int),
		MapDPs: make(map[DP][]int),
		MapDsp: make(map[int][]SP),
		MapSdp: make(map[int][]DP),
		MapPds: make(map[int][]DS),
	}

	for d := 0; d < idx.NDays; d++ {
		for s := 0; s < idx.NShiftTypes; s++ {
			for p := 0; p < idx.NPeople; p++ {
				name := fmt.Sprintf("shift_d%d_s%d_p%d", d, s, p)
				ctx.Shift[DSP{d, s, p}] = model.NewBoolVar(name)
			}
		}
	}

	if avoidSolution != nil {
		lits := make([]solver.Lit, 0, len(ctx.Shift))
		for coord, v := range ctx.Shift {
			switch avoidSolution[coord] {
			case 0:
				lits = append(lits, solver.Lit{V: v})
			case 1:
				lits = append(lits, solver.Lit{V: v, Neg: true})
			default:
				return nil, fmt.Errorf("invalid avoid_solution value at %+v: must be 0 or 1", coord)
			}
		}
		model.AddBoolOr(lits)
	}

	for d := 0; d < idx.NDays; d++ {
		for p := 0; p < idx.NPeople; p++ {
			terms := make([]solver.LinearTerm, idx.NShiftTypes)
			for s := 0; s < idx.NShiftTypes; s++ {
				terms[s] = solver.LinearTerm{V: ctx.Shift[DSP{d, s, p}], Coeff: 1}
			}
			sum := solver.LinearExpr{Terms: terms}
			name := fmt.Sprintf("off_d%d_p%d", d, p)
			ctx.Off[DP{d, p}] = ctx.Reify(name, sum, solver.OpEQ, solver.OpNE, 0)
		}
	}

	for d := 0; d < idx.NDays; d++ {
		for s := 0; s < idx.NShiftTypes; s++ {
			people := make([]int, idx.NPeople)
			for p := range people {
				people[p] = p
			}
			ctx.MapDSp[DS{d, s}] = people
		}
		for p := 0; p < idx.NPeople; p++ {
			shiftTypes := make([]int, idx.NShiftTypes)
			for s := range shiftTypes {
				shiftTypes[s] = s
			}
			ctx.MapDPs[DP{d, p}] = shiftTypes
		}
	}
	for d := 0; d < idx.NDays; d++ {
		sp := make([]SP, 0, idx.NShiftTypes*idx.NPeople)
		for s := 0; s < idx.NShiftTypes; s++ {
			for p := 0; p < idx.NPeople; p++ {
				sp = append(sp, SP{s, p})
			}
		}
		ctx.MapDsp[d] = sp
	}
	for s := 0; s < idx.NShiftTypes; s++ {
		dp := make([]DP, 0, idx.NDays*idx.NPeople)
		for d := 0; d < idx.NDays; d++ {
			for p := 0; p < idx.NPeople; p++ {
				dp = append(dp, DP{d, p})
			}
		}
		ctx.MapSdp[s] = dp
	}
	for p := 0; p < idx.NPeople; p++ {
		ds := make([]DS, 0, idx.NDays*idx.NShiftTypes)
		for d := 0; d < idx.NDays; d++ {
			for s := 0; s < idx.NShiftTypes; s++ {
				ds = append(ds, DS{d, s})
			}
		}
		ctx.MapPds[p] = ds
	}

	return ctx, nil
}

// Reify introduces a fresh boolean tied to expr <op> rhs via two
// OnlyEnforceIf directions over the comparator and its negation.
func (ctx *Context) Reify(name string, expr solver.LinearExpr, op solver.CmpOp, negOp solver.CmpOp, rhs int64) solver.Var {
	b := ctx.Model.NewBoolVar(name)
	ctx.Model.AddLinear(expr, op, rhs).OnlyEnforceIf(solver.Lit{V: b})
	ctx.Model.AddLinear(expr, negOp, rhs).OnlyEnforceIf(solver.Lit{V: b, Neg: true})
	return b
}

// AddObjective folds a weighted literal into the objective, short-circuiting
// +INF/-INF weights to hard constraints that contribute nothing to the
// accumulator. A negated literal contributes weight*(1-V) = weight -
// weight*V, so the accumulator's constant term shifts accordingly.
func (ctx *Context) AddObjective(weight int64, posInf, negInf bool, lit solver.Lit) {
	switch {
	case posInf:
		target := int64(1)
		if lit.Neg {
			target = 0
		}
		ctx.Model.AddLinear(solver.Term(lit.V), solver.OpEQ, target)
	case negInf:
		target := int64(0)
		if lit.Neg {
			target = 1
		}
		ctx.Model.AddLinear(solver.Term(lit.V), solver.OpEQ, target)
	default:
		if !lit.Neg {
			ctx.Objective = ctx.Objective.Plus(solver.LinearExpr{Terms: []solver.LinearTerm{{V: lit.V, Coeff: weight}}})
		} else {
			ctx.Objective = ctx.Objective.Plus(solver.LinearExpr{Const: weight, Terms: []solver.LinearTerm{{V: lit.V, Coeff: -weight}}})
		}
	}
}
