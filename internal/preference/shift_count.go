package preference

import (
	"fmt"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

const (
	exprAbsSquared = "|x - T|^2"
	exprGE         = "x >= T"
	exprLE         = "x <= T"
	exprGT         = "x > T"
	exprLT         = "x < T"
	exprEQ         = "x = T"

	targetFloorAvg = "floor(AVG_SHIFTS_PER_PERSON)"
	targetCeilAvg  = "ceil(AVG_SHIFTS_PER_PERSON)"
	targetRoundAvg = "round(AVG_SHIFTS_PER_PERSON)"
)

// resolveTarget converts one Target into a concrete integer, computing
// AVG_SHIFTS_PER_PERSON from totalShifts/idx.NPeople with the rounding mode
// the expression names. round() matches Python's banker's rounding
// (round-half-to-even), not round-half-away-from-zero.
func resolveTarget(t scenario.Target, totalShifts int64, nPeople int) (int64, error) {
	if t.Literal != nil {
		if *t.Literal < 0 {
			return 0, errs.New(errs.KindInvalidScenario, fmt.Sprintf("target must be non-negative, but got %d", *t.Literal))
		}
		return int64(*t.Literal), nil
	}
	n := int64(nPeople)
	switch t.Expr {
	case targetFloorAvg:
		return floorDiv(totalShifts, n), nil
	case targetCeilAvg:
		return ceilDiv(totalShifts, n), nil
	case targetRoundAvg:
		return roundHalfEven(totalShifts, n), nil
	default:
		return 0, errs.New(errs.KindUnsupportedExpression, fmt.Sprintf("unsupported target: %q", t.Expr))
	}
}

func floorDiv(total, n int64) int64 { return total / n }

func ceilDiv(total, n int64) int64 {
	q, r := total/n, total%n
	if r != 0 {
		q++
	}
	return q
}

func roundHalfEven(total, n int64) int64 {
	q, r := total/n, total%n
	twice := 2 * r
	switch {
	case twice < n:
		return q
	case twice > n:
		return q + 1
	default:
		if q%2 == 0 {
			return q
		}
		return q + 1
	}
}

// compileShiftCount lowers a count-based constraint or objective term over
// how many times a person works a set of shift types across a set of dates.
func compileShiftCount(ctx *schedmodel.Context, idx *identifier.Index, pref scenario.ShiftCount, prefIdx int, totalShifts int64) error {
	people, err := idx.ResolvePeople(pref.Person)
	if err != nil {
		return err
	}
	countDates, err := idx.ResolveDates(pref.CountDates)
	if err != nil {
		return err
	}
	countShiftTypes, err := idx.ResolveShiftTypes(pref.CountShiftTypes)
	if err != nil {
		return err
	}
	if len(pref.Expression) == 0 {
		return errs.New(errs.KindInvalidScenario, "expression must not be empty")
	}
	universe := idx.IsUniverse(countShiftTypes)
	weight, posInf, negInf := weightParts(pref.Weight)

	for i, expression := range pref.Expression {
		target, err := resolveTarget(pref.Target[i], totalShifts, idx.NPeople)
		if err != nil {
			return err
		}

		for _, p := range people {
			prefix := fmt.Sprintf("pref_%d_p_%d", prefIdx, p)
			x := solver.LinearExpr{}
			for _, d := range countDates {
				for _, s := range countShiftTypes {
					var v solver.Var
					if !universe && s == scenario.OffShiftIndex {
						v = ctx.Off[schedmodel.DP{D: d, P: p}]
					} else {
						v = ctx.Shift[schedmodel.DSP{D: d, S: s, P: p}]
					}
					x.Terms = append(x.Terms, solver.LinearTerm{V: v, Coeff: 1})
				}
			}

			switch expression {
			case exprAbsSquared:
				if posInf {
					return errs.New(errs.KindUnsupportedExpression, "'.inf' weight is not allowed for shift_count with '|x - T|^2'")
				}
				if !negInf && weight > 0 {
					return errs.New(errs.KindUnsupportedExpression, "weight must be non-positive for shift_count with '|x - T|^2'")
				}
				max := totalShifts - target
				if target > max {
					max = target
				}
				diffName := prefix + "_diff"
				diff := ctx.Model.NewIntVar(0, max, diffName)
				ctx.Model.AddAbsEquality(diff, x.Plus(solver.LinearExpr{Const: -target}))
				squaredName := prefix + "_squared"
				squared := ctx.Model.NewIntVar(0, max*max, squaredName)
				ctx.Model.AddMultiplicationEquality(squared, diff, diff)
				ctx.AddObjective(weight, false, negInf, solver.Lit{V: squared})
				ctx.AddReport("shift_count_"+squaredName, squared, func(v int64) bool { return v == 0 })
			case exprGE, exprLE, exprGT, exprLT, exprEQ:
				op, negOp := comparisonOps(expression)
				exprName := prefix + "_expr"
				reified := ctx.Reify(exprName, x, op, negOp, target)
				ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: reified})
				ctx.AddReport("shift_count_"+exprName, reified, func(v int64) bool { return v != 0 })
			default:
				return errs.New(errs.KindUnsupportedExpression, fmt.Sprintf("unsupported expression: %q", expression))
			}
		}
	}
	return nil
}

func comparisonOps(expression string) (op, negOp solver.CmpOp) {
	switch expression {
	case exprGE:
		return solver.OpGE, solver.OpLT
	case exprLE:
		return solver.OpLE, solver.OpGT
	case exprGT:
		return solver.OpGT, solver.OpLE
	case exprLT:
		return solver.OpLT, solver.OpGE
	default: // exprEQ
		return solver.OpEQ, solver.OpNE
	}
}
