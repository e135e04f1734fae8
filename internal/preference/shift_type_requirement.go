package preference

import (
	"fmt"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// compileShiftTypeRequirement lowers a coverage requirement. Overlapping
// requirements on the same (d,s) are not detected or reconciled — left as
// an open design note rather than silently fixed.
func compileShiftTypeRequirement(ctx *schedmodel.Context, idx *identifier.Index, p scenario.ShiftTypeRequirement, i int) error {
	shiftTypes, err := idx.ResolveShiftTypes(p.ShiftType)
	if err != nil {
		return err
	}
	if len(shiftTypes) == 0 {
		return errs.New(errs.KindInvalidScenario, "shift_type must resolve to a non-empty set")
	}
	dates, err := idx.ResolveDates(p.Date)
	if err != nil {
		return err
	}

	var qualified []int
	hasQualified := len(p.QualifiedPeople) > 0
	if hasQualified {
		qualified, err = idx.ResolvePeople(p.QualifiedPeople)
		if err != nil {
			return err
		}
	}
	inQualified := make(map[int]bool, len(qualified))
	for _, q := range qualified {
		inQualified[q] = true
	}

	weight, posInf, negInf := weightParts(p.Weight)

	for _, d := range dates {
		for _, s := range shiftTypes {
			if hasQualified {
				var nonQualified []solver.LinearTerm
				for person := 0; person < idx.NPeople; person++ {
					if !inQualified[person] {
						nonQualified = append(nonQualified, solver.LinearTerm{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: person}], Coeff: 1})
					}
				}
				if len(nonQualified) > 0 {
					ctx.Model.AddLinear(solver.LinearExpr{Terms: nonQualified}, solver.OpEQ, 0)
				}
			}

			var actualTerms []solver.LinearTerm
			pool := qualified
			if !hasQualified {
				pool = allPeople(idx.NPeople)
			}
			for _, person := range pool {
				actualTerms = append(actualTerms, solver.LinearTerm{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: person}], Coeff: 1})
			}
			actual := solver.LinearExpr{Terms: actualTerms}

			if p.PreferredNumPeople == nil {
				ctx.Model.AddLinear(actual, solver.OpEQ, int64(p.RequiredNumPeople))
				continue
			}

			preferred := *p.PreferredNumPeople
			ctx.Model.AddLinear(actual, solver.OpGE, int64(p.RequiredNumPeople))
			ctx.Model.AddLinear(actual, solver.OpLE, int64(preferred))

			if posInf || negInf {
				return errs.New(errs.KindUnsupportedExpression,
					"ShiftTypeRequirement with preferred_num_people cannot use an infinite weight")
			}
			diff := ctx.Model.NewIntVar(0, int64(preferred), fmt.Sprintf("str_diff_%d_d%d_s%d", i, d, s))
			ctx.Model.AddLinear(actual.Plus(solver.Term(diff)), solver.OpEQ, int64(preferred))
			ctx.AddObjective(weight, false, false, solver.Lit{V: diff})
		}
	}
	return nil
}

func allPeople(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
