package preference

import (
	"fmt"
	"sort"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// compileShiftAffinity is implemented as a pairwise co-assignment reward:
// for the i-th (person1, person2) pair and each date, reward when both are
// separately assigned some shift type from the union of shift_types sets.
func compileShiftAffinity(ctx *schedmodel.Context, idx *identifier.Index, pref scenario.ShiftAffinity, prefIdx int) error {
	people1, err := idx.ResolvePeople(pref.People1)
	if err != nil {
		return err
	}
	people2, err := idx.ResolvePeople(pref.People2)
	if err != nil {
		return err
	}
	if len(people1) != len(people2) {
		return errs.New(errs.KindInvalidScenario,
			fmt.Sprintf("people1 and people2 must resolve to equal-length lists, got %d and %d", len(people1), len(people2)))
	}
	dates, err := idx.ResolveDates(pref.Dates)
	if err != nil {
		return err
	}

	shiftTypes, err := unionShiftTypeSets(idx, pref.ShiftTypes)
	if err != nil {
		return err
	}
	universe := idx.IsUniverse(shiftTypes)

	weight, posInf, negInf := weightParts(pref.Weight)

	for i := range people1 {
		p1, p2 := people1[i], people2[i]
		for _, d := range dates {
			name := fmt.Sprintf("affinity_%d_pair%d_d%d", prefIdx, i, d)
			works1 := worksAnyOf(ctx, d, p1, shiftTypes, universe, name+"_w1")
			works2 := worksAnyOf(ctx, d, p2, shiftTypes, universe, name+"_w2")
			both := ctx.Reify(name+"_both",
				solver.LinearExpr{Terms: []solver.LinearTerm{{V: works1, Coeff: 1}, {V: works2, Coeff: 1}}},
				solver.OpEQ, solver.OpNE, 2)
			ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: both})
		}
	}
	return nil
}

// unionShiftTypeSets flattens and de-duplicates a list of shift-type id
// sets into one resolved index slice.
func unionShiftTypeSets(idx *identifier.Index, sets []scenario.IDList) ([]int, error) {
	seen := map[int]bool{}
	for _, set := range sets {
		resolved, err := idx.ResolveShiftTypes(set)
		if err != nil {
			return nil, err
		}
		for _, s := range resolved {
			seen[s] = true
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out, nil
}

// worksAnyOf reifies "person p is assigned one of shiftTypes on day d".
func worksAnyOf(ctx *schedmodel.Context, d, p int, shiftTypes []int, universe bool, name string) solver.Var {
	if universe {
		return ctx.Reify(name, solver.Term(ctx.Off[schedmodel.DP{D: d, P: p}]), solver.OpEQ, solver.OpNE, 0)
	}
	var terms []solver.LinearTerm
	for _, s := range shiftTypes {
		if s == scenario.OffShiftIndex {
			terms = append(terms, solver.LinearTerm{V: ctx.Off[schedmodel.DP{D: d, P: p}], Coeff: 1})
		} else {
			terms = append(terms, solver.LinearTerm{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: p}], Coeff: 1})
		}
	}
	return ctx.Reify(name, solver.LinearExpr{Terms: terms}, solver.OpGE, solver.OpLT, 1)
}
