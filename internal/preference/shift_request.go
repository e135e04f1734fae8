package preference

import (
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// compileShiftRequest rewards assigning a requested shift type to a person
// on a date.
func compileShiftRequest(ctx *schedmodel.Context, idx *identifier.Index, p scenario.ShiftRequest, i int) error {
	people, err := idx.ResolvePeople(p.Person)
	if err != nil {
		return err
	}
	dates, err := idx.ResolveDates(p.Date)
	if err != nil {
		return err
	}
	shiftTypes, err := idx.ResolveShiftTypes(p.ShiftType)
	if err != nil {
		return err
	}

	w := p.ResolvedWeight()
	weight, posInf, negInf := weightParts(w)
	universe := idx.IsUniverse(shiftTypes)

	for _, d := range dates {
		for _, person := range people {
			if universe {
				// shift_type resolves to the full universe: request is
				// "person p works something" i.e. ¬off[d,p]. Added once per
				// (d,person), not once per shift type.
				ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: ctx.Off[schedmodel.DP{D: d, P: person}], Neg: true})
				continue
			}
			for _, s := range shiftTypes {
				if s == -1 { // OFF_sid
					ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: ctx.Off[schedmodel.DP{D: d, P: person}]})
					continue
				}
				ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: person}]})
			}
		}
	}
	return nil
}
