package preference

import (
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// compileAtMostOneShiftPerDay lowers the mandatory hard constraint: for
// every (d, p), sum_s shift[d,s,p] <= 1.
func compileAtMostOneShiftPerDay(ctx *schedmodel.Context, idx *identifier.Index) error {
	for d := 0; d < idx.NDays; d++ {
		for p := 0; p < idx.NPeople; p++ {
			terms := make([]solver.LinearTerm, idx.NShiftTypes)
			for s := 0; s < idx.NShiftTypes; s++ {
				terms[s] = solver.LinearTerm{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: p}], Coeff: 1}
			}
			ctx.Model.AddLinear(solver.LinearExpr{Terms: terms}, solver.OpLE, 1)
		}
	}
	return nil
}
