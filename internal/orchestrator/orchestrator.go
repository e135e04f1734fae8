// Package orchestrator drives one end-to-end solve: build the context,
// compile preferences, invoke the solver, and classify the terminal status.
// Progress is reported through a PartialSolutionPrinter-style callback,
// using stdlib log rather than introducing a new logging dependency for a
// single call site.
package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/preference"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// Options configures one solve.
type Options struct {
	Deterministic bool
	Timeout       time.Duration // 0 means unbounded
	AvoidSolution map[schedmodel.DSP]int
	// Progress, if non-nil, receives one update per improving incumbent.
	Progress func(solver.Progress)
}

// Result is the solve outcome. On failure (Status not Optimal/Feasible),
// Solve still returns a Result and a nil error: Status carries the
// classification and Sol holds whatever the backend returned. A failed
// solve is a normal return, not an error.
type Result struct {
	Status  solver.Status
	Score   int64
	Context *schedmodel.Context
	Index   *identifier.Index
	Sol     solver.Solution
}

// Solve runs the full pipeline against an already-loaded, already-validated
// document and a concrete solver backend (production cpsat.Model or the
// solvertest.Model test double — both satisfy solver.Model).
func Solve(ctx context.Context, doc *scenario.Document, model solver.Model, opts Options) (*Result, error) {
	log.Printf("building identifier index...")
	idx, err := identifier.Build(doc)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidScenario, "building identifier index", err)
	}

	log.Printf("building solver context (%d days, %d shift types, %d people)...", idx.NDays, idx.NShiftTypes, idx.NPeople)
	sctx, err := schedmodel.BuildContext(idx, model, opts.AvoidSolution)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidScenario, "building solver context", err)
	}

	log.Printf("compiling %d preferences...", len(doc.Preferences))
	if err := preference.Compile(sctx, idx, doc.Preferences); err != nil {
		return nil, errs.Wrap(errs.KindInvalidScenario, "compiling preferences", err)
	}
	model.Maximize(sctx.Objective)

	params := solver.Params{Deterministic: opts.Deterministic, TimeLimit: opts.Timeout}
	if opts.Deterministic {
		log.Printf("deterministic mode: random_seed=0, num_workers=1")
	}

	start := time.Now()
	progressCount := 0
	wrapped := func(p solver.Progress) {
		progressCount++
		log.Printf("solution #%d: score=%d elapsed=%s", progressCount, p.Score, time.Since(start))
		if opts.Progress != nil {
			opts.Progress(p)
		}
	}

	log.Printf("solving...")
	sol, err := model.Solve(ctx, params, wrapped)
	if err != nil {
		return nil, errs.Wrap(errs.KindInfeasibleOrUnknown, "solver invocation", err)
	}
	log.Printf("status: %s", sol.Status)

	for _, r := range sctx.Reports {
		val := sol.Values[r.Variable]
		if r.Skip != nil && r.Skip(val) {
			continue
		}
		log.Printf("report: %s = %d", r.Description, val)
	}

	return &Result{
		Status:  sol.Status,
		Score:   sol.Score,
		Context: sctx,
		Index:   idx,
		Sol:     sol,
	}, nil
}
