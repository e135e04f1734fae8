package preference

import (
	"fmt"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// normPatternElem is one position of a normalized pattern: either the ALL
// sentinel (matches "person works something", i.e. ¬off) or an explicit set
// of shift-type indices (OffShiftIndex included for a literal "OFF" token).
type normPatternElem struct {
	all      bool
	resolved []int
}

func normalizePattern(idx *identifier.Index, pattern []scenario.PatternElement) ([]normPatternElem, error) {
	out := make([]normPatternElem, len(pattern))
	for i, elem := range pattern {
		resolved, err := idx.ResolveShiftTypes(scenario.IDList(elem))
		if err != nil {
			return nil, err
		}
		if len(resolved) == 1 && resolved[0] == scenario.OffShiftIndex {
			if !(len(elem) == 1 && elem[0] == scenario.Off) {
				return nil, errs.New(errs.KindInvalidScenario,
					fmt.Sprintf("pattern[%d] resolves to OFF without using the literal \"OFF\" token", i))
			}
			out[i] = normPatternElem{resolved: resolved}
			continue
		}
		if idx.IsUniverse(resolved) {
			out[i] = normPatternElem{all: true}
		} else {
			out[i] = normPatternElem{resolved: resolved}
		}
	}
	return out, nil
}

// matchCandidates returns, for position i of a normalized pattern starting
// at day d for person p, the list of literals any one of which "matches"
// that position.
func matchCandidates(ctx *schedmodel.Context, elem normPatternElem, d, p int) []solver.Lit {
	if elem.all {
		return []solver.Lit{{V: ctx.Off[schedmodel.DP{D: d, P: p}], Neg: true}}
	}
	lits := make([]solver.Lit, len(elem.resolved))
	for i, s := range elem.resolved {
		if s == scenario.OffShiftIndex {
			lits[i] = solver.Lit{V: ctx.Off[schedmodel.DP{D: d, P: p}]}
		} else {
			lits[i] = solver.Lit{V: ctx.Shift[schedmodel.DSP{D: d, S: s, P: p}]}
		}
	}
	return lits
}

func sumLits(lits []solver.Lit) solver.LinearExpr {
	e := solver.LinearExpr{}
	for _, l := range lits {
		if l.Neg {
			e.Const++
			e.Terms = append(e.Terms, solver.LinearTerm{V: l.V, Coeff: -1})
		} else {
			e.Terms = append(e.Terms, solver.LinearTerm{V: l.V, Coeff: 1})
		}
	}
	return e
}

// product enumerates the cartesian product of candidates, one choice per
// position, calling emit with each concrete sequence.
func product(candidates [][]solver.Lit, emit func(seq []solver.Lit)) {
	seq := make([]solver.Lit, len(candidates))
	var rec func(i int)
	rec = func(i int) {
		if i == len(candidates) {
			cp := append([]solver.Lit{}, seq...)
			emit(cp)
			return
		}
		for _, c := range candidates[i] {
			seq[i] = c
			rec(i + 1)
		}
	}
	rec(0)
}

// resolveHistoryElem resolves one history label to a single shift-type
// index, rejecting ALL and multi-element resolutions.
func resolveHistoryElem(idx *identifier.Index, label string) (int, error) {
	if label == scenario.All {
		return 0, errs.New(errs.KindInvalidScenario, "history must not include 'ALL'")
	}
	resolved, err := idx.ResolveShiftTypes(scenario.IDList{label})
	if err != nil {
		return 0, err
	}
	if len(resolved) != 1 {
		return 0, errs.New(errs.KindInvalidScenario, fmt.Sprintf("history must not include a nested/group id, but got %q", label))
	}
	return resolved[0], nil
}

// compileShiftTypeSuccessions lowers the pattern preference, including
// history back-stitching for d_begin = 0.
func compileShiftTypeSuccessions(ctx *schedmodel.Context, idx *identifier.Index, pref scenario.ShiftTypeSuccessions, prefIdx int) error {
	people, err := idx.ResolvePeople(pref.Person)
	if err != nil {
		return err
	}
	if len(pref.Pattern) == 0 {
		return errs.New(errs.KindInvalidScenario, "pattern must be non-empty")
	}
	L := len(pref.Pattern)
	normalized, err := normalizePattern(idx, pref.Pattern)
	if err != nil {
		return err
	}

	var allowedStarts map[int]bool
	if len(pref.Date) > 0 {
		dates, err := idx.ResolveDates(pref.Date)
		if err != nil {
			return err
		}
		allowedStarts = make(map[int]bool, len(dates))
		for _, d := range dates {
			allowedStarts[d] = true
		}
	}

	weight, posInf, negInf := weightParts(pref.Weight)

	for _, p := range people {
		personDoc := idx.PersonByIndex[p]
		for d0 := 0; d0+L <= idx.NDays; d0++ {
			if allowedStarts != nil && !allowedStarts[d0] {
				continue
			}
			patterns := [][]normPatternElem{normalized}

			if d0 == 0 && len(personDoc.History) > 0 {
				history := make([]int, len(personDoc.History))
				for i, h := range personDoc.History {
					v, err := resolveHistoryElem(idx, h)
					if err != nil {
						return err
					}
					history[i] = v
				}
				maxK := L
				if len(history) < maxK {
					maxK = len(history)
				}
				for k := 1; k <= maxK; k++ {
					suffix := history[len(history)-k:]
					matches := true
					for i := 0; i < k; i++ {
						if !elemContains(normalized[i], suffix[i]) {
							matches = false
							break
						}
					}
					if matches {
						patterns = append(patterns, normalized[k:])
					}
				}
			}

			for _, pattern := range patterns {
				if len(pattern) == 0 {
					continue
				}
				candidates := make([][]solver.Lit, len(pattern))
				for i, elem := range pattern {
					candidates[i] = matchCandidates(ctx, elem, d0+i, p)
				}
				target := int64(len(pattern))
				seqIdx := 0
				product(candidates, func(seq []solver.Lit) {
					name := fmt.Sprintf("succ_%d_p%d_d%d_seq%d", prefIdx, p, d0, seqIdx)
					seqIdx++
					expr := sumLits(seq)
					isMatch := ctx.Reify(name, expr, solver.OpEQ, solver.OpNE, target)
					ctx.AddObjective(weight, posInf, negInf, solver.Lit{V: isMatch})
					ctx.AddReport(name, isMatch, func(v int64) bool { return v != target })
				})
			}
		}
	}
	return nil
}

// elemContains reports whether the given shift-type index is a possible
// match for pattern position elem (ALL matches everything except it is
// tested against OFF specially by the caller already having resolved real
// history labels).
func elemContains(elem normPatternElem, s int) bool {
	if elem.all {
		return s != scenario.OffShiftIndex
	}
	for _, r := range elem.resolved {
		if r == s {
			return true
		}
	}
	return false
}
