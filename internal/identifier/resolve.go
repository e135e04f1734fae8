package identifier

import (
	"fmt"
	"sort"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
)

// resolveAll unions the index sets for every id in ids against m, erroring
// on any unresolved id. Returns nil, nil for an empty ids list — callers
// decide what "absent" means (usually "all").
func resolveAll(m map[string][]int, ids scenario.IDList, label string) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := map[int]bool{}
	for _, id := range ids {
		resolved, ok := m[id]
		if !ok {
			return nil, errs.New(errs.KindUnresolvedIdentifier, fmt.Sprintf("unresolved %s id %q", label, id))
		}
		for _, r := range resolved {
			seen[r] = true
		}
	}
	out := make([]int, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Ints(out)
	return out, nil
}

// ResolveShiftTypes resolves a shift-type IDList. An empty list resolves to
// nil (caller-dependent meaning), never to "ALL" implicitly.
func (idx *Index) ResolveShiftTypes(ids scenario.IDList) ([]int, error) {
	return resolveAll(idx.ShiftTypeOf, ids, "shift type")
}

// ResolvePeople resolves a person IDList.
func (idx *Index) ResolvePeople(ids scenario.IDList) ([]int, error) {
	return resolveAll(idx.PersonOf, ids, "person")
}

// ResolveDates resolves a date IDList. An empty list means "all days"
// (e.g. ShiftTypeRequirement.date = null).
func (idx *Index) ResolveDates(ids scenario.IDList) ([]int, error) {
	if len(ids) == 0 {
		all := make([]int, idx.NDays)
		for d := range all {
			all[d] = d
		}
		return all, nil
	}
	return resolveAll(idx.DateOf, ids, "date")
}

// IsUniverse reports whether the resolved shift-type set equals the full
// shift-type universe (used by ShiftRequest/ShiftCount to decide whether to
// special-case the OFF indicator).
func (idx *Index) IsUniverse(resolvedShiftTypes []int) bool {
	if len(resolvedShiftTypes) != idx.NShiftTypes {
		return false
	}
	// The resolved set is sorted and de-duplicated, so it equals the
	// universe exactly when its i-th element is shift type i.
	for i, s := range resolvedShiftTypes {
		if s != i {
			return false
		}
	}
	return true
}
