// Package preference lowers each declarative preference variant into
// constraints and/or objective terms on a schedmodel.Context. One file
// per variant.
package preference

import (
	"fmt"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
)

// Compile lowers every preference in order. AtMostOneShiftPerDay's
// mandatory presence is checked by scenario.Document.Validate before this
// is ever called.
func Compile(ctx *schedmodel.Context, idx *identifier.Index, prefs []scenario.Preference) error {
	totalShifts, err := totalPreferredShifts(idx, prefs)
	if err != nil {
		return err
	}

	for i, p := range prefs {
		var err error
		switch v := p.(type) {
		case scenario.ShiftTypeRequirement:
			err = compileShiftTypeRequirement(ctx, idx, v, i)
		case scenario.AtMostOneShiftPerDay:
			err = compileAtMostOneShiftPerDay(ctx, idx)
		case scenario.ShiftRequest:
			err = compileShiftRequest(ctx, idx, v, i)
		case scenario.ShiftTypeSuccessions:
			err = compileShiftTypeSuccessions(ctx, idx, v, i)
		case scenario.ShiftCount:
			err = compileShiftCount(ctx, idx, v, i, totalShifts)
		case scenario.ShiftAffinity:
			err = compileShiftAffinity(ctx, idx, v, i)
		default:
			err = errs.New(errs.KindInvalidScenario, fmt.Sprintf("preferences[%d]: unhandled preference kind %T", i, p))
		}
		if err != nil {
			return fmt.Errorf("preferences[%d] (%s): %w", i, p.Kind(), err)
		}
	}
	return nil
}

// totalPreferredShifts sums, across every ShiftTypeRequirement preference,
// (preferred_num_people or required_num_people) * |shift_types| * n_days —
// the AVG_SHIFTS_PER_PERSON numerator used by ShiftCount targets.
func totalPreferredShifts(idx *identifier.Index, prefs []scenario.Preference) (int64, error) {
	var total int64
	for _, p := range prefs {
		str, ok := p.(scenario.ShiftTypeRequirement)
		if !ok {
			continue
		}
		shiftTypes, err := idx.ResolveShiftTypes(str.ShiftType)
		if err != nil {
			return 0, err
		}
		n := str.RequiredNumPeople
		if str.PreferredNumPeople != nil {
			n = *str.PreferredNumPeople
		}
		total += int64(n) * int64(len(shiftTypes)) * int64(idx.NDays)
	}
	return total, nil
}

// weightParts splits a scenario.Weight into the (finite-weight, posInf,
// negInf) triple schedmodel.Context.AddObjective expects.
func weightParts(w scenario.Weight) (weight int64, posInf, negInf bool) {
	switch {
	case w.IsPosInf():
		return 0, true, false
	case w.IsNegInf():
		return 0, false, true
	default:
		return int64(w), false, false
	}
}
