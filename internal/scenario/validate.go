package scenario

import (
	"fmt"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/validation"
)

// Validate checks the structural invariants that don't require resolving
// identifiers or building the solver context: duplicate/reserved
// IDs, date-range sanity, the mandatory AtMostOneShiftPerDay preference, and
// weight well-formedness. Identifier resolution errors (unknown IDs, empty
// resolved sets) surface later, during context build, since they require
// the full group/keyword expansion machinery in internal/identifier.
func (d *Document) Validate() *validation.Result {
	result := validation.NewResult()

	if d.APIVersion != "alpha" {
		result.AddError(validation.CodeUnsupportedAPIVersion,
			fmt.Sprintf("unsupported apiVersion %q: only \"alpha\" is supported", d.APIVersion))
	}

	if d.Country != nil && *d.Country != "TW" {
		result.AddError(validation.CodeUnsupportedCountry,
			fmt.Sprintf("unsupported country %q: only \"TW\" is supported", *d.Country))
	}

	start, errStart := time.Parse("2006-01-02", d.Dates.Range.StartDate)
	end, errEnd := time.Parse("2006-01-02", d.Dates.Range.EndDate)
	if errStart != nil || errEnd != nil {
		result.AddError(validation.CodeInvalidDateRange,
			fmt.Sprintf("malformed startDate/endDate: %q / %q", d.Dates.Range.StartDate, d.Dates.Range.EndDate))
	} else if end.Before(start) {
		result.AddError(validation.CodeInvalidDateRange,
			fmt.Sprintf("endDate %s is before startDate %s", d.Dates.Range.EndDate, d.Dates.Range.StartDate))
	}

	validateNamespace(result, "person", d.People.Items, func(p Person) string { return p.ID }, d.People.Groups)
	validateNamespace(result, "shift type", d.ShiftTypes.Items, func(s ShiftType) string { return s.ID }, d.ShiftTypes.Groups)
	validateDateGroups(result, d.Dates.Groups)

	hasAtMostOne := false
	for _, p := range d.Preferences {
		if p.Kind() == KindAtMostOneShiftPerDay {
			hasAtMostOne = true
		}
		if err := validateWeight(p); err != "" {
			result.AddError(validation.CodeInvalidWeight, err)
		}
	}
	if !hasAtMostOne {
		result.AddError(validation.CodeMissingRequiredPref,
			"scenario must include an AtMostOneShiftPerDay preference")
	}

	return result
}

func validateNamespace[T any](result *validation.Result, label string, items []T, idOf func(T) string, groups []Group) {
	seen := make(map[string]bool)
	for _, it := range items {
		id := idOf(it)
		if id == All || id == Off {
			result.AddError(validation.CodeReservedIDReuse, fmt.Sprintf("%s id %q reuses a reserved keyword", label, id))
			continue
		}
		if seen[id] {
			result.AddError(validation.CodeDuplicateID, fmt.Sprintf("duplicate %s id %q", label, id))
		}
		seen[id] = true
	}
	for _, g := range groups {
		if g.ID == All || g.ID == Off {
			result.AddError(validation.CodeReservedIDReuse, fmt.Sprintf("%s group id %q reuses a reserved keyword", label, g.ID))
			continue
		}
		if seen[g.ID] {
			result.AddError(validation.CodeDuplicateID, fmt.Sprintf("duplicate %s id %q", label, g.ID))
		}
		seen[g.ID] = true
	}
}

func validateDateGroups(result *validation.Result, groups []Group) {
	seen := make(map[string]bool)
	for _, g := range groups {
		if IsReservedDateToken(g.ID) {
			result.AddError(validation.CodeReservedIDReuse, fmt.Sprintf("date group id %q reuses a reserved keyword or date-literal shape", g.ID))
			continue
		}
		if seen[g.ID] {
			result.AddError(validation.CodeDuplicateID, fmt.Sprintf("duplicate date group id %q", g.ID))
		}
		seen[g.ID] = true
	}
}

// validateWeight returns a non-empty message if the preference's weight (or
// the sign-restricted combination in ShiftCount/ShiftTypeRequirement) is
// disallowed.
func validateWeight(p Preference) string {
	switch v := p.(type) {
	case ShiftTypeRequirement:
		if v.PreferredNumPeople == nil && !v.Weight.IsFinite() {
			// hard-only form carries no soft term; infinite weight here is meaningless but harmless
			return ""
		}
		if v.PreferredNumPeople != nil && !v.Weight.IsFinite() {
			return "ShiftTypeRequirement with preferred_num_people cannot use an infinite weight; encode hard requirements via required_num_people instead"
		}
	case ShiftCount:
		for i, expr := range v.Expression {
			if expr == "|x - T|^2" && v.Weight.IsPosInf() {
				return fmt.Sprintf("ShiftCount[%d] expression %q cannot use +INF weight", i, expr)
			}
		}
	}
	return ""
}
