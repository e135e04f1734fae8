// Package identifier resolves scenario-level IDs, keywords, groups, and date
// expressions into sorted, de-duplicated index sets over days / shift types
// / people.
package identifier

import (
	"fmt"
	"sort"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/calendar"
	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
)

// Index owns the three resolver maps plus the materialized horizon. It is
// built once per solve and is read-only thereafter.
type Index struct {
	NDays, NShiftTypes, NPeople int
	Dates                       []time.Time

	ShiftTypeOf map[string][]int // map_sid_s
	PersonOf    map[string][]int // map_pid_p
	DateOf      map[string][]int // map_did_d

	// PersonByIndex holds the declared person record for each resolved index
	// p, used by preferences that need a person's raw fields (e.g. history).
	PersonByIndex []scenario.Person
}

// Build resolves every namespace in order: items before ALL/OFF keywords
// before groups for shift types and people; for dates, literals before
// calendar keywords before weekday names before user-declared groups.
func Build(doc *scenario.Document) (*Index, error) {
	start, err := time.Parse("2006-01-02", doc.Dates.Range.StartDate)
	if err != nil {
		return nil, errs.Wrap(errs.KindMalformedDate, "invalid startDate", err)
	}
	end, err := time.Parse("2006-01-02", doc.Dates.Range.EndDate)
	if err != nil {
		return nil, errs.Wrap(errs.KindMalformedDate, "invalid endDate", err)
	}
	if end.Before(start) {
		return nil, errs.New(errs.KindInvalidScenario, "endDate is before startDate")
	}

	idx := &Index{
		NShiftTypes: len(doc.ShiftTypes.Items),
		NPeople:     len(doc.People.Items),
		ShiftTypeOf: make(map[string][]int),
		PersonOf:    make(map[string][]int),
		DateOf:      make(map[string][]int),
	}
	idx.NDays = int(end.Sub(start).Hours()/24) + 1
	idx.Dates = make([]time.Time, idx.NDays)
	for d := 0; d < idx.NDays; d++ {
		idx.Dates[d] = start.AddDate(0, 0, d)
	}

	if err := idx.buildShiftTypes(doc); err != nil {
		return nil, err
	}
	if err := idx.buildPeople(doc); err != nil {
		return nil, err
	}
	if err := idx.buildDates(doc, start, end); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx *Index) buildShiftTypes(doc *scenario.Document) error {
	for s, item := range doc.ShiftTypes.Items {
		idx.ShiftTypeOf[item.ID] = []int{s}
	}
	all := make([]int, idx.NShiftTypes)
	for s := range all {
		all[s] = s
	}
	idx.ShiftTypeOf[scenario.All] = all
	idx.ShiftTypeOf[scenario.Off] = []int{scenario.OffShiftIndex}

	for _, g := range doc.ShiftTypes.Groups {
		resolved, err := unionMembers(idx.ShiftTypeOf, g.Members, "shift type")
		if err != nil {
			return err
		}
		idx.ShiftTypeOf[g.ID] = resolved
	}
	return nil
}

func (idx *Index) buildPeople(doc *scenario.Document) error {
	idx.PersonByIndex = make([]scenario.Person, len(doc.People.Items))
	for p, item := range doc.People.Items {
		idx.PersonOf[item.ID] = []int{p}
		idx.PersonByIndex[p] = item
	}
	all := make([]int, idx.NPeople)
	for p := range all {
		all[p] = p
	}
	idx.PersonOf[scenario.All] = all

	for _, g := range doc.People.Groups {
		resolved, err := unionMembers(idx.PersonOf, g.Members, "person")
		if err != nil {
			return err
		}
		idx.PersonOf[g.ID] = resolved
	}
	return nil
}

func (idx *Index) buildDates(doc *scenario.Document, start, end time.Time) error {
	dateIndex := make(map[time.Time]int, idx.NDays)
	all := make([]int, idx.NDays)
	for d := 0; d < idx.NDays; d++ {
		all[d] = d
		dateIndex[idx.Dates[d]] = d
		idx.DateOf[idx.Dates[d].Format("2006-01-02")] = []int{d}
	}
	idx.DateOf[scenario.All] = all

	// WEEKDAY/WEEKEND are always day-of-week, never the calendar predicate,
	// whether or not a country is configured.
	var weekday, weekend []int
	for d := 0; d < idx.NDays; d++ {
		wd := idx.Dates[d].Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekend = append(weekend, d)
		} else {
			weekday = append(weekday, d)
		}
	}
	idx.DateOf[scenario.KeywordWeekday] = weekday
	idx.DateOf[scenario.KeywordWeekend] = weekend

	if doc.Country != nil {
		pred, err := calendar.Lookup(*doc.Country)
		if err != nil {
			return errs.Wrap(errs.KindInvalidScenario, "resolving calendar", err)
		}
		for _, kw := range scenario.CalendarKeywords {
			if kw == scenario.KeywordWeekday || kw == scenario.KeywordWeekend {
				continue
			}
			var days []int
			labor := kw == scenario.KeywordWorkdayLabor || kw == scenario.KeywordFreedayLabor
			wantFree := kw == scenario.KeywordFreeday || kw == scenario.KeywordFreedayLabor
			for d := 0; d < idx.NDays; d++ {
				free, err := pred(idx.Dates[d], labor)
				if err != nil {
					return errs.Wrap(errs.KindInvalidScenario, "evaluating calendar predicate", err)
				}
				if free == wantFree {
					days = append(days, d)
				}
			}
			idx.DateOf[kw] = days
		}
	}

	for wi, name := range scenario.Weekdays {
		var days []int
		want := time.Weekday((wi + 1) % 7) // Weekdays[0]=="MONDAY" -> time.Monday(1)
		for d := 0; d < idx.NDays; d++ {
			if idx.Dates[d].Weekday() == want {
				days = append(days, d)
			}
		}
		idx.DateOf[name] = days
	}

	for _, g := range doc.Dates.Groups {
		seen := map[int]bool{}
		for _, member := range g.Members {
			resolved, err := parseDateExpr(member, idx.DateOf, dateIndex, start, end)
			if err != nil {
				return err
			}
			for _, d := range resolved {
				seen[d] = true
			}
		}
		var out []int
		for d := range seen {
			out = append(out, d)
		}
		sort.Ints(out)
		idx.DateOf[g.ID] = out
	}
	return nil
}

// unionMembers flattens and de-duplicates the index lists of group.Members,
// each of which must already be a key in resolved (items or earlier groups
// in declaration order) — mirrors the original's declaration-ordered group
// resolution with no forward references.
func unionMembers(resolved map[string][]int, members []string, label string) ([]int, error) {
	seen := map[int]bool{}
	for _, m := range members {
		ids, ok := resolved[m]
		if !ok {
			return nil, errs.New(errs.KindUnresolvedIdentifier, fmt.Sprintf("unresolved %s id %q", label, m))
		}
		for _, id := range ids {
			seen[id] = true
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}
