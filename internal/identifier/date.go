package identifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
)

// parseDateLiteral accepts the three date-literal forms ("D", "MM-DD",
// "YYYY-MM-DD") and resolves them against the horizon [start, end], with
// cross-month/cross-year ambiguity guards for the partial forms.
func parseDateLiteral(literal string, start, end time.Time) (time.Time, error) {
	switch {
	case scenario.ReFullDate.MatchString(literal):
		t, err := time.Parse("2006-01-02", literal)
		if err != nil {
			return time.Time{}, errs.Wrap(errs.KindMalformedDate, "invalid YYYY-MM-DD literal "+literal, err)
		}
		return t, nil

	case scenario.ReMonthDay.MatchString(literal):
		if start.Year() != end.Year() {
			return time.Time{}, errs.New(errs.KindMalformedDate,
				fmt.Sprintf("MM-DD literal %q is ambiguous: horizon spans multiple years", literal))
		}
		t, err := time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", start.Year(), literal))
		if err != nil {
			return time.Time{}, errs.Wrap(errs.KindMalformedDate, "invalid MM-DD literal "+literal, err)
		}
		return t, nil

	case scenario.ReDayOfMonth.MatchString(literal):
		if start.Year() != end.Year() || start.Month() != end.Month() {
			return time.Time{}, errs.New(errs.KindMalformedDate,
				fmt.Sprintf("day-of-month literal %q is ambiguous: horizon spans multiple months", literal))
		}
		day, err := strconv.Atoi(literal)
		if err != nil {
			return time.Time{}, errs.Wrap(errs.KindMalformedDate, "invalid day-of-month literal "+literal, err)
		}
		t := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, time.UTC)
		return t, nil

	default:
		return time.Time{}, errs.New(errs.KindMalformedDate, fmt.Sprintf("unrecognized date literal %q", literal))
	}
}

// parseDateExpr resolves a single date-group member: a reserved keyword
// (looked up in dateOf), a range literal "L~R", or a bare date literal.
func parseDateExpr(expr string, dateOf map[string][]int, dateIndex map[time.Time]int, start, end time.Time) ([]int, error) {
	if idx, ok := dateOf[expr]; ok {
		return idx, nil
	}
	if m := scenario.ReRangeLit.FindStringSubmatch(expr); m != nil {
		lo, err := parseDateLiteral(strings.TrimSpace(m[1]), start, end)
		if err != nil {
			return nil, err
		}
		hi, err := parseDateLiteral(strings.TrimSpace(m[2]), start, end)
		if err != nil {
			return nil, err
		}
		if hi.Before(lo) {
			lo, hi = hi, lo
		}
		var out []int
		for d := lo; !d.After(hi); d = d.AddDate(0, 0, 1) {
			idx, ok := dateIndex[d]
			if !ok {
				return nil, errs.New(errs.KindMalformedDate, fmt.Sprintf("date %s in range %q falls outside horizon", d.Format("2006-01-02"), expr))
			}
			out = append(out, idx)
		}
		return out, nil
	}
	t, err := parseDateLiteral(expr, start, end)
	if err != nil {
		return nil, err
	}
	idx, ok := dateIndex[t]
	if !ok {
		return nil, errs.New(errs.KindMalformedDate, fmt.Sprintf("date %s falls outside horizon", t.Format("2006-01-02")))
	}
	return []int{idx}, nil
}
