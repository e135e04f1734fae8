package scenario

import "regexp"

// Reserved tokens that may not be reused as user-defined IDs.
const (
	All = "ALL"
	Off = "OFF"

	// OffShiftIndex is the pseudo shift-type index for OFF: never
	// materialized as a shift[d,s,p] variable, used only in lookups.
	OffShiftIndex = -1
)

// Weekday names, reserved in the date namespace, ordered Monday-first.
// time.Weekday counts from Sunday == 0, so Weekdays[i] corresponds to
// time.Weekday((i+1)%7).
var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// Calendar-predicate date keywords.
const (
	KeywordWeekday       = "WEEKDAY"
	KeywordWeekend       = "WEEKEND"
	KeywordWorkday       = "WORKDAY"
	KeywordFreeday       = "FREEDAY"
	KeywordWorkdayLabor  = "WORKDAY(LABOR)"
	KeywordFreedayLabor  = "FREEDAY(LABOR)"
)

var CalendarKeywords = []string{
	KeywordWeekday, KeywordWeekend, KeywordWorkday, KeywordFreeday,
	KeywordWorkdayLabor, KeywordFreedayLabor,
}

// Date-literal formats, selected by regex.
var (
	ReDayOfMonth  = regexp.MustCompile(`^\d{1,2}$`)
	ReMonthDay    = regexp.MustCompile(`^\d{2}-\d{2}$`)
	ReFullDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	ReRangeLit    = regexp.MustCompile(`^(.+)~(.+)$`)
)

// IsReservedDateToken reports whether id is a reserved date-namespace token
// (ALL, a calendar keyword, a weekday name, or a date-literal shaped string)
// and therefore may not be used as a user-declared date group ID.
func IsReservedDateToken(id string) bool {
	if id == All {
		return true
	}
	for _, k := range CalendarKeywords {
		if id == k {
			return true
		}
	}
	for _, w := range Weekdays {
		if id == w {
			return true
		}
	}
	return ReDayOfMonth.MatchString(id) || ReMonthDay.MatchString(id) || ReFullDate.MatchString(id) || ReRangeLit.MatchString(id)
}
