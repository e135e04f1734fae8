package calendar

import (
	"fmt"
	"time"
)

var taiwanValidRange = struct{ start, end time.Time }{
	start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	end:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
}

// taiwanSpecialDates overrides the default weekday/weekend classification
// for the 2025 government work calendar (DGPA adjusted holidays and
// make-up workdays).
var taiwanSpecialDates = map[string]bool{
	"2025-01-01": true,  // New Year's Day
	"2025-01-27": true,  // Adjusted holiday (Lunar New Year's Eve eve)
	"2025-01-28": true,  // Lunar New Year's Eve
	"2025-01-29": true,  // Lunar New Year
	"2025-01-30": true,  // Lunar New Year
	"2025-01-31": true,  // Lunar New Year
	"2025-02-08": false, // Make-up workday
	"2025-02-28": true,  // Peace Memorial Day
	"2025-04-03": true,  // Make-up holiday (Children's Day / Tomb Sweeping Day)
	"2025-04-04": true,  // Children's Day / Tomb Sweeping Day
	"2025-05-30": true,  // Make-up holiday (Dragon Boat Festival)
	"2025-10-06": true,  // Mid-Autumn Festival
	"2025-10-10": true,  // National Day
}

const taiwanLaborDay = "2025-05-01"

func taiwanIsFreeday(date time.Time, isLaborDay bool) (bool, error) {
	date = date.UTC()
	if date.Before(taiwanValidRange.start) || date.After(taiwanValidRange.end) {
		return false, fmt.Errorf("calendar: date %s outside supported range [%s, %s]",
			date.Format("2006-01-02"), taiwanValidRange.start.Format("2006-01-02"), taiwanValidRange.end.Format("2006-01-02"))
	}

	key := date.Format("2006-01-02")
	if free, ok := taiwanSpecialDates[key]; ok {
		return free, nil
	}

	if isLaborDay && key == taiwanLaborDay {
		return true, nil
	}

	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}
