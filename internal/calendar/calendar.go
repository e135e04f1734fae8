// Package calendar supplies the external is_freeday predicate. It is
// consulted only during identifier resolution and carries no holiday data
// of its own beyond the registered country predicates.
package calendar

import (
	"fmt"
	"time"
)

// Predicate reports whether date is a free day for the given country. When
// isLaborDay is true, the predicate additionally treats the country's Labor
// Day as a free day even on an otherwise-working weekday.
type Predicate func(date time.Time, isLaborDay bool) (bool, error)

var registry = map[string]Predicate{
	"TW": taiwanIsFreeday,
}

// Lookup returns the registered predicate for country, or an error if the
// country has no registered calendar.
func Lookup(country string) (Predicate, error) {
	p, ok := registry[country]
	if !ok {
		return nil, fmt.Errorf("calendar: unsupported country %q", country)
	}
	return p, nil
}
