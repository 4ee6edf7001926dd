package validator

import (
	"time"

	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
)

func dateRules(dates *datenorm.Normalizer) registry {
	return registry{
		"isDate": func(value string, _ []string) bool {
			return dates.Valid(value)
		},
		"greaterThanDate": compareDates(dates, func(value, limit time.Time) bool {
			return value.After(limit)
		}),
		"greaterThanOrEqualDate": compareDates(dates, func(value, limit time.Time) bool {
			return !value.Before(limit)
		}),
		"lessThanDate": compareDates(dates, func(value, limit time.Time) bool {
			return value.Before(limit)
		}),
		"lessThanOrEqualDate": compareDates(dates, func(value, limit time.Time) bool {
			return !value.After(limit)
		}),
	}
}

// compareDates normalizes both the value and the first parameter; if either
// is not a date the rule fails.
func compareDates(dates *datenorm.Normalizer, cmp func(value, limit time.Time) bool) Predicate {
	return func(value string, params []string) bool {
		raw, ok := firstParam(params)
		if !ok {
			return false
		}
		limit, err := dates.Normalize(raw)
		if err != nil {
			return false
		}
		entered, err := dates.Normalize(value)
		if err != nil {
			return false
		}
		return cmp(entered, limit)
	}
}
