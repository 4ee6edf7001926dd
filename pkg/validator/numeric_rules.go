package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRegex        = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+$`)
	integerRegex        = regexp.MustCompile(`^-?[0-9]+$`)
	naturalRegex        = regexp.MustCompile(`^[0-9]+$`)
	naturalNoZeroRegex  = regexp.MustCompile(`^[1-9][0-9]*$`)
	numericRegex        = regexp.MustCompile(`^[0-9]+$`)
	numericDashRegex    = regexp.MustCompile(`^[0-9\-\s]+$`)
	numericCountryRegex = regexp.MustCompile(`^[0-9]{1,3}$`)
)

var numericRules = registry{
	"isDecimal":             matches(decimalRegex),
	"isInteger":             matches(integerRegex),
	"isNaturalNumber":       matches(naturalRegex),
	"isNaturalNumberNoZero": matches(naturalNoZeroRegex),
	"isNumeric":             matches(numericRegex),
	"isNumericDash":         matches(numericDashRegex),
	"isNumericCountryCode":  matches(numericCountryRegex),
	"greaterThan": compareNumber(func(value, limit float64) bool {
		return value > limit
	}),
	"lessThan": compareNumber(func(value, limit float64) bool {
		return value < limit
	}),
}

// compareNumber requires value to be a decimal and the first parameter to
// parse as a finite float; anything else fails the rule.
func compareNumber(cmp func(value, limit float64) bool) Predicate {
	return func(value string, params []string) bool {
		if !decimalRegex.MatchString(value) {
			return false
		}
		raw, ok := firstParam(params)
		if !ok {
			return false
		}
		limit, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(limit) {
			return false
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return cmp(v, limit)
	}
}
