package validator

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
)

// RequiredRule is the reserved rule name that makes an empty value fail.
// It has no predicate; the Validator handles it before any other rule.
const RequiredRule = "required"

// Predicate reports whether value satisfies a rule. value is already trimmed.
// A predicate must not panic; malformed params make it return false.
type Predicate func(value string, params []string) bool

type registry map[string]Predicate

// builtinRules assembles every rule family. Date rules close over dates so
// "today" and free-form parsing follow the validator's clock and location.
func builtinRules(dates *datenorm.Normalizer) registry {
	r := make(registry, len(stringRules)+len(numericRules)+len(formatRules)+8)
	maps.Copy(r, stringRules)
	maps.Copy(r, numericRules)
	maps.Copy(r, formatRules)
	maps.Copy(r, dateRules(dates))
	return r
}

func (r registry) lookup(name string) (Predicate, bool) {
	fn, ok := r[name]
	return fn, ok && fn != nil
}

func (r registry) names() []string {
	return slices.Sorted(maps.Keys(r))
}

// firstParam returns params[0], or false when the rule was given no parameters.
func firstParam(params []string) (string, bool) {
	if len(params) == 0 {
		return "", false
	}
	return params[0], true
}
