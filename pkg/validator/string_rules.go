package validator

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

var (
	alphaRegex        = regexp.MustCompile(`(?i)^[a-z]+$`)
	alphaDashRegex    = regexp.MustCompile(`(?i)^[a-z_\-]+$`)
	alphaNumericRegex = regexp.MustCompile(`(?i)^[a-z0-9]+$`)
	base64Regex       = regexp.MustCompile(`(?i)^[a-z0-9/+=]+$`)
	lengthBoundRegex  = regexp.MustCompile(`^[0-9]+$`)
)

var stringRules = registry{
	"isAlpha":        matches(alphaRegex),
	"isAlphaDash":    matches(alphaDashRegex),
	"isAlphaNumeric": matches(alphaNumericRegex),
	"isBase64":       matches(base64Regex),
	"isLength": lengthRule(func(length, bound int) bool {
		return length == bound
	}),
	"maxLength": lengthRule(func(length, bound int) bool {
		return length <= bound
	}),
	"minLength": lengthRule(func(length, bound int) bool {
		return length >= bound
	}),
}

// matches builds a predicate that ignores params and tests value against re.
func matches(re *regexp.Regexp) Predicate {
	return func(value string, _ []string) bool {
		return re.MatchString(value)
	}
}

// lengthRule compares the character count of value with the first parameter.
// The bound must be a plain non-negative integer, otherwise the rule fails.
func lengthRule(cmp func(length, bound int) bool) Predicate {
	return func(value string, params []string) bool {
		raw, ok := firstParam(params)
		if !ok || !lengthBoundRegex.MatchString(raw) {
			return false
		}
		bound, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		return cmp(utf8.RuneCountInString(value), bound)
	}
}
