package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is returned by Check when at least one rule fails.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned when a specifier names a rule that is not registered.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRule is returned when a specifier is structurally unusable,
	// e.g. "required" with parameters.
	ErrInvalidRule = errors.New("invalid validation rule")

	// ErrInvalidMessages is returned when a message catalog cannot be decoded.
	ErrInvalidMessages = errors.New("invalid message catalog")
)

// RuleError reports a rule configuration problem.
type RuleError struct {
	Rule string // original specifier
	Name string // parsed rule name
	Err  error
}

func (e *RuleError) Error() string {
	if e.Name != "" && e.Name != e.Rule {
		return fmt.Sprintf("%v: %q (name %q)", e.Err, e.Rule, e.Name)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Rule)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err comes from a misconfigured rule list
// rather than from the validated data.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownRule) || errors.Is(err, ErrInvalidRule)
}
