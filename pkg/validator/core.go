package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single failed rule.
type ValidationError struct {
	Rule    string `json:"rule"`    // specifier as supplied, e.g. "minLength(5)"
	Message string `json:"message"` // interpolated message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// ValidationErrors is the ordered list of failed rules.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match a non-empty ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether the specifier failed.
func (ve ValidationErrors) Has(rule string) bool {
	for _, err := range ve {
		if err.Rule == rule {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the specifier.
func (ve ValidationErrors) Get(rule string) []string {
	var messages []string
	for _, err := range ve {
		if err.Rule == rule {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Rules returns the failed specifiers in order, without duplicates.
func (ve ValidationErrors) Rules() []string {
	var rules []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Rule] {
			rules = append(rules, err.Rule)
			seen[err.Rule] = true
		}
	}
	return rules
}

// Messages returns every message in order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
