package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
	"github.com/dmitrymomot/valuecheck/pkg/validator"
)

// referenceNow is "today" for every test validator.
var referenceNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestValidator(t *testing.T, opts ...validator.Option) *validator.Validator {
	t.Helper()
	dates := datenorm.New(
		datenorm.WithClock(func() time.Time { return referenceNow }),
		datenorm.WithLocation(time.UTC),
	)
	v, err := validator.New(append([]validator.Option{validator.WithDateNormalizer(dates)}, opts...)...)
	require.NoError(t, err)
	return v
}

func assertPasses(t *testing.T, v *validator.Validator, spec string, values ...string) {
	t.Helper()
	for _, value := range values {
		errs, err := v.Validate([]string{spec}, value)
		require.NoError(t, err, "%s on %q", spec, value)
		assert.Empty(t, errs, "%s should accept %q", spec, value)
	}
}

func assertFails(t *testing.T, v *validator.Validator, spec string, values ...string) {
	t.Helper()
	for _, value := range values {
		errs, err := v.Validate([]string{spec}, value)
		require.NoError(t, err, "%s on %q", spec, value)
		if assert.Len(t, errs, 1, "%s should reject %q", spec, value) {
			assert.Equal(t, spec, errs[0].Rule)
		}
	}
}

func assertMessage(t *testing.T, v *validator.Validator, spec, value, message string) {
	t.Helper()
	errs, err := v.Validate([]string{spec}, value)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, validator.ValidationError{Rule: spec, Message: message}, errs[0])
}
