package api

import "errors"

var (
	// ErrMalformedBody is returned when the request body is not valid JSON.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrUnsupportedValue is returned for object or array values.
	ErrUnsupportedValue = errors.New("value must be a string, number, boolean or null")
)

// Error codes in the response envelope.
const (
	CodeBadRequest     = "bad_request"
	CodeInvalidRequest = "invalid_request"
	CodeInvalidRule    = "invalid_rule"
	CodeRateLimited    = "rate_limited"
	CodeInternal       = "internal_error"
)
