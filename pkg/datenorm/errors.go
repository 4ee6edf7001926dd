package datenorm

import "errors"

// ErrInvalidDate is returned when an expression does not describe a valid calendar date.
var ErrInvalidDate = errors.New("invalid date")
