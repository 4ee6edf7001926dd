package datenorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const today = "today"

var monthFirstPattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the time source used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithLocation sets the location dates are interpreted and truncated in.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		if loc != nil {
			n.loc = loc
		}
	}
}

// Normalizer parses date expressions into midnight-truncated dates.
type Normalizer struct {
	now func() time.Time
	loc *time.Location
}

// New creates a Normalizer using the wall clock and time.Local by default.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New()

// Normalize parses expr with the default normalizer.
func Normalize(expr string) (time.Time, error) {
	return defaultNormalizer.Normalize(expr)
}

// Location returns the location dates are produced in.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Today returns the current date at midnight.
func (n *Normalizer) Today() time.Time {
	return Truncate(n.now().In(n.loc))
}

// Normalize converts expr into a date at midnight.
func (n *Normalizer) Normalize(expr string) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, ErrInvalidDate
	}

	if strings.EqualFold(expr, today) {
		return n.Today(), nil
	}

	if m := monthFirstPattern.FindStringSubmatch(expr); m != nil {
		return n.fromParts(expr, m[1], m[2], m[3])
	}

	parsed, err := dateparse.ParseIn(expr, n.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, expr, err)
	}
	return Truncate(parsed.In(n.loc)), nil
}

// Valid reports whether expr normalizes to a date.
func (n *Normalizer) Valid(expr string) bool {
	_, err := n.Normalize(expr)
	return err == nil
}

func (n *Normalizer) fromParts(expr, month, day, year string) (time.Time, error) {
	// The pattern guarantees digits, so Atoi cannot fail.
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)

	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, expr)
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, n.loc)
	// time.Date normalizes overflow (02/30 -> 03/01); reject those instead.
	if t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, expr)
	}
	return t, nil
}

// Truncate zeroes the time of day of t, keeping its location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
