// Package datenorm turns textual date expressions into calendar dates
// truncated to midnight, suitable for day-level comparisons.
//
// Accepted inputs, checked in order:
//
//   - "today" (case-insensitive): the current date in the normalizer's location.
//   - MM/DD/YYYY or MM-DD-YYYY with one or two digit month and day.
//   - Any other layout understood by github.com/araddon/dateparse.
//
// Every branch returns a date with the time of day zeroed, so values entered
// in different layouts compare consistently. Unparseable input and impossible
// calendar dates (e.g. 02/30/2024) return ErrInvalidDate.
//
// # Usage
//
//	n := datenorm.New(datenorm.WithLocation(time.UTC))
//	d, err := n.Normalize("12/31/2024")
//	if errors.Is(err, datenorm.ErrInvalidDate) {
//		// reject input
//	}
//
// A Normalizer is immutable and safe for concurrent use.
package datenorm
