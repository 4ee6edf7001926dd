package datenorm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizer_Today(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 17, 42, 11, 500, time.UTC)
	n := datenorm.New(datenorm.WithClock(fixedClock(now)), datenorm.WithLocation(time.UTC))

	for _, expr := range []string{"today", "Today", "TODAY", "  today  "} {
		got, err := n.Normalize(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, date(2024, time.June, 15), got, expr)
	}

	assert.Equal(t, date(2024, time.June, 15), n.Today())
}

func TestNormalizer_MonthFirst(t *testing.T) {
	t.Parallel()

	n := datenorm.New(datenorm.WithLocation(time.UTC))

	t.Run("valid dates", func(t *testing.T) {
		cases := map[string]time.Time{
			"12/31/2024": date(2024, time.December, 31),
			"12-31-2024": date(2024, time.December, 31),
			"1/2/2023":   date(2023, time.January, 2),
			"01-02-2023": date(2023, time.January, 2),
			"2/29/2024":  date(2024, time.February, 29),
			"3-5/2020":   date(2020, time.March, 5),
		}
		for expr, want := range cases {
			got, err := n.Normalize(expr)
			require.NoError(t, err, expr)
			assert.Equal(t, want, got, expr)
		}
	})

	t.Run("impossible calendar dates", func(t *testing.T) {
		for _, expr := range []string{"13/01/2024", "00/10/2024", "02/30/2024", "2/29/2023", "04/31/2024", "1/0/2024"} {
			_, err := n.Normalize(expr)
			assert.ErrorIs(t, err, datenorm.ErrInvalidDate, expr)
		}
	})
}

func TestNormalizer_FreeForm(t *testing.T) {
	t.Parallel()

	n := datenorm.New(datenorm.WithLocation(time.UTC))

	t.Run("iso date", func(t *testing.T) {
		got, err := n.Normalize("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 15), got)
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		got, err := n.Normalize("2024-03-15T13:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 15), got)
		assert.Zero(t, got.Hour())
		assert.Zero(t, got.Minute())
	})

	t.Run("textual month", func(t *testing.T) {
		got, err := n.Normalize("March 15, 2024")
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 15), got)
	})

	t.Run("same day in different layouts compares equal", func(t *testing.T) {
		a, err := n.Normalize("03/15/2024")
		require.NoError(t, err)
		b, err := n.Normalize("2024-03-15 18:30:00")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})
}

func TestNormalizer_Invalid(t *testing.T) {
	t.Parallel()

	n := datenorm.New(datenorm.WithLocation(time.UTC))
	for _, expr := range []string{"", "   ", "not a date", "yesterday-ish", "abc/def/ghij"} {
		_, err := n.Normalize(expr)
		assert.ErrorIs(t, err, datenorm.ErrInvalidDate, expr)
		assert.False(t, n.Valid(expr), expr)
	}
}

func TestNormalizer_Location(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:30 UTC is already the next day at UTC+3.
	now := time.Date(2024, time.June, 15, 22, 30, 0, 0, time.UTC)
	n := datenorm.New(datenorm.WithClock(fixedClock(now)), datenorm.WithLocation(loc))

	got, err := n.Normalize("today")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 16, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, n.Location())
}

func TestNormalize_Default(t *testing.T) {
	t.Parallel()

	got, err := datenorm.Normalize("today")
	require.NoError(t, err)
	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
	assert.Zero(t, got.Second())
	assert.WithinDuration(t, time.Now(), got, 24*time.Hour)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, time.January, 2, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, date(2024, time.January, 2), datenorm.Truncate(in))
}
