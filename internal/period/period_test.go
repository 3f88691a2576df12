package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPeriods_Window(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.Local)
	periods := MonthlyPeriods(now)

	assert.Len(t, periods, 13)
	assert.Equal(t, "2025.04", periods[0].Label)
	assert.Equal(t, "2025.10", periods[CurrentMonthIndex].Label)
	assert.Equal(t, "2026.04", periods[12].Label)

	current := periods[CurrentMonthIndex]
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.Local), current.Start)
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.Local), current.End)
}

// February gets its real last day, leap years included.
func TestMonthlyPeriods_MonthLengths(t *testing.T) {
	periods := MonthlyPeriods(time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local))

	feb := periods[CurrentMonthIndex]
	assert.Equal(t, "2024.02", feb.Label)
	assert.Equal(t, 29, feb.End.Day())

	periods = MonthlyPeriods(time.Date(2025, 2, 10, 0, 0, 0, 0, time.Local))
	assert.Equal(t, 28, periods[CurrentMonthIndex].End.Day())
}

func TestMonthlyPeriods_YearBoundary(t *testing.T) {
	periods := MonthlyPeriods(time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local))

	assert.Equal(t, "2024.07", periods[0].Label)
	assert.Equal(t, "2025.01", periods[CurrentMonthIndex].Label)
	assert.Equal(t, "2025.07", periods[12].Label)
}

func TestShift_RoundTrip(t *testing.T) {
	periods := MonthlyPeriods(time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local))

	past := Shift(periods, DirectionUp)
	assert.Len(t, past, 13)
	assert.Equal(t, "2025.09", past[CurrentMonthIndex].Label)

	back := Shift(past, DirectionDown)
	assert.Equal(t, periods, back)
}

// Shifting across a 31-day month keeps every period a true calendar month.
func TestShift_PreservesMonthBoundaries(t *testing.T) {
	periods := MonthlyPeriods(time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local))
	shifted := Shift(periods, DirectionUp)

	for _, p := range shifted {
		assert.Equal(t, 1, p.Start.Day())
		assert.Equal(t, p.Start.AddDate(0, 1, -1), p.End)
	}
}

func TestContains_InclusiveBounds(t *testing.T) {
	p := MonthlyPeriods(time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local))[CurrentMonthIndex]

	assert.True(t, p.Contains(time.Date(2025, 10, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, p.Contains(time.Date(2025, 10, 31, 23, 59, 0, 0, time.Local)))
	assert.False(t, p.Contains(time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)))
	assert.False(t, p.Contains(time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local)))
}
