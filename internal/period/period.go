package period

import (
	"fmt"
	"time"
)

// Period is one settlement month: first and last calendar day plus the
// YYYY.MM label shown on the task board.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type Direction string

const (
	DirectionUp   Direction = "up"   // toward the past
	DirectionDown Direction = "down" // toward the future
)

// CurrentMonthIndex is the position of the current month inside the window
// returned by MonthlyPeriods: six past months come first.
const CurrentMonthIndex = 6

const windowSize = 13

// MonthlyPeriods builds the rolling 13-month window around now: six months
// back, the current month, six months ahead.
func MonthlyPeriods(now time.Time) []Period {
	periods := make([]Period, 0, windowSize)
	for i := -6; i <= 6; i++ {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, i, 0)
		periods = append(periods, monthOf(first))
	}
	return periods
}

// Shift moves the whole window one month in the given direction, keeping the
// 13-period span and recomputing every month's first and last day.
func Shift(periods []Period, direction Direction) []Period {
	delta := 1
	if direction == DirectionUp {
		delta = -1
	}

	out := make([]Period, 0, len(periods))
	for _, p := range periods {
		// Start is always the first of a month, so month arithmetic cannot
		// overflow into a neighboring month.
		out = append(out, monthOf(p.Start.AddDate(0, delta, 0)))
	}
	return out
}

func monthOf(first time.Time) Period {
	last := first.AddDate(0, 1, -1)
	return Period{
		Start: first,
		End:   last,
		Label: fmt.Sprintf("%d.%02d", first.Year(), int(first.Month())),
	}
}

// Contains reports whether t falls inside the period, inclusive on both
// ends. Only the calendar date matters, not the time of day.
func (p Period) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return !day.Before(p.Start) && !day.After(p.End)
}
