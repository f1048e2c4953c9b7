package schedule

import "time"

// ResolveWeek returns the week number, in [1, maxWeek], that applies to date
// for a program started on start.
//
// Dates before the start (or a zero start) resolve to week 1. Past the last
// week, cycling programs wrap back to week 1 and one-shot programs stay on
// maxWeek.
func ResolveWeek(date, start time.Time, maxWeek int, cycle bool) int {
	if maxWeek < 1 {
		maxWeek = 1
	}
	if start.IsZero() {
		return 1
	}
	days := DaysBetween(start, date)
	if days < 0 {
		return 1
	}
	week := days/daysInWeek + 1
	if week <= maxWeek {
		return week
	}
	if cycle {
		return (week-1)%maxWeek + 1
	}
	return maxWeek
}
