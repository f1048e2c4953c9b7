package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"alcyxob/fitness-coach/internal/schedule"
)

var statusColors = map[schedule.Status]*color.Color{
	schedule.StatusCompleted: color.New(color.FgGreen),
	schedule.StatusPartial:   color.New(color.FgYellow),
	schedule.StatusSkipped:   color.New(color.FgRed),
	schedule.StatusUpcoming:  color.New(color.FgCyan),
	schedule.StatusRest:      color.New(color.Faint),
}

func statusLabel(s schedule.Status) string {
	label := padRight(string(s), 9)
	if c, ok := statusColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

func workoutNames(workouts []schedule.CalendarWorkout) string {
	names := make([]string, 0, len(workouts))
	for _, w := range workouts {
		mark := "[ ]"
		if w.Completed {
			mark = "[x]"
		}
		names = append(names, mark+" "+w.Name)
	}
	return strings.Join(names, ", ")
}

func weekdayOf(date string) string {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return "???"
	}
	return d.Weekday().String()[:3]
}

// resolveRange mirrors the API's calendar query: from/to, a month, or the
// month containing today.
func resolveRange(month, from, to string, today time.Time) (time.Time, time.Time, error) {
	switch {
	case from != "" || to != "":
		if from == "" || to == "" {
			return time.Time{}, time.Time{}, errors.New("--from and --to must be given together")
		}
		f, err := schedule.ParseDate(from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
		}
		t, err := schedule.ParseDate(to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
		}
		return f, t, nil
	case month != "":
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--month: expected YYYY-MM, got %q", month)
		}
		f, t := schedule.MonthRange(m.Year(), m.Month())
		return f, t, nil
	default:
		f, t := schedule.MonthRange(today.Year(), today.Month())
		return f, t, nil
	}
}

// mondayOf returns the Monday on or before t.
func mondayOf(t time.Time) time.Time {
	d := schedule.Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
