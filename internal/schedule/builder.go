// Package schedule maps program assignments onto calendar dates, reconciles
// completion records against them and classifies each date.
//
// Everything here is pure: callers pass already-fetched rows and an explicit
// "today", and get plain data back.
package schedule

import (
	"sort"
	"time"
)

const daysInWeek = 7

// Workout is a program workout row as read from the repository.
type Workout struct {
	ID              string
	Name            string
	DayOfWeek       *time.Weekday // nil means unscheduled
	WeekNumber      *int          // nil means week 1
	ParentWorkoutID string        // set for finishers
	OrderIndex      int
}

// Assignment is a client's program assignment with the program's workouts.
type Assignment struct {
	ID              string     `json:"id"`
	ProgramID       string     `json:"programId"`
	ProgramName     string     `json:"programName"`
	ProgramCategory string     `json:"programCategory,omitempty"`
	PhaseName       string     `json:"phaseName,omitempty"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IsActive        bool       `json:"isActive"`
	DurationWeeks   *int       `json:"durationWeeks,omitempty"`
	Workouts        []Workout  `json:"-"`
}

// ScheduledWorkout is a workout placed on the week/day grid, decorated with
// its owning program and assignment.
type ScheduledWorkout struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	DayOfWeek       time.Weekday `json:"dayOfWeek"`
	Week            int          `json:"weekNumber"`
	OrderIndex      int          `json:"orderIndex"`
	ProgramID       string       `json:"programId"`
	ProgramName     string       `json:"programName"`
	ProgramCategory string       `json:"programCategory,omitempty"`
	AssignmentID    string       `json:"clientProgramId"`
	// Slot is the position of the workout among its assignment's workouts
	// on the same day.
	Slot int `json:"slot"`
}

// DayBuckets holds the workouts of one week, indexed by day of week.
type DayBuckets map[time.Weekday][]ScheduledWorkout

// Schedule is the derived lookup structure for a client's active assignments.
type Schedule struct {
	// ByWeekAndDay has every week 1..MaxWeek and every day 0..6 present;
	// an empty bucket is a rest day.
	ByWeekAndDay map[int]DayBuckets `json:"scheduleByWeekAndDay"`
	// ByDay is the legacy week-1 view.
	ByDay   DayBuckets `json:"scheduleByDay"`
	MaxWeek int        `json:"maxWeek"`
	// HasWeekNumbers is false when no workout carries a week number; in that
	// case every week repeats ByDay.
	HasWeekNumbers bool `json:"hasWeekNumbers"`
	// StartDate is the earliest start date of the active assignments, zero
	// when there are none.
	StartDate time.Time    `json:"programStartDate"`
	Active    []Assignment `json:"active"`
	Upcoming  []Assignment `json:"upcoming"`
}

// BuildSchedule places the workouts of the client's current assignments onto
// the week/day grid. Active assignments that have not started yet are
// returned as upcoming; inactive and ended ones are ignored.
func BuildSchedule(assignments []Assignment, today time.Time) Schedule {
	today = Day(today)

	var current, upcoming []Assignment
	for _, a := range assignments {
		if !a.IsActive {
			continue
		}
		if Day(a.StartDate).After(today) {
			upcoming = append(upcoming, a)
			continue
		}
		if a.EndDate != nil && Day(*a.EndDate).Before(today) {
			continue
		}
		current = append(current, a)
	}

	maxWeek := 1
	hasWeekNumbers := false
	for _, a := range current {
		for _, w := range a.Workouts {
			if !schedulable(w) || w.WeekNumber == nil {
				continue
			}
			hasWeekNumbers = true
			maxWeek = max(maxWeek, weekOf(w))
		}
	}

	grid := make(map[int]DayBuckets, maxWeek)
	for week := 1; week <= maxWeek; week++ {
		buckets := make(DayBuckets, daysInWeek)
		for d := time.Sunday; d <= time.Saturday; d++ {
			buckets[d] = []ScheduledWorkout{}
		}
		grid[week] = buckets
	}

	var start time.Time
	for _, a := range current {
		if start.IsZero() || Day(a.StartDate).Before(start) {
			start = Day(a.StartDate)
		}
		for _, w := range a.Workouts {
			if !schedulable(w) {
				continue
			}
			week := weekOf(w)
			grid[week][*w.DayOfWeek] = append(grid[week][*w.DayOfWeek], ScheduledWorkout{
				ID:              w.ID,
				Name:            w.Name,
				DayOfWeek:       *w.DayOfWeek,
				Week:            week,
				OrderIndex:      w.OrderIndex,
				ProgramID:       a.ProgramID,
				ProgramName:     a.ProgramName,
				ProgramCategory: a.ProgramCategory,
				AssignmentID:    a.ID,
			})
		}
	}

	for _, buckets := range grid {
		for _, bucket := range buckets {
			sort.SliceStable(bucket, func(i, j int) bool {
				return bucket[i].OrderIndex < bucket[j].OrderIndex
			})
			slots := make(map[string]int)
			for i := range bucket {
				bucket[i].Slot = slots[bucket[i].AssignmentID]
				slots[bucket[i].AssignmentID]++
			}
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})

	return Schedule{
		ByWeekAndDay:   grid,
		ByDay:          grid[1],
		MaxWeek:        maxWeek,
		HasWeekNumbers: hasWeekNumbers,
		StartDate:      start,
		Active:         current,
		Upcoming:       upcoming,
	}
}

// schedulable reports whether w belongs on the top-level grid: it has a valid
// day of week and is not a finisher.
func schedulable(w Workout) bool {
	if w.DayOfWeek == nil || w.ParentWorkoutID != "" {
		return false
	}
	return *w.DayOfWeek >= time.Sunday && *w.DayOfWeek <= time.Saturday
}

func weekOf(w Workout) int {
	if w.WeekNumber == nil || *w.WeekNumber < 1 {
		return 1
	}
	return *w.WeekNumber
}
