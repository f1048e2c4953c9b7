package schedule

import "time"

// Status classifies a calendar date.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusSkipped   Status = "skipped"
	StatusUpcoming  Status = "upcoming"
	StatusRest      Status = "rest"
)

// Calendar combines a schedule, a completion index and "today" to answer
// per-date questions. It holds no state of its own; rebuild it whenever the
// underlying rows or the current date change.
type Calendar struct {
	Schedule    Schedule
	Completions Lookup
	Today       time.Time
	// Cycle selects wrap (true) or clamp (false) once a date is past the
	// program's last week.
	Cycle bool
}

// CalendarWorkout is a scheduled workout on a concrete date.
type CalendarWorkout struct {
	ScheduledWorkout
	OccurrenceID string `json:"occurrenceId"`
	Completed    bool   `json:"completed"`
}

// CalendarDay is the derived, non-persisted view of one date.
type CalendarDay struct {
	Date     string            `json:"date"`
	Week     int               `json:"weekNumber"`
	Status   Status            `json:"status"`
	Workouts []CalendarWorkout `json:"workouts"`
}

// WeekFor returns the program week that applies to date.
func (c Calendar) WeekFor(date time.Time) int {
	if !c.Schedule.HasWeekNumbers {
		return 1
	}
	return ResolveWeek(date, c.Schedule.StartDate, c.Schedule.MaxWeek, c.Cycle)
}

// WorkoutsFor returns the workouts scheduled on date, by day of week and, when
// the schedule carries week numbers, by the week since the program start.
func (c Calendar) WorkoutsFor(date time.Time) []ScheduledWorkout {
	weekday := Day(date).Weekday()
	if !c.Schedule.HasWeekNumbers {
		return c.Schedule.ByDay[weekday]
	}
	return c.Schedule.ByWeekAndDay[c.WeekFor(date)][weekday]
}

// IsCompleted reports whether w counts as done on date.
func (c Calendar) IsCompleted(date time.Time, w ScheduledWorkout) bool {
	return c.Completions != nil && c.Completions.IsCompleted(date, w)
}

// Classify returns the status of date.
func (c Calendar) Classify(date time.Time) Status {
	return Classify(date, c.WorkoutsFor(date), c.Completions, c.Today, c.Schedule.StartDate)
}

// Classify is the per-date state machine. A day with no workouts, or one
// before the program start, is rest. Today is never skipped: a day is only
// judged once it is fully in the past.
func Classify(date time.Time, workouts []ScheduledWorkout, completions Lookup, today, programStart time.Time) Status {
	if len(workouts) == 0 {
		return StatusRest
	}
	date = Day(date)
	if !programStart.IsZero() && date.Before(Day(programStart)) {
		return StatusRest
	}

	completed := 0
	for _, w := range workouts {
		if completions != nil && completions.IsCompleted(date, w) {
			completed++
		}
	}

	switch {
	case completed == len(workouts):
		return StatusCompleted
	case completed > 0:
		return StatusPartial
	case date.Before(Day(today)):
		return StatusSkipped
	default:
		return StatusUpcoming
	}
}

// At returns the full view of date.
func (c Calendar) At(date time.Time) CalendarDay {
	date = Day(date)
	workouts := c.WorkoutsFor(date)
	out := CalendarDay{
		Date:     DateKey(date),
		Week:     c.WeekFor(date),
		Status:   Classify(date, workouts, c.Completions, c.Today, c.Schedule.StartDate),
		Workouts: make([]CalendarWorkout, 0, len(workouts)),
	}
	for _, w := range workouts {
		out.Workouts = append(out.Workouts, CalendarWorkout{
			ScheduledWorkout: w,
			OccurrenceID:     OccurrenceID(w.AssignmentID, date, w.Slot),
			Completed:        c.IsCompleted(date, w),
		})
	}
	return out
}

// Range returns one CalendarDay per date from from to to, inclusive.
func (c Calendar) Range(from, to time.Time) []CalendarDay {
	from, to = Day(from), Day(to)
	if to.Before(from) {
		return []CalendarDay{}
	}
	days := make([]CalendarDay, 0, DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, c.At(d))
	}
	return days
}
