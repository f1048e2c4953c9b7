package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Lookup answers whether a scheduled workout was done on a date.
type Lookup interface {
	IsCompleted(date time.Time, w ScheduledWorkout) bool
}

// Completion is evidence that a client performed a workout on a calendar date.
type Completion struct {
	WorkoutID     string
	AssignmentID  string
	OccurrenceID  string
	ScheduledDate time.Time
	CompletedAt   time.Time
}

// CompletionIndex answers "is this day's workout done?" from completion rows.
//
// Each row is indexed under three keys of decreasing precision so that a
// completion still counts after the trainer reassigns the program or replaces
// the workout it was logged against.
type CompletionIndex struct {
	keys map[string]struct{}
}

// NewCompletionIndex builds an index from the given completion rows.
func NewCompletionIndex(records []Completion) *CompletionIndex {
	idx := &CompletionIndex{keys: make(map[string]struct{}, len(records)*3)}
	for _, rec := range records {
		idx.Add(rec)
	}
	return idx
}

// Add indexes a single completion row.
func (c *CompletionIndex) Add(rec Completion) {
	if c.keys == nil {
		c.keys = make(map[string]struct{})
	}
	if rec.WorkoutID != "" {
		if rec.AssignmentID != "" {
			c.keys[SpecificKey(rec.ScheduledDate, rec.WorkoutID, rec.AssignmentID)] = struct{}{}
		}
		c.keys[WorkoutKey(rec.ScheduledDate, rec.WorkoutID)] = struct{}{}
	}
	c.keys[AnyKey(rec.ScheduledDate)] = struct{}{}
	if rec.OccurrenceID != "" {
		c.keys[occurrenceKey(rec.OccurrenceID)] = struct{}{}
	}
}

// IsCompleted reports whether w counts as done on date. Any of the occurrence,
// specific, workout-only or date-only keys is enough.
func (c *CompletionIndex) IsCompleted(date time.Time, w ScheduledWorkout) bool {
	if c == nil || len(c.keys) == 0 {
		return false
	}
	candidates := []string{
		occurrenceKey(OccurrenceID(w.AssignmentID, date, w.Slot)),
		SpecificKey(date, w.ID, w.AssignmentID),
		WorkoutKey(date, w.ID),
		AnyKey(date),
	}
	for _, key := range candidates {
		if _, ok := c.keys[key]; ok {
			return true
		}
	}
	return false
}

// Keys returns the indexed keys in sorted order.
func (c *CompletionIndex) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.keys))
	for k := range c.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of indexed keys.
func (c *CompletionIndex) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// SpecificKey is "{date}:{workoutId}:{assignmentId}".
func SpecificKey(date time.Time, workoutID, assignmentID string) string {
	return fmt.Sprintf("%s:%s:%s", DateKey(date), workoutID, assignmentID)
}

// WorkoutKey is "{date}:{workoutId}".
func WorkoutKey(date time.Time, workoutID string) string {
	return fmt.Sprintf("%s:%s", DateKey(date), workoutID)
}

// AnyKey is "{date}:any".
func AnyKey(date time.Time) string {
	return DateKey(date) + ":any"
}

// OccurrenceID identifies "the assignment's n-th slot on this date". It does
// not depend on the workout definition, so it survives the trainer replacing
// the workout. Completions that carry it match exactly before the fallback
// keys are consulted.
func OccurrenceID(assignmentID string, date time.Time, slot int) string {
	return fmt.Sprintf("%s@%s#%d", assignmentID, DateKey(date), slot)
}

func occurrenceKey(id string) string {
	return "occ:" + id
}
