package schedule

import "time"

// Streak is the client's current and longest run of completed workout days.
type Streak struct {
	Current int `json:"streak"`
	Longest int `json:"longestStreak"`
}

// Streak walks from since to today. Completed days extend the run and rest
// days leave it untouched. Skipped and partial days reset it, except today,
// which is not judged until it is over.
func (c Calendar) Streak(since time.Time) Streak {
	var s Streak
	today := Day(c.Today)
	for d := Day(since); !d.After(today); d = d.AddDate(0, 0, 1) {
		switch c.Classify(d) {
		case StatusCompleted:
			s.Current++
			s.Longest = max(s.Longest, s.Current)
		case StatusSkipped, StatusPartial:
			if d.Before(today) {
				s.Current = 0
			}
		}
	}
	return s
}
