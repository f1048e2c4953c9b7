package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/cache"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/schedule"
)

const (
	DefaultCompletionLookbackDays = 60
	// maxCalendarDays caps a single calendar request.
	maxCalendarDays = 366
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNotAClient       = errors.New("user is not a client")
)

// Clock supplies the current instant. Tests pin it; production uses SystemClock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type ScheduleOptions struct {
	CompletionLookbackDays int
	CycleWeeks             bool
	// Location decides "today" for clients without their own time zone.
	Location *time.Location
}

// ScheduleView is a client's derived schedule as served to the apps.
type ScheduleView struct {
	ClientID             string                      `json:"clientId"`
	Today                string                      `json:"today"`
	CurrentWeek          int                         `json:"currentWeek"`
	MaxWeek              int                         `json:"maxWeek"`
	CycleWeeks           bool                        `json:"cycleWeeks"`
	ProgramStartDate     string                      `json:"programStartDate,omitempty"`
	ScheduleByDay        schedule.DayBuckets         `json:"scheduleByDay"`
	ScheduleByWeekAndDay map[int]schedule.DayBuckets `json:"scheduleByWeekAndDay"`
	Assignments          []schedule.Assignment       `json:"assignments"`
	Upcoming             []schedule.Assignment       `json:"upcoming"`
	TodayWorkouts        schedule.CalendarDay        `json:"todayWorkouts"`
	// CompletedKeys are the completion keys of the lookback window.
	CompletedKeys []string `json:"completedKeys"`
}

type CalendarView struct {
	ClientID         string                 `json:"clientId"`
	From             string                 `json:"from"`
	To               string                 `json:"to"`
	Today            string                 `json:"today"`
	MaxWeek          int                    `json:"maxWeek"`
	ProgramStartDate string                 `json:"programStartDate,omitempty"`
	Days             []schedule.CalendarDay `json:"days"`
}

// Occurrence locates a workout on a concrete date of the client's calendar.
type Occurrence struct {
	Date            time.Time
	ClientProgramID *primitive.ObjectID
	OccurrenceID    string
	Scheduled       bool
}

type ScheduleService interface {
	GetSchedule(ctx context.Context, clientID primitive.ObjectID) (*ScheduleView, error)
	// GetCalendar returns one day per date in [from, to].
	GetCalendar(ctx context.Context, clientID primitive.ObjectID, from, to time.Time) (*CalendarView, error)
	GetStreak(ctx context.Context, clientID primitive.ObjectID) (*schedule.Streak, error)
	// Today is the client's current calendar date.
	Today(ctx context.Context, clientID primitive.ObjectID) (time.Time, error)
	// LocateOccurrence finds workoutID on the client's calendar at date.
	// Scheduled is false when the workout is not planned for that date.
	LocateOccurrence(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*Occurrence, error)
	// Invalidate forgets cached schedule rows of the given clients.
	Invalidate(clientIDs ...primitive.ObjectID)
}

type scheduleService struct {
	userRepo          repository.UserRepository
	clientProgramRepo repository.ClientProgramRepository
	programRepo       repository.ProgramRepository
	workoutRepo       repository.ProgramWorkoutRepository
	completionRepo    repository.CompletionRepository
	cache             *cache.ScheduleCache
	clock             Clock
	opts              ScheduleOptions
}

func NewScheduleService(
	userRepo repository.UserRepository,
	clientProgramRepo repository.ClientProgramRepository,
	programRepo repository.ProgramRepository,
	workoutRepo repository.ProgramWorkoutRepository,
	completionRepo repository.CompletionRepository,
	scheduleCache *cache.ScheduleCache,
	clock Clock,
	opts ScheduleOptions,
) ScheduleService {
	if clock == nil {
		clock = SystemClock{}
	}
	if opts.CompletionLookbackDays <= 0 {
		opts.CompletionLookbackDays = DefaultCompletionLookbackDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &scheduleService{
		userRepo:          userRepo,
		clientProgramRepo: clientProgramRepo,
		programRepo:       programRepo,
		workoutRepo:       workoutRepo,
		completionRepo:    completionRepo,
		cache:             scheduleCache,
		clock:             clock,
		opts:              opts,
	}
}

// scheduleRows is everything the calendar needs about a client apart from
// completions. It is what gets cached.
type scheduleRows struct {
	TimeZone    string                  `json:"timeZone"`
	Assignments []domain.ClientProgram  `json:"assignments"`
	Programs    []domain.Program        `json:"programs"`
	Workouts    []domain.ProgramWorkout `json:"workouts"`
}

func (s *scheduleService) loadRows(ctx context.Context, clientID primitive.ObjectID) (*scheduleRows, error) {
	var rows scheduleRows
	if s.cache.Get(clientID.Hex(), &rows) {
		return &rows, nil
	}

	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("load client: %w", err)
	}
	if !client.IsClient() {
		return nil, ErrNotAClient
	}
	rows.TimeZone = client.TimeZone

	rows.Assignments, err = s.clientProgramRepo.GetActiveByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	programIDs := make([]primitive.ObjectID, 0, len(rows.Assignments))
	seen := make(map[primitive.ObjectID]bool, len(rows.Assignments))
	for _, cp := range rows.Assignments {
		if !seen[cp.ProgramID] {
			seen[cp.ProgramID] = true
			programIDs = append(programIDs, cp.ProgramID)
		}
	}

	if len(programIDs) > 0 {
		if rows.Programs, err = s.programRepo.GetByIDs(ctx, programIDs); err != nil {
			return nil, fmt.Errorf("load programs: %w", err)
		}
		if rows.Workouts, err = s.workoutRepo.GetByProgramIDs(ctx, programIDs); err != nil {
			return nil, fmt.Errorf("load program workouts: %w", err)
		}
	}

	s.cache.Set(clientID.Hex(), rows)
	return &rows, nil
}

// assignments joins the rows into the schedule package's input. Assignments
// whose program no longer exists are skipped.
func (r *scheduleRows) assignments() []schedule.Assignment {
	programs := make(map[primitive.ObjectID]domain.Program, len(r.Programs))
	for _, p := range r.Programs {
		programs[p.ID] = p
	}
	workouts := make(map[primitive.ObjectID][]schedule.Workout)
	for _, w := range r.Workouts {
		workouts[w.ProgramID] = append(workouts[w.ProgramID], toScheduleWorkout(w))
	}

	out := make([]schedule.Assignment, 0, len(r.Assignments))
	for _, cp := range r.Assignments {
		p, ok := programs[cp.ProgramID]
		if !ok {
			log.Warnf("client program %s references missing program %s", cp.ID.Hex(), cp.ProgramID.Hex())
			continue
		}
		durationWeeks := cp.DurationWeeks
		if durationWeeks == nil {
			durationWeeks = p.DurationWeeks
		}
		out = append(out, schedule.Assignment{
			ID:              cp.ID.Hex(),
			ProgramID:       p.ID.Hex(),
			ProgramName:     p.Name,
			ProgramCategory: p.Category,
			PhaseName:       cp.PhaseName,
			StartDate:       cp.StartDate,
			EndDate:         cp.EndDate,
			IsActive:        cp.IsActive,
			DurationWeeks:   durationWeeks,
			Workouts:        workouts[p.ID],
		})
	}
	return out
}

func toScheduleWorkout(w domain.ProgramWorkout) schedule.Workout {
	sw := schedule.Workout{
		ID:         w.ID.Hex(),
		Name:       w.Name,
		WeekNumber: w.WeekNumber,
		OrderIndex: w.OrderIndex,
	}
	if w.DayOfWeek != nil && *w.DayOfWeek >= 0 && *w.DayOfWeek <= 6 {
		d := time.Weekday(*w.DayOfWeek)
		sw.DayOfWeek = &d
	}
	if w.IsFinisher() {
		sw.ParentWorkoutID = w.ParentWorkoutID.Hex()
	}
	return sw
}

func toCompletion(c domain.WorkoutCompletion) (schedule.Completion, error) {
	date, err := schedule.ParseDate(c.ScheduledDate)
	if err != nil {
		return schedule.Completion{}, err
	}
	out := schedule.Completion{
		WorkoutID:     c.WorkoutID.Hex(),
		OccurrenceID:  c.OccurrenceID,
		ScheduledDate: date,
		CompletedAt:   c.CompletedAt,
	}
	if c.ClientProgramID != nil {
		out.AssignmentID = c.ClientProgramID.Hex()
	}
	return out, nil
}

// today is the single place that reads the clock.
func (s *scheduleService) today(rows *scheduleRows) time.Time {
	loc := s.opts.Location
	if rows.TimeZone != "" {
		if l, err := time.LoadLocation(rows.TimeZone); err == nil {
			loc = l
		} else {
			log.Warnf("unknown client time zone %q, using %s", rows.TimeZone, loc)
		}
	}
	return schedule.Day(s.clock.Now().In(loc))
}

func (s *scheduleService) lookbackStart(today time.Time) time.Time {
	return today.AddDate(0, 0, -s.opts.CompletionLookbackDays)
}

// calendar assembles the calendar with completions loaded for [from, to].
func (s *scheduleService) calendar(ctx context.Context, clientID primitive.ObjectID, rows *scheduleRows, today, from, to time.Time) (schedule.Calendar, *schedule.CompletionIndex, error) {
	sched := schedule.BuildSchedule(rows.assignments(), today)

	completions, err := s.completionRepo.GetInRange(ctx, clientID, schedule.DateKey(from), schedule.DateKey(to))
	if err != nil {
		return schedule.Calendar{}, nil, fmt.Errorf("load completions: %w", err)
	}
	idx := schedule.NewCompletionIndex(nil)
	for _, c := range completions {
		rec, err := toCompletion(c)
		if err != nil {
			log.Warnf("skipping completion %s: %s", c.ID.Hex(), err)
			continue
		}
		idx.Add(rec)
	}

	return schedule.Calendar{
		Schedule:    sched,
		Completions: idx,
		Today:       today,
		Cycle:       s.opts.CycleWeeks,
	}, idx, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, clientID primitive.ObjectID) (*ScheduleView, error) {
	rows, err := s.loadRows(ctx, clientID)
	if err != nil {
		return nil, err
	}

	today := s.today(rows)
	cal, idx, err := s.calendar(ctx, clientID, rows, today, s.lookbackStart(today), today)
	if err != nil {
		return nil, err
	}

	view := &ScheduleView{
		ClientID:             clientID.Hex(),
		Today:                schedule.DateKey(today),
		CurrentWeek:          cal.WeekFor(today),
		MaxWeek:              cal.Schedule.MaxWeek,
		CycleWeeks:           s.opts.CycleWeeks,
		ScheduleByDay:        cal.Schedule.ByDay,
		ScheduleByWeekAndDay: cal.Schedule.ByWeekAndDay,
		Assignments:          cal.Schedule.Active,
		Upcoming:             cal.Schedule.Upcoming,
		TodayWorkouts:        cal.At(today),
		CompletedKeys:        idx.Keys(),
	}
	if !cal.Schedule.StartDate.IsZero() {
		view.ProgramStartDate = schedule.DateKey(cal.Schedule.StartDate)
	}
	return view, nil
}

func (s *scheduleService) GetCalendar(ctx context.Context, clientID primitive.ObjectID, from, to time.Time) (*CalendarView, error) {
	from, to = schedule.Day(from), schedule.Day(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, schedule.DateKey(to), schedule.DateKey(from))
	}
	if schedule.DaysBetween(from, to) >= maxCalendarDays {
		return nil, fmt.Errorf("%w: at most %d days per request", ErrInvalidDateRange, maxCalendarDays)
	}

	rows, err := s.loadRows(ctx, clientID)
	if err != nil {
		return nil, err
	}

	today := s.today(rows)
	// Completions older than the lookback window are only loaded when the
	// requested range reaches back that far.
	loadFrom := s.lookbackStart(today)
	if from.Before(loadFrom) {
		loadFrom = from
	}
	loadTo := to
	if loadTo.Before(today) {
		loadTo = today
	}

	cal, _, err := s.calendar(ctx, clientID, rows, today, loadFrom, loadTo)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		ClientID: clientID.Hex(),
		From:     schedule.DateKey(from),
		To:       schedule.DateKey(to),
		Today:    schedule.DateKey(today),
		MaxWeek:  cal.Schedule.MaxWeek,
		Days:     cal.Range(from, to),
	}
	if !cal.Schedule.StartDate.IsZero() {
		view.ProgramStartDate = schedule.DateKey(cal.Schedule.StartDate)
	}
	return view, nil
}

func (s *scheduleService) GetStreak(ctx context.Context, clientID primitive.ObjectID) (*schedule.Streak, error) {
	rows, err := s.loadRows(ctx, clientID)
	if err != nil {
		return nil, err
	}

	today := s.today(rows)
	since := s.lookbackStart(today)
	cal, _, err := s.calendar(ctx, clientID, rows, today, since, today)
	if err != nil {
		return nil, err
	}

	streak := cal.Streak(since)
	return &streak, nil
}

func (s *scheduleService) Today(ctx context.Context, clientID primitive.ObjectID) (time.Time, error) {
	rows, err := s.loadRows(ctx, clientID)
	if err != nil {
		return time.Time{}, err
	}
	return s.today(rows), nil
}

func (s *scheduleService) LocateOccurrence(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*Occurrence, error) {
	rows, err := s.loadRows(ctx, clientID)
	if err != nil {
		return nil, err
	}

	date = schedule.Day(date)
	cal := schedule.Calendar{
		Schedule: schedule.BuildSchedule(rows.assignments(), s.today(rows)),
		Cycle:    s.opts.CycleWeeks,
	}

	occ := &Occurrence{Date: date}
	for _, w := range cal.WorkoutsFor(date) {
		if w.ID != workoutID.Hex() {
			continue
		}
		cpID, err := primitive.ObjectIDFromHex(w.AssignmentID)
		if err != nil {
			return nil, fmt.Errorf("client program id %q: %w", w.AssignmentID, err)
		}
		occ.ClientProgramID = &cpID
		occ.OccurrenceID = schedule.OccurrenceID(w.AssignmentID, date, w.Slot)
		occ.Scheduled = true
		break
	}
	return occ, nil
}

func (s *scheduleService) Invalidate(clientIDs ...primitive.ObjectID) {
	keys := make([]string, 0, len(clientIDs))
	for _, id := range clientIDs {
		keys = append(keys, id.Hex())
	}
	s.cache.Invalidate(keys...)
}
