package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"alcyxob/fitness-coach/internal/cache"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/repository/mocks"
	"alcyxob/fitness-coach/internal/schedule"
	"alcyxob/fitness-coach/internal/service"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func intPtr(i int) *int { return &i }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := schedule.ParseDate(s)
	require.NoError(t, err)
	return d
}

// scheduleFixture is a client on a two-week program that started on
// Monday 2024-03-04, looked at on Wednesday 2024-03-13 (week 2).
type scheduleFixture struct {
	users       *mocks.MockUserRepository
	assignments *mocks.MockClientProgramRepository
	programs    *mocks.MockProgramRepository
	workouts    *mocks.MockProgramWorkoutRepository
	completions *mocks.MockCompletionRepository
	metrics     *metrics.Manager

	client   domain.User
	cp       domain.ClientProgram
	program  domain.Program
	mondayW1 domain.ProgramWorkout
	wedW2    domain.ProgramWorkout
	finisher domain.ProgramWorkout

	svc service.ScheduleService
}

func newScheduleFixture(t *testing.T, now time.Time) *scheduleFixture {
	ctrl := gomock.NewController(t)
	f := &scheduleFixture{
		users:       mocks.NewMockUserRepository(ctrl),
		assignments: mocks.NewMockClientProgramRepository(ctrl),
		programs:    mocks.NewMockProgramRepository(ctrl),
		workouts:    mocks.NewMockProgramWorkoutRepository(ctrl),
		completions: mocks.NewMockCompletionRepository(ctrl),
		metrics:     metrics.NewTestManager(),
	}

	f.client = domain.User{ID: primitive.NewObjectID(), Name: "Casey", Role: domain.RoleClient}
	f.program = domain.Program{ID: primitive.NewObjectID(), Name: "Strength Block", Category: "strength"}
	f.cp = domain.ClientProgram{
		ID:        primitive.NewObjectID(),
		ClientID:  f.client.ID,
		ProgramID: f.program.ID,
		StartDate: mustDate(t, "2024-03-04"),
		IsActive:  true,
	}
	f.mondayW1 = domain.ProgramWorkout{
		ID: primitive.NewObjectID(), ProgramID: f.program.ID, Name: "Squat day",
		DayOfWeek: intPtr(1), WeekNumber: intPtr(1),
	}
	f.wedW2 = domain.ProgramWorkout{
		ID: primitive.NewObjectID(), ProgramID: f.program.ID, Name: "Deadlift day",
		DayOfWeek: intPtr(3), WeekNumber: intPtr(2), OrderIndex: 1,
	}
	f.finisher = domain.ProgramWorkout{
		ID: primitive.NewObjectID(), ProgramID: f.program.ID, Name: "Carries",
		DayOfWeek: intPtr(3), WeekNumber: intPtr(2), ParentWorkoutID: &f.wedW2.ID,
	}

	scheduleCache := cache.NewScheduleCache(1, time.Minute, f.metrics)
	f.svc = service.NewScheduleService(f.users, f.assignments, f.programs, f.workouts, f.completions,
		scheduleCache, fixedClock{now: now}, service.ScheduleOptions{CycleWeeks: true})
	return f
}

// expectRows sets up the source row reads, expected exactly times times.
func (f *scheduleFixture) expectRows(times int) {
	f.users.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(&f.client, nil).Times(times)
	f.assignments.EXPECT().GetActiveByClientID(gomock.Any(), f.client.ID).
		Return([]domain.ClientProgram{f.cp}, nil).Times(times)
	f.programs.EXPECT().GetByIDs(gomock.Any(), []primitive.ObjectID{f.program.ID}).
		Return([]domain.Program{f.program}, nil).Times(times)
	f.workouts.EXPECT().GetByProgramIDs(gomock.Any(), []primitive.ObjectID{f.program.ID}).
		Return([]domain.ProgramWorkout{f.mondayW1, f.finisher, f.wedW2}, nil).Times(times)
}

func (f *scheduleFixture) mondayCompletion(t *testing.T) domain.WorkoutCompletion {
	return domain.WorkoutCompletion{
		ID:              primitive.NewObjectID(),
		ClientID:        f.client.ID,
		WorkoutID:       f.mondayW1.ID,
		ClientProgramID: &f.cp.ID,
		ScheduledDate:   "2024-03-04",
		CompletedAt:     mustDate(t, "2024-03-04").Add(18 * time.Hour),
	}
}

var wednesday = time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)

func TestScheduleService_GetSchedule(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, "2024-01-13", "2024-03-13").
		Return([]domain.WorkoutCompletion{f.mondayCompletion(t)}, nil)

	view, err := f.svc.GetSchedule(context.Background(), f.client.ID)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-13", view.Today)
	assert.Equal(t, 2, view.CurrentWeek)
	assert.Equal(t, 2, view.MaxWeek)
	assert.True(t, view.CycleWeeks)
	assert.Equal(t, "2024-03-04", view.ProgramStartDate)
	require.Len(t, view.Assignments, 1)
	assert.Equal(t, "Strength Block", view.Assignments[0].ProgramName)

	// finishers never land on the grid
	require.Len(t, view.ScheduleByWeekAndDay[2][time.Wednesday], 1)
	assert.Equal(t, "Deadlift day", view.ScheduleByWeekAndDay[2][time.Wednesday][0].Name)
	assert.Len(t, view.ScheduleByDay[time.Monday], 1)

	assert.Equal(t, schedule.StatusUpcoming, view.TodayWorkouts.Status)
	require.Len(t, view.TodayWorkouts.Workouts, 1)
	assert.Equal(t, schedule.OccurrenceID(f.cp.ID.Hex(), mustDate(t, "2024-03-13"), 0), view.TodayWorkouts.Workouts[0].OccurrenceID)

	assert.Contains(t, view.CompletedKeys, schedule.SpecificKey(mustDate(t, "2024-03-04"), f.mondayW1.ID.Hex(), f.cp.ID.Hex()))
}

func TestScheduleService_CachesRowsButNotCompletions(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(2)

	ctx := context.Background()
	_, err := f.svc.GetSchedule(ctx, f.client.ID)
	require.NoError(t, err)
	view, err := f.svc.GetSchedule(ctx, f.client.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, view.MaxWeek)
	assert.Equal(t, "2024-03-04", view.ProgramStartDate)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterScheduleCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterScheduleCache.WithLabelValues("miss")))
}

func TestScheduleService_InvalidateReloadsRows(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(2)

	ctx := context.Background()
	_, err := f.svc.Today(ctx, f.client.ID)
	require.NoError(t, err)
	f.svc.Invalidate(f.client.ID)
	_, err = f.svc.Today(ctx, f.client.ID)
	require.NoError(t, err)
}

func TestScheduleService_GetCalendar(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	// the lookback window starts before the requested range
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, "2024-01-13", "2024-03-13").
		Return([]domain.WorkoutCompletion{f.mondayCompletion(t)}, nil)

	view, err := f.svc.GetCalendar(context.Background(), f.client.ID, mustDate(t, "2024-03-04"), mustDate(t, "2024-03-13"))
	require.NoError(t, err)

	require.Len(t, view.Days, 10)
	statuses := make(map[string]schedule.Status, len(view.Days))
	for _, d := range view.Days {
		statuses[d.Date] = d.Status
	}
	assert.Equal(t, schedule.StatusCompleted, statuses["2024-03-04"])
	assert.Equal(t, schedule.StatusRest, statuses["2024-03-06"])
	assert.Equal(t, schedule.StatusRest, statuses["2024-03-11"])
	assert.Equal(t, schedule.StatusUpcoming, statuses["2024-03-13"])
	assert.Equal(t, 1, view.Days[0].Week)
	assert.Equal(t, 2, view.Days[9].Week)
	assert.True(t, view.Days[0].Workouts[0].Completed)
}

func TestScheduleService_GetCalendarLoadsOlderRangesAndCycles(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, "2023-12-01", "2024-03-31").Return(nil, nil)

	view, err := f.svc.GetCalendar(context.Background(), f.client.ID, mustDate(t, "2023-12-01"), mustDate(t, "2024-03-31"))
	require.NoError(t, err)

	byDate := make(map[string]schedule.CalendarDay, len(view.Days))
	for _, d := range view.Days {
		byDate[d.Date] = d
	}
	assert.Equal(t, schedule.StatusRest, byDate["2024-03-01"].Status)
	// week 3 wraps to week 1
	assert.Equal(t, 1, byDate["2024-03-18"].Week)
	assert.Equal(t, schedule.StatusUpcoming, byDate["2024-03-18"].Status)
	assert.Equal(t, schedule.StatusRest, byDate["2024-03-20"].Status)
}

func TestScheduleService_GetCalendarRejectsBadRanges(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	ctx := context.Background()

	_, err := f.svc.GetCalendar(ctx, f.client.ID, mustDate(t, "2024-03-10"), mustDate(t, "2024-03-01"))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)

	_, err = f.svc.GetCalendar(ctx, f.client.ID, mustDate(t, "2023-01-01"), mustDate(t, "2024-03-01"))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)
}

func TestScheduleService_GetStreak(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, "2024-01-13", "2024-03-13").
		Return([]domain.WorkoutCompletion{f.mondayCompletion(t)}, nil)

	streak, err := f.svc.GetStreak(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.Streak{Current: 1, Longest: 1}, *streak)
}

func TestScheduleService_LocateOccurrence(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.expectRows(1)
	ctx := context.Background()
	today := mustDate(t, "2024-03-13")

	occ, err := f.svc.LocateOccurrence(ctx, f.client.ID, f.wedW2.ID, today)
	require.NoError(t, err)
	assert.True(t, occ.Scheduled)
	require.NotNil(t, occ.ClientProgramID)
	assert.Equal(t, f.cp.ID, *occ.ClientProgramID)
	assert.Equal(t, schedule.OccurrenceID(f.cp.ID.Hex(), today, 0), occ.OccurrenceID)

	occ, err = f.svc.LocateOccurrence(ctx, f.client.ID, f.mondayW1.ID, today)
	require.NoError(t, err)
	assert.False(t, occ.Scheduled)
	assert.Nil(t, occ.ClientProgramID)
}

func TestScheduleService_TodayUsesClientTimeZone(t *testing.T) {
	// 02:00 UTC on the 13th is still the evening of the 12th in New York
	f := newScheduleFixture(t, time.Date(2024, 3, 13, 2, 0, 0, 0, time.UTC))
	f.client.TimeZone = "America/New_York"
	f.expectRows(1)

	today, err := f.svc.Today(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2024-03-12"), today)
}

func TestScheduleService_UnknownOrNonClientUser(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	ctx := context.Background()

	missing := primitive.NewObjectID()
	f.users.EXPECT().GetByID(gomock.Any(), missing).Return(nil, repository.ErrNotFound)
	_, err := f.svc.GetSchedule(ctx, missing)
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	trainer := domain.User{ID: primitive.NewObjectID(), Role: domain.RoleTrainer}
	f.users.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(&trainer, nil)
	_, err = f.svc.GetSchedule(ctx, trainer.ID)
	assert.ErrorIs(t, err, service.ErrNotAClient)
}

func TestScheduleService_NoAssignments(t *testing.T) {
	f := newScheduleFixture(t, wednesday)
	f.users.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(&f.client, nil)
	f.assignments.EXPECT().GetActiveByClientID(gomock.Any(), f.client.ID).Return(nil, nil)
	f.completions.EXPECT().GetInRange(gomock.Any(), f.client.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

	view, err := f.svc.GetSchedule(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.MaxWeek)
	assert.Empty(t, view.ProgramStartDate)
	assert.Equal(t, schedule.StatusRest, view.TodayWorkouts.Status)
	assert.Len(t, view.ScheduleByWeekAndDay[1], 7)
}
