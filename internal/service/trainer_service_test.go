package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/repository/mocks"
	"alcyxob/fitness-coach/internal/service"
	servicemocks "alcyxob/fitness-coach/internal/service/mocks"
)

type trainerFixture struct {
	users       *mocks.MockUserRepository
	exercises   *mocks.MockExerciseRepository
	programs    *mocks.MockProgramRepository
	workouts    *mocks.MockProgramWorkoutRepository
	assignments *mocks.MockClientProgramRepository
	schedules   *servicemocks.MockScheduleService

	trainerID primitive.ObjectID
	svc       service.TrainerService
}

func newTrainerFixture(t *testing.T) *trainerFixture {
	ctrl := gomock.NewController(t)
	f := &trainerFixture{
		users:       mocks.NewMockUserRepository(ctrl),
		exercises:   mocks.NewMockExerciseRepository(ctrl),
		programs:    mocks.NewMockProgramRepository(ctrl),
		workouts:    mocks.NewMockProgramWorkoutRepository(ctrl),
		assignments: mocks.NewMockClientProgramRepository(ctrl),
		schedules:   servicemocks.NewMockScheduleService(ctrl),
		trainerID:   primitive.NewObjectID(),
	}
	f.svc = service.NewTrainerService(f.users, f.exercises, f.programs, f.workouts, f.assignments, f.schedules)
	return f
}

func (f *trainerFixture) managedClient() *domain.User {
	return &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleClient, TrainerID: &f.trainerID}
}

func (f *trainerFixture) ownProgram() *domain.Program {
	return &domain.Program{ID: primitive.NewObjectID(), TrainerID: f.trainerID, Name: "Hypertrophy", DurationWeeks: intPtr(4)}
}

func TestTrainerService_AddClientByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("links a free client", func(t *testing.T) {
		f := newTrainerFixture(t)
		client := &domain.User{ID: primitive.NewObjectID(), Email: "sam@example.com", Role: domain.RoleClient, PasswordHash: "secret"}
		f.users.EXPECT().GetByEmail(ctx, "sam@example.com").Return(client, nil)
		f.users.EXPECT().AddClientIDToTrainer(ctx, f.trainerID, client.ID).Return(nil)
		f.users.EXPECT().SetTrainerForClient(ctx, client.ID, f.trainerID).Return(nil)

		got, err := f.svc.AddClientByEmail(ctx, f.trainerID, "  Sam@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, f.trainerID, *got.TrainerID)
		assert.Empty(t, got.PasswordHash)
	})

	t.Run("already mine is a no-op", func(t *testing.T) {
		f := newTrainerFixture(t)
		client := f.managedClient()
		f.users.EXPECT().GetByEmail(ctx, "sam@example.com").Return(client, nil)

		_, err := f.svc.AddClientByEmail(ctx, f.trainerID, "sam@example.com")
		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		user    *domain.User
		repoErr error
		wantErr error
	}{
		{name: "unknown email", repoErr: repository.ErrNotFound, wantErr: service.ErrClientNotFound},
		{name: "trainer account", user: &domain.User{Role: domain.RoleTrainer}, wantErr: service.ErrClientNotRole},
		{name: "someone else's client", user: &domain.User{Role: domain.RoleClient, TrainerID: ptrID(primitive.NewObjectID())}, wantErr: service.ErrClientAlreadyAssigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrainerFixture(t)
			f.users.EXPECT().GetByEmail(ctx, "sam@example.com").Return(tt.user, tt.repoErr)

			_, err := f.svc.AddClientByEmail(ctx, f.trainerID, "sam@example.com")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func ptrID(id primitive.ObjectID) *primitive.ObjectID { return &id }

func TestTrainerService_AddWorkout(t *testing.T) {
	ctx := context.Background()

	t.Run("fills exercise names and invalidates followers", func(t *testing.T) {
		f := newTrainerFixture(t)
		program := f.ownProgram()
		exercise := &domain.Exercise{ID: primitive.NewObjectID(), TrainerID: f.trainerID, Name: "Back Squat"}
		followers := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
		workoutID := primitive.NewObjectID()

		f.programs.EXPECT().GetByID(ctx, program.ID).Return(program, nil)
		f.exercises.EXPECT().GetByID(ctx, exercise.ID).Return(exercise, nil)
		f.workouts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.ProgramWorkout) (primitive.ObjectID, error) {
			assert.Equal(t, "Back Squat", w.Exercises[0].Name)
			assert.Equal(t, []int{1, 2}, []int{w.Exercises[0].Sets[0].SetNumber, w.Exercises[0].Sets[1].SetNumber})
			return workoutID, nil
		})
		f.assignments.EXPECT().GetActiveClientIDsByProgramID(ctx, program.ID).Return(followers, nil)
		f.schedules.EXPECT().Invalidate(followers[0], followers[1])

		got, err := f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{
			Name:       " Legs ",
			DayOfWeek:  intPtr(1),
			WeekNumber: intPtr(2),
			Exercises: []domain.WorkoutExercise{{
				ExerciseID: exercise.ID,
				Sets:       []domain.ExerciseSet{{Reps: "5"}, {Reps: "5"}},
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, workoutID, got.ID)
		assert.Equal(t, "Legs", got.Name)
	})

	t.Run("rejects bad day and week", func(t *testing.T) {
		f := newTrainerFixture(t)
		program := f.ownProgram()
		f.programs.EXPECT().GetByID(ctx, program.ID).Return(program, nil).Times(2)

		_, err := f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{Name: "x", DayOfWeek: intPtr(7)})
		assert.ErrorIs(t, err, service.ErrValidationFailed)
		_, err = f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{Name: "x", WeekNumber: intPtr(0)})
		assert.ErrorIs(t, err, service.ErrValidationFailed)
	})

	t.Run("finisher parent must be a regular workout of the program", func(t *testing.T) {
		f := newTrainerFixture(t)
		program := f.ownProgram()
		foreignParent := &domain.ProgramWorkout{ID: primitive.NewObjectID(), ProgramID: primitive.NewObjectID()}
		nestedParent := &domain.ProgramWorkout{ID: primitive.NewObjectID(), ProgramID: program.ID, ParentWorkoutID: ptrID(primitive.NewObjectID())}

		f.programs.EXPECT().GetByID(ctx, program.ID).Return(program, nil).Times(2)
		f.workouts.EXPECT().GetByID(ctx, foreignParent.ID).Return(foreignParent, nil)
		f.workouts.EXPECT().GetByID(ctx, nestedParent.ID).Return(nestedParent, nil)

		_, err := f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{Name: "Finisher", ParentWorkoutID: &foreignParent.ID})
		assert.ErrorIs(t, err, service.ErrInvalidFinisher)
		_, err = f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{Name: "Finisher", ParentWorkoutID: &nestedParent.ID})
		assert.ErrorIs(t, err, service.ErrInvalidFinisher)
	})

	t.Run("foreign program", func(t *testing.T) {
		f := newTrainerFixture(t)
		program := &domain.Program{ID: primitive.NewObjectID(), TrainerID: primitive.NewObjectID()}
		f.programs.EXPECT().GetByID(ctx, program.ID).Return(program, nil)

		_, err := f.svc.AddWorkout(ctx, f.trainerID, program.ID, service.WorkoutInput{Name: "x"})
		assert.ErrorIs(t, err, service.ErrProgramAccessDenied)
	})
}

func TestTrainerService_DeleteWorkout(t *testing.T) {
	ctx := context.Background()
	f := newTrainerFixture(t)
	workout := &domain.ProgramWorkout{ID: primitive.NewObjectID(), ProgramID: primitive.NewObjectID(), TrainerID: f.trainerID}

	f.workouts.EXPECT().GetByID(ctx, workout.ID).Return(workout, nil)
	f.workouts.EXPECT().Delete(ctx, workout.ID).Return(nil)
	f.assignments.EXPECT().GetActiveClientIDsByProgramID(ctx, workout.ProgramID).Return(nil, nil)
	f.schedules.EXPECT().Invalidate()

	require.NoError(t, f.svc.DeleteWorkout(ctx, f.trainerID, workout.ID))
}

func TestTrainerService_AssignProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns and replaces the active program", func(t *testing.T) {
		f := newTrainerFixture(t)
		client := f.managedClient()
		program := f.ownProgram()
		cpID := primitive.NewObjectID()

		f.users.EXPECT().GetByID(ctx, client.ID).Return(client, nil)
		f.programs.EXPECT().GetByID(ctx, program.ID).Return(program, nil)
		f.assignments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error) {
			assert.True(t, cp.IsActive)
			assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), cp.StartDate)
			require.NotNil(t, cp.DurationWeeks)
			assert.Equal(t, 4, *cp.DurationWeeks)
			return cpID, nil
		})
		f.assignments.EXPECT().DeactivateOthers(ctx, client.ID, cpID).Return(nil)
		f.schedules.EXPECT().Invalidate(client.ID)

		cp, err := f.svc.AssignProgram(ctx, f.trainerID, client.ID, service.AssignProgramInput{
			ProgramID:     program.ID,
			StartDate:     time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC),
			PhaseName:     "Base",
			ReplaceActive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, cpID, cp.ID)
		assert.Equal(t, "Base", cp.PhaseName)
	})

	t.Run("unmanaged client", func(t *testing.T) {
		f := newTrainerFixture(t)
		client := &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleClient}
		f.users.EXPECT().GetByID(ctx, client.ID).Return(client, nil)

		_, err := f.svc.AssignProgram(ctx, f.trainerID, client.ID, service.AssignProgramInput{
			ProgramID: primitive.NewObjectID(),
			StartDate: time.Now(),
		})
		assert.ErrorIs(t, err, service.ErrClientNotManaged)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newTrainerFixture(t)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := f.svc.AssignProgram(ctx, f.trainerID, primitive.NewObjectID(), service.AssignProgramInput{
			ProgramID: primitive.NewObjectID(),
			StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
		})
		assert.ErrorIs(t, err, service.ErrValidationFailed)
	})
}

func TestTrainerService_DeactivateAssignment(t *testing.T) {
	ctx := context.Background()
	f := newTrainerFixture(t)
	cp := &domain.ClientProgram{ID: primitive.NewObjectID(), ClientID: primitive.NewObjectID(), TrainerID: f.trainerID, IsActive: true}
	foreign := &domain.ClientProgram{ID: primitive.NewObjectID(), TrainerID: primitive.NewObjectID(), IsActive: true}

	f.assignments.EXPECT().GetByID(ctx, cp.ID).Return(cp, nil)
	f.assignments.EXPECT().Deactivate(ctx, cp.ID).Return(nil)
	f.schedules.EXPECT().Invalidate(cp.ClientID)
	require.NoError(t, f.svc.DeactivateAssignment(ctx, f.trainerID, cp.ID))

	f.assignments.EXPECT().GetByID(ctx, foreign.ID).Return(foreign, nil)
	assert.ErrorIs(t, f.svc.DeactivateAssignment(ctx, f.trainerID, foreign.ID), service.ErrAssignmentAccessDenied)
}

func TestTrainerService_GetClientCalendarChecksRoster(t *testing.T) {
	ctx := context.Background()
	f := newTrainerFixture(t)
	client := f.managedClient()
	from, to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	want := &service.CalendarView{ClientID: client.ID.Hex()}

	f.users.EXPECT().GetByID(ctx, client.ID).Return(client, nil)
	f.schedules.EXPECT().GetCalendar(ctx, client.ID, from, to).Return(want, nil)

	got, err := f.svc.GetClientCalendar(ctx, f.trainerID, client.ID, from, to)
	require.NoError(t, err)
	assert.Same(t, want, got)

	stranger := &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleClient, TrainerID: ptrID(primitive.NewObjectID())}
	f.users.EXPECT().GetByID(ctx, stranger.ID).Return(stranger, nil)
	_, err = f.svc.GetClientCalendar(ctx, f.trainerID, stranger.ID, from, to)
	assert.ErrorIs(t, err, service.ErrClientNotManaged)
}
