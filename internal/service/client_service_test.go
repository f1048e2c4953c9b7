package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"alcyxob/fitness-coach/internal/autosave"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/repository/mocks"
	"alcyxob/fitness-coach/internal/schedule"
	"alcyxob/fitness-coach/internal/service"
	servicemocks "alcyxob/fitness-coach/internal/service/mocks"
	"alcyxob/fitness-coach/internal/storage"
	storagemocks "alcyxob/fitness-coach/internal/storage/mocks"
)

type clientFixture struct {
	completions *mocks.MockCompletionRepository
	logs        *mocks.MockWorkoutLogRepository
	photos      *mocks.MockProgressPhotoRepository
	files       *storagemocks.MockFileStorage
	schedules   *servicemocks.MockScheduleService
	saver       *autosave.Saver
	metrics     *metrics.Manager
	now         time.Time

	clientID primitive.ObjectID
	svc      service.ClientService
}

func newClientFixture(t *testing.T) *clientFixture {
	ctrl := gomock.NewController(t)
	f := &clientFixture{
		completions: mocks.NewMockCompletionRepository(ctrl),
		logs:        mocks.NewMockWorkoutLogRepository(ctrl),
		photos:      mocks.NewMockProgressPhotoRepository(ctrl),
		files:       storagemocks.NewMockFileStorage(ctrl),
		schedules:   servicemocks.NewMockScheduleService(ctrl),
		metrics:     metrics.NewTestManager(),
		now:         time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC),
		clientID:    primitive.NewObjectID(),
	}
	// long enough that only explicit flushes run saves
	f.saver = autosave.NewSaver(time.Hour, time.Second, f.metrics)
	t.Cleanup(func() { _ = f.saver.Close(context.Background()) })

	f.svc = service.NewClientService(f.completions, f.logs, f.photos, f.files, f.schedules, f.saver, fixedClock{now: f.now}, f.metrics)
	return f
}

func (f *clientFixture) today() time.Time { return schedule.Day(f.now) }

func TestClientService_CompleteWorkout(t *testing.T) {
	ctx := context.Background()
	workoutID := primitive.NewObjectID()
	cpID := primitive.NewObjectID()

	t.Run("records today's occurrence", func(t *testing.T) {
		f := newClientFixture(t)
		occ := &service.Occurrence{
			Date:            f.today(),
			ClientProgramID: &cpID,
			OccurrenceID:    schedule.OccurrenceID(cpID.Hex(), f.today(), 0),
			Scheduled:       true,
		}
		f.schedules.EXPECT().Today(ctx, f.clientID).Return(f.today(), nil)
		f.schedules.EXPECT().LocateOccurrence(ctx, f.clientID, workoutID, f.today()).Return(occ, nil)
		f.completions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WorkoutCompletion) (primitive.ObjectID, error) {
			assert.Equal(t, "2024-03-13", c.ScheduledDate)
			assert.Equal(t, &cpID, c.ClientProgramID)
			assert.Equal(t, occ.OccurrenceID, c.OccurrenceID)
			assert.Equal(t, f.now, c.CompletedAt)
			return primitive.NewObjectID(), nil
		})

		c, err := f.svc.CompleteWorkout(ctx, f.clientID, workoutID, time.Time{})
		require.NoError(t, err)
		assert.False(t, c.ID.IsZero())
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterCompletions))
	})

	t.Run("future dates are refused", func(t *testing.T) {
		f := newClientFixture(t)
		f.schedules.EXPECT().Today(ctx, f.clientID).Return(f.today(), nil)

		_, err := f.svc.CompleteWorkout(ctx, f.clientID, workoutID, f.today().AddDate(0, 0, 1))
		assert.ErrorIs(t, err, service.ErrFutureCompletion)
	})

	t.Run("unscheduled workout", func(t *testing.T) {
		f := newClientFixture(t)
		yesterday := f.today().AddDate(0, 0, -1)
		f.schedules.EXPECT().Today(ctx, f.clientID).Return(f.today(), nil)
		f.schedules.EXPECT().LocateOccurrence(ctx, f.clientID, workoutID, yesterday).Return(&service.Occurrence{Date: yesterday}, nil)

		_, err := f.svc.CompleteWorkout(ctx, f.clientID, workoutID, yesterday)
		assert.ErrorIs(t, err, service.ErrWorkoutNotScheduled)
	})
}

func TestClientService_DraftSetsAreDebouncedUntilFinish(t *testing.T) {
	ctx := context.Background()
	f := newClientFixture(t)
	exerciseID := primitive.NewObjectID()
	cpID := primitive.NewObjectID()
	wl := &domain.WorkoutLog{
		ID:              primitive.NewObjectID(),
		ClientID:        f.clientID,
		WorkoutID:       primitive.NewObjectID(),
		ClientProgramID: &cpID,
		ScheduledDate:   "2024-03-13",
		OccurrenceID:    "occ",
	}
	first := []domain.SetLog{{ExerciseID: exerciseID, SetNumber: 1, Reps: 5, WeightKg: 100}}
	second := []domain.SetLog{
		{ExerciseID: exerciseID, SetNumber: 1, Reps: 5, WeightKg: 100, Completed: true},
		{ExerciseID: exerciseID, SetNumber: 2, Reps: 4, WeightKg: 105},
	}

	f.logs.EXPECT().GetByID(ctx, wl.ID).Return(wl, nil).Times(3)
	gomock.InOrder(
		f.logs.EXPECT().UpsertSets(gomock.Any(), wl.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ primitive.ObjectID, sets []domain.SetLog) error {
			require.Len(t, sets, 2)
			assert.Equal(t, 105.0, sets[1].WeightKg)
			assert.Equal(t, f.now, sets[0].LoggedAt)
			return nil
		}),
		f.logs.EXPECT().MarkCompleted(ctx, wl.ID, f.now).Return(nil),
		f.completions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WorkoutCompletion) (primitive.ObjectID, error) {
			assert.Equal(t, wl.WorkoutID, c.WorkoutID)
			assert.Equal(t, "occ", c.OccurrenceID)
			assert.Equal(t, &wl.ID, c.WorkoutLogID)
			return primitive.NewObjectID(), nil
		}),
	)
	finished := *wl
	finished.CompletedAt = &f.now
	f.logs.EXPECT().GetByID(ctx, wl.ID).Return(&finished, nil)

	require.NoError(t, f.svc.SaveDraftSets(ctx, f.clientID, wl.ID, first))
	require.NoError(t, f.svc.SaveDraftSets(ctx, f.clientID, wl.ID, second))
	assert.True(t, f.saver.Pending(wl.ID.Hex()))

	got, err := f.svc.FinishWorkoutLog(ctx, f.clientID, wl.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFinished())
	assert.False(t, f.saver.Pending(wl.ID.Hex()))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterAutosave.WithLabelValues("saved")))
}

func TestClientService_SaveDraftSetsGuards(t *testing.T) {
	ctx := context.Background()
	f := newClientFixture(t)
	foreign := &domain.WorkoutLog{ID: primitive.NewObjectID(), ClientID: primitive.NewObjectID()}
	done := &domain.WorkoutLog{ID: primitive.NewObjectID(), ClientID: f.clientID, CompletedAt: &f.now}
	open := &domain.WorkoutLog{ID: primitive.NewObjectID(), ClientID: f.clientID}
	missing := primitive.NewObjectID()

	f.logs.EXPECT().GetByID(ctx, foreign.ID).Return(foreign, nil)
	f.logs.EXPECT().GetByID(ctx, done.ID).Return(done, nil)
	f.logs.EXPECT().GetByID(ctx, open.ID).Return(open, nil)
	f.logs.EXPECT().GetByID(ctx, missing).Return(nil, repository.ErrNotFound)

	assert.ErrorIs(t, f.svc.SaveDraftSets(ctx, f.clientID, foreign.ID, nil), service.ErrWorkoutLogAccessDenied)
	assert.ErrorIs(t, f.svc.SaveDraftSets(ctx, f.clientID, done.ID, nil), service.ErrWorkoutLogFinished)
	assert.ErrorIs(t, f.svc.SaveDraftSets(ctx, f.clientID, open.ID, []domain.SetLog{{SetNumber: 1}}), service.ErrValidationFailed)
	assert.ErrorIs(t, f.svc.SaveDraftSets(ctx, f.clientID, missing, nil), service.ErrWorkoutLogNotFound)
}

func TestClientService_FinishSurfacesDraftFailure(t *testing.T) {
	ctx := context.Background()
	f := newClientFixture(t)
	wl := &domain.WorkoutLog{ID: primitive.NewObjectID(), ClientID: f.clientID, ScheduledDate: "2024-03-13"}
	sets := []domain.SetLog{{ExerciseID: primitive.NewObjectID(), SetNumber: 1}}

	f.logs.EXPECT().GetByID(ctx, wl.ID).Return(wl, nil).Times(2)
	f.logs.EXPECT().UpsertSets(gomock.Any(), wl.ID, gomock.Any()).Return(errors.New("write conflict"))

	require.NoError(t, f.svc.SaveDraftSets(ctx, f.clientID, wl.ID, sets))
	_, err := f.svc.FinishWorkoutLog(ctx, f.clientID, wl.ID)
	assert.ErrorContains(t, err, "write conflict")
}

func TestClientService_StartWorkoutLog(t *testing.T) {
	ctx := context.Background()
	f := newClientFixture(t)
	workoutID := primitive.NewObjectID()
	cpID := primitive.NewObjectID()
	occ := &service.Occurrence{Date: f.today(), ClientProgramID: &cpID, OccurrenceID: "occ", Scheduled: true}
	logID := primitive.NewObjectID()

	f.schedules.EXPECT().Today(ctx, f.clientID).Return(f.today(), nil)
	f.schedules.EXPECT().LocateOccurrence(ctx, f.clientID, workoutID, f.today()).Return(occ, nil)
	f.logs.EXPECT().Create(ctx, gomock.Any()).Return(logID, nil)

	wl, err := f.svc.StartWorkoutLog(ctx, f.clientID, workoutID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, logID, wl.ID)
	assert.Equal(t, "2024-03-13", wl.ScheduledDate)
	assert.NotNil(t, wl.Sets)
	assert.False(t, wl.IsFinished())
}

func TestClientService_ProgressPhotos(t *testing.T) {
	ctx := context.Background()

	t.Run("request url", func(t *testing.T) {
		f := newClientFixture(t)
		f.files.EXPECT().GeneratePresignedUploadURL(ctx, gomock.Any(), "image/png", storage.DefaultPresignedURLExpiry).
			Return("https://s3.example/upload", nil)

		resp, err := f.svc.RequestPhotoUploadURL(ctx, f.clientID, "image/PNG")
		require.NoError(t, err)
		assert.Equal(t, "https://s3.example/upload", resp.UploadURL)
		assert.True(t, storage.OwnsKey(f.clientID.Hex(), resp.ObjectKey))

		_, err = f.svc.RequestPhotoUploadURL(ctx, f.clientID, "application/pdf")
		assert.ErrorIs(t, err, storage.ErrUnsupportedFileType)
	})

	t.Run("confirm", func(t *testing.T) {
		f := newClientFixture(t)
		key, err := storage.ProgressPhotoKey(f.clientID.Hex(), "image/jpeg")
		require.NoError(t, err)
		f.files.EXPECT().ObjectSize(ctx, key).Return(int64(2048), nil)
		f.schedules.EXPECT().Today(ctx, f.clientID).Return(f.today(), nil)
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(primitive.NewObjectID(), nil)

		photo, err := f.svc.ConfirmPhotoUpload(ctx, f.clientID, service.ConfirmPhotoInput{ObjectKey: key, ContentType: "image/jpeg"})
		require.NoError(t, err)
		assert.Equal(t, int64(2048), photo.Size)
		assert.Equal(t, "2024-03-13", photo.TakenOn)
	})

	t.Run("confirm rejects foreign and missing objects", func(t *testing.T) {
		f := newClientFixture(t)
		foreignKey, err := storage.ProgressPhotoKey(primitive.NewObjectID().Hex(), "image/jpeg")
		require.NoError(t, err)
		ownKey, err := storage.ProgressPhotoKey(f.clientID.Hex(), "image/jpeg")
		require.NoError(t, err)
		f.files.EXPECT().ObjectSize(ctx, ownKey).Return(int64(0), storage.ErrObjectNotFound)

		_, err = f.svc.ConfirmPhotoUpload(ctx, f.clientID, service.ConfirmPhotoInput{ObjectKey: foreignKey, ContentType: "image/jpeg"})
		assert.ErrorIs(t, err, service.ErrUploadConfirmationFailed)
		_, err = f.svc.ConfirmPhotoUpload(ctx, f.clientID, service.ConfirmPhotoInput{ObjectKey: ownKey, ContentType: "image/jpeg"})
		assert.ErrorIs(t, err, service.ErrUploadConfirmationFailed)
		_, err = f.svc.ConfirmPhotoUpload(ctx, f.clientID, service.ConfirmPhotoInput{})
		assert.ErrorIs(t, err, service.ErrUploadMetadataMissing)
	})

	t.Run("list signs download urls", func(t *testing.T) {
		f := newClientFixture(t)
		photos := []domain.ProgressPhoto{{S3ObjectKey: "a"}, {S3ObjectKey: "b"}}
		f.photos.EXPECT().GetByClientID(ctx, f.clientID).Return(photos, nil)
		f.files.EXPECT().GeneratePresignedDownloadURL(ctx, "a", storage.DefaultPresignedURLExpiry).Return("https://s3.example/a", nil)
		f.files.EXPECT().GeneratePresignedDownloadURL(ctx, "b", storage.DefaultPresignedURLExpiry).Return("", errors.New("boom"))

		got, err := f.svc.GetProgressPhotos(ctx, f.clientID)
		require.NoError(t, err)
		assert.Equal(t, "https://s3.example/a", got[0].URL)
		assert.Empty(t, got[1].URL)
	})
}
