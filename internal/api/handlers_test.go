package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/schedule"
	"alcyxob/fitness-coach/internal/service"
	"alcyxob/fitness-coach/internal/service/mocks"
)

const (
	trainerToken = "trainer-token"
	clientToken  = "client-token"
)

type fakeRateLimiter struct {
	allowed int
	keys    []string
}

func (f *fakeRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	f.keys = append(f.keys, key)
	if f.allowed > 0 {
		f.allowed--
		return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: f.allowed}, nil
	}
	return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 30 * time.Second}, nil
}

type testServer struct {
	router    *gin.Engine
	auth      *mocks.MockAuthService
	trainer   *mocks.MockTrainerService
	client    *mocks.MockClientService
	exercise  *mocks.MockExerciseService
	schedules *mocks.MockScheduleService
	limiter   *fakeRateLimiter
	metrics   *metrics.Manager

	trainerID primitive.ObjectID
	clientID  primitive.ObjectID
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	reg := prometheus.NewRegistry()

	s := &testServer{
		router:    gin.New(),
		auth:      mocks.NewMockAuthService(ctrl),
		trainer:   mocks.NewMockTrainerService(ctrl),
		client:    mocks.NewMockClientService(ctrl),
		exercise:  mocks.NewMockExerciseService(ctrl),
		schedules: mocks.NewMockScheduleService(ctrl),
		limiter:   &fakeRateLimiter{allowed: 2},
		metrics:   metrics.NewManager("fitness_coach", "test", reg),
		trainerID: primitive.NewObjectID(),
		clientID:  primitive.NewObjectID(),
	}

	s.auth.EXPECT().ParseToken(trainerToken).
		Return(&service.Claims{UserID: s.trainerID.Hex(), Role: domain.RoleTrainer}, nil).AnyTimes()
	s.auth.EXPECT().ParseToken(clientToken).
		Return(&service.Claims{UserID: s.clientID.Hex(), Role: domain.RoleClient}, nil).AnyTimes()

	SetupRoutes(s.router, s.auth, s.trainer, s.client, s.exercise, s.schedules, RouteOptions{
		Metrics:       s.metrics,
		Gatherer:      reg,
		RateLimiter:   s.limiter,
		AuthPerMinute: 2,
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := schedule.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestPingAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterRequests.WithLabelValues("GET", "/ping", "200")))

	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fitness_coach_test_requests_total")
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)
	s.auth.EXPECT().ParseToken("stale").Return(nil, service.ErrTokenExpired)
	s.auth.EXPECT().ParseToken("junk").Return(nil, service.ErrInvalidToken)

	rec := s.do(t, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/me", "stale", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired", errorMessage(t, rec))

	rec = s.do(t, http.MethodGet, "/api/v1/me", "junk", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/me", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"`+s.clientID.Hex()+`","role":"client"}`, rec.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/trainer/clients", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/client/schedule", trainerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRateLimit(t *testing.T) {
	s := newTestServer(t)
	s.auth.EXPECT().Login(gomock.Any(), "a@b.co", "pw").Return("", nil, service.ErrAuthenticationFailed).Times(2)

	body := LoginRequest{Email: "a@b.co", Password: "pw"}
	for i := 0; i < 2; i++ {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterRateLimited))
	assert.Contains(t, s.limiter.keys[0], "/api/v1/auth/login")
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Robin", Email: "robin@example.com", Role: domain.RoleClient, TimeZone: "Europe/Paris"}
	s.auth.EXPECT().Register(gomock.Any(), service.RegisterInput{
		Name: "Robin", Email: "robin@example.com", Password: "longenough", Role: domain.RoleClient, TimeZone: "Europe/Paris",
	}).Return(user, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Name: "Robin", Email: "robin@example.com", Password: "longenough", Role: domain.RoleClient, TimeZone: "Europe/Paris",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, user.ID.Hex(), got.ID)
	assert.Equal(t, "Europe/Paris", got.TimeZone)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{Name: "x", Email: "nope", Password: "short", Role: "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientCalendarRanges(t *testing.T) {
	s := newTestServer(t)
	view := &service.CalendarView{ClientID: s.clientID.Hex(), Days: []schedule.CalendarDay{}}

	s.schedules.EXPECT().GetCalendar(gomock.Any(), s.clientID, day(t, "2024-02-01"), day(t, "2024-02-29")).Return(view, nil)
	rec := s.do(t, http.MethodGet, "/api/v1/client/calendar?month=2024-02", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.schedules.EXPECT().GetCalendar(gomock.Any(), s.clientID, day(t, "2024-03-04"), day(t, "2024-03-10")).Return(view, nil)
	rec = s.do(t, http.MethodGet, "/api/v1/client/calendar?from=2024-03-04&to=2024-03-10", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.schedules.EXPECT().Today(gomock.Any(), s.clientID).Return(day(t, "2024-03-13"), nil)
	s.schedules.EXPECT().GetCalendar(gomock.Any(), s.clientID, day(t, "2024-03-01"), day(t, "2024-03-31")).Return(view, nil)
	rec = s.do(t, http.MethodGet, "/api/v1/client/calendar", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, query := range []string{"?month=March", "?from=2024-03-04", "?from=2024-03-04&to=03/10/2024"} {
		rec = s.do(t, http.MethodGet, "/api/v1/client/calendar"+query, clientToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}

	s.schedules.EXPECT().GetCalendar(gomock.Any(), s.clientID, gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidDateRange)
	rec = s.do(t, http.MethodGet, "/api/v1/client/calendar?from=2024-03-10&to=2024-03-04", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientScheduleAndStreak(t *testing.T) {
	s := newTestServer(t)
	s.schedules.EXPECT().GetSchedule(gomock.Any(), s.clientID).Return(&service.ScheduleView{ClientID: s.clientID.Hex(), CurrentWeek: 2}, nil)
	s.schedules.EXPECT().GetStreak(gomock.Any(), s.clientID).Return(&schedule.Streak{Current: 3, Longest: 5}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/client/schedule", clientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view service.ScheduleView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.CurrentWeek)

	rec = s.do(t, http.MethodGet, "/api/v1/client/streak", clientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"streak":3,"longestStreak":5}`, rec.Body.String())
}

func TestCompleteWorkout(t *testing.T) {
	s := newTestServer(t)
	workoutID := primitive.NewObjectID()
	path := "/api/v1/client/workouts/" + workoutID.Hex() + "/complete"

	s.client.EXPECT().CompleteWorkout(gomock.Any(), s.clientID, workoutID, day(t, "2024-03-11")).
		Return(&domain.WorkoutCompletion{ID: primitive.NewObjectID(), ScheduledDate: "2024-03-11"}, nil)
	rec := s.do(t, http.MethodPost, path, clientToken, CompleteWorkoutRequest{Date: "2024-03-11"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	s.client.EXPECT().CompleteWorkout(gomock.Any(), s.clientID, workoutID, time.Time{}).
		Return(nil, service.ErrWorkoutNotScheduled)
	rec = s.do(t, http.MethodPost, path, clientToken, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/client/workouts/not-an-id/complete", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutLogFlow(t *testing.T) {
	s := newTestServer(t)
	workoutID := primitive.NewObjectID()
	logID := primitive.NewObjectID()
	sets := []domain.SetLog{{ExerciseID: primitive.NewObjectID(), SetNumber: 1, Reps: 8, WeightKg: 60}}

	s.client.EXPECT().StartWorkoutLog(gomock.Any(), s.clientID, workoutID, time.Time{}).Return(&domain.WorkoutLog{ID: logID}, nil)
	rec := s.do(t, http.MethodPost, "/api/v1/client/workout-logs", clientToken, StartWorkoutLogRequest{WorkoutID: workoutID.Hex()})
	assert.Equal(t, http.StatusCreated, rec.Code)

	s.client.EXPECT().SaveDraftSets(gomock.Any(), s.clientID, logID, gomock.Len(1)).Return(nil)
	rec = s.do(t, http.MethodPut, "/api/v1/client/workout-logs/"+logID.Hex()+"/sets", clientToken, SaveSetsRequest{Sets: sets})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	s.client.EXPECT().FinishWorkoutLog(gomock.Any(), s.clientID, logID).Return(nil, service.ErrWorkoutLogFinished)
	rec = s.do(t, http.MethodPost, "/api/v1/client/workout-logs/"+logID.Hex()+"/finish", clientToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProgressPhotos(t *testing.T) {
	s := newTestServer(t)

	s.client.EXPECT().RequestPhotoUploadURL(gomock.Any(), s.clientID, "image/gif").Return(nil, errors.New("wrapped: unsupported file type"))
	rec := s.do(t, http.MethodPost, "/api/v1/client/progress-photos/upload-url", clientToken, UploadURLRequest{ContentType: "image/gif"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate upload URL.", errorMessage(t, rec))

	s.client.EXPECT().ConfirmPhotoUpload(gomock.Any(), s.clientID, service.ConfirmPhotoInput{
		ObjectKey: "k", ContentType: "image/png", TakenOn: day(t, "2024-03-01"),
	}).Return(&domain.ProgressPhoto{TakenOn: "2024-03-01"}, nil)
	rec = s.do(t, http.MethodPost, "/api/v1/client/progress-photos/confirm", clientToken, ConfirmPhotoRequest{
		ObjectKey: "k", ContentType: "image/png", TakenOn: "2024-03-01",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	s.client.EXPECT().GetProgressPhotos(gomock.Any(), s.clientID).Return(nil, nil)
	rec = s.do(t, http.MethodGet, "/api/v1/client/progress-photos", clientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAssignProgram(t *testing.T) {
	s := newTestServer(t)
	clientID := primitive.NewObjectID()
	programID := primitive.NewObjectID()
	path := "/api/v1/trainer/clients/" + clientID.Hex() + "/programs"
	end := day(t, "2024-06-30")

	s.trainer.EXPECT().AssignProgram(gomock.Any(), s.trainerID, clientID, service.AssignProgramInput{
		ProgramID:     programID,
		StartDate:     day(t, "2024-04-01"),
		EndDate:       &end,
		PhaseName:     "Peak",
		ReplaceActive: true,
	}).Return(&domain.ClientProgram{ID: primitive.NewObjectID(), IsActive: true}, nil)
	rec := s.do(t, http.MethodPost, path, trainerToken, AssignProgramRequest{
		ProgramID: programID.Hex(), StartDate: "2024-04-01", EndDate: "2024-06-30", PhaseName: "Peak", ReplaceActive: true,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	s.trainer.EXPECT().AssignProgram(gomock.Any(), s.trainerID, clientID, gomock.Any()).Return(nil, service.ErrClientNotManaged)
	rec = s.do(t, http.MethodPost, path, trainerToken, AssignProgramRequest{ProgramID: programID.Hex(), StartDate: "2024-04-01"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, path, trainerToken, AssignProgramRequest{ProgramID: programID.Hex(), StartDate: "April 1st"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddWorkoutParsesFinisherParent(t *testing.T) {
	s := newTestServer(t)
	programID := primitive.NewObjectID()
	parentID := primitive.NewObjectID()
	path := "/api/v1/trainer/programs/" + programID.Hex() + "/workouts"
	dow := 5

	s.trainer.EXPECT().AddWorkout(gomock.Any(), s.trainerID, programID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ primitive.ObjectID, in service.WorkoutInput) (*domain.ProgramWorkout, error) {
			require.NotNil(t, in.ParentWorkoutID)
			assert.Equal(t, parentID, *in.ParentWorkoutID)
			return nil, service.ErrInvalidFinisher
		})
	rec := s.do(t, http.MethodPost, path, trainerToken, WorkoutRequest{Name: "Burnout", DayOfWeek: &dow, ParentWorkoutID: parentID.Hex()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := 9
	rec = s.do(t, http.MethodPost, path, trainerToken, WorkoutRequest{Name: "Burnout", DayOfWeek: &bad})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrainerClientCalendar(t *testing.T) {
	s := newTestServer(t)
	clientID := primitive.NewObjectID()

	s.trainer.EXPECT().GetClientCalendar(gomock.Any(), s.trainerID, clientID, day(t, "2024-01-01"), day(t, "2024-01-31")).
		Return(nil, service.ErrClientNotManaged)
	rec := s.do(t, http.MethodGet, "/api/v1/trainer/clients/"+clientID.Hex()+"/calendar?month=2024-01", trainerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExerciseCRUD(t *testing.T) {
	s := newTestServer(t)
	exerciseID := primitive.NewObjectID()

	s.exercise.EXPECT().GetExercisesByTrainer(gomock.Any(), s.trainerID).Return(nil, nil)
	rec := s.do(t, http.MethodGet, "/api/v1/exercises", trainerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.exercise.EXPECT().DeleteExercise(gomock.Any(), s.trainerID, exerciseID).Return(service.ErrExerciseNotFound)
	rec = s.do(t, http.MethodDelete, "/api/v1/exercises/"+exerciseID.Hex(), trainerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/exercises", trainerToken, ExerciseRequest{Name: "Row", VideoURL: "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
