package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/autosave"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/schedule"
	"alcyxob/fitness-coach/internal/storage"
)

var (
	ErrWorkoutNotScheduled      = errors.New("workout is not scheduled for this date")
	ErrFutureCompletion         = errors.New("cannot complete a workout scheduled in the future")
	ErrWorkoutLogNotFound       = errors.New("workout log not found")
	ErrWorkoutLogAccessDenied   = errors.New("access denied to this workout log")
	ErrWorkoutLogFinished       = errors.New("workout log is already finished")
	ErrUploadURLError           = errors.New("failed to generate upload URL")
	ErrUploadConfirmationFailed = errors.New("failed to confirm upload")
	ErrUploadMetadataMissing    = errors.New("upload metadata is missing")
)

// UploadURLResponse carries the presigned URL and the key the client reports
// back on confirm.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	ExpiresIn int    `json:"expiresInSeconds"`
}

type ConfirmPhotoInput struct {
	ObjectKey   string
	ContentType string
	TakenOn     time.Time
	Notes       string
}

type ClientService interface {
	// CompleteWorkout records that the client did workoutID on date. A zero
	// date means today. Repeating the call is harmless.
	CompleteWorkout(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*domain.WorkoutCompletion, error)

	StartWorkoutLog(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*domain.WorkoutLog, error)
	// SaveDraftSets queues the sets for a debounced write.
	SaveDraftSets(ctx context.Context, clientID, logID primitive.ObjectID, sets []domain.SetLog) error
	// FinishWorkoutLog writes any pending draft, closes the log and records
	// the completion.
	FinishWorkoutLog(ctx context.Context, clientID, logID primitive.ObjectID) (*domain.WorkoutLog, error)

	RequestPhotoUploadURL(ctx context.Context, clientID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmPhotoUpload(ctx context.Context, clientID primitive.ObjectID, in ConfirmPhotoInput) (*domain.ProgressPhoto, error)
	GetProgressPhotos(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressPhoto, error)
}

type clientService struct {
	completionRepo repository.CompletionRepository
	workoutLogRepo repository.WorkoutLogRepository
	photoRepo      repository.ProgressPhotoRepository
	fileStorage    storage.FileStorage
	schedules      ScheduleService
	saver          *autosave.Saver
	clock          Clock
	metrics        *metrics.Manager
}

func NewClientService(
	completionRepo repository.CompletionRepository,
	workoutLogRepo repository.WorkoutLogRepository,
	photoRepo repository.ProgressPhotoRepository,
	fileStorage storage.FileStorage,
	schedules ScheduleService,
	saver *autosave.Saver,
	clock Clock,
	metricsManager *metrics.Manager,
) ClientService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &clientService{
		completionRepo: completionRepo,
		workoutLogRepo: workoutLogRepo,
		photoRepo:      photoRepo,
		fileStorage:    fileStorage,
		schedules:      schedules,
		saver:          saver,
		clock:          clock,
		metrics:        metricsManager,
	}
}

// === Completions ===

// locate resolves date (zero means today) to a scheduled occurrence that is
// not in the future.
func (s *clientService) locate(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*Occurrence, error) {
	today, err := s.schedules.Today(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = today
	}
	date = schedule.Day(date)
	if date.After(today) {
		return nil, ErrFutureCompletion
	}

	occ, err := s.schedules.LocateOccurrence(ctx, clientID, workoutID, date)
	if err != nil {
		return nil, err
	}
	if !occ.Scheduled {
		return nil, fmt.Errorf("%w: %s", ErrWorkoutNotScheduled, schedule.DateKey(date))
	}
	return occ, nil
}

func (s *clientService) CompleteWorkout(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*domain.WorkoutCompletion, error) {
	occ, err := s.locate(ctx, clientID, workoutID, date)
	if err != nil {
		return nil, err
	}
	return s.recordCompletion(ctx, clientID, workoutID, occ, nil)
}

func (s *clientService) recordCompletion(ctx context.Context, clientID, workoutID primitive.ObjectID, occ *Occurrence, logID *primitive.ObjectID) (*domain.WorkoutCompletion, error) {
	completion := &domain.WorkoutCompletion{
		ClientID:        clientID,
		WorkoutID:       workoutID,
		ClientProgramID: occ.ClientProgramID,
		ScheduledDate:   schedule.DateKey(occ.Date),
		OccurrenceID:    occ.OccurrenceID,
		WorkoutLogID:    logID,
		CompletedAt:     s.clock.Now().UTC(),
	}
	id, err := s.completionRepo.Create(ctx, completion)
	if err != nil {
		log.Errorf("record completion of workout %s for client %s: %s", workoutID.Hex(), clientID.Hex(), err)
		return nil, err
	}
	completion.ID = id

	if s.metrics != nil {
		s.metrics.CounterCompletions.Inc()
	}
	return completion, nil
}

// === Workout logs ===

func (s *clientService) StartWorkoutLog(ctx context.Context, clientID, workoutID primitive.ObjectID, date time.Time) (*domain.WorkoutLog, error) {
	occ, err := s.locate(ctx, clientID, workoutID, date)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	wl := &domain.WorkoutLog{
		ClientID:        clientID,
		WorkoutID:       workoutID,
		ClientProgramID: occ.ClientProgramID,
		ScheduledDate:   schedule.DateKey(occ.Date),
		OccurrenceID:    occ.OccurrenceID,
		Sets:            []domain.SetLog{},
		StartedAt:       now,
		UpdatedAt:       now,
	}
	id, err := s.workoutLogRepo.Create(ctx, wl)
	if err != nil {
		return nil, err
	}
	wl.ID = id
	return wl, nil
}

func (s *clientService) ownedLog(ctx context.Context, clientID, logID primitive.ObjectID) (*domain.WorkoutLog, error) {
	wl, err := s.workoutLogRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutLogNotFound
		}
		return nil, err
	}
	if wl.ClientID != clientID {
		return nil, ErrWorkoutLogAccessDenied
	}
	return wl, nil
}

func (s *clientService) SaveDraftSets(ctx context.Context, clientID, logID primitive.ObjectID, sets []domain.SetLog) error {
	wl, err := s.ownedLog(ctx, clientID, logID)
	if err != nil {
		return err
	}
	if wl.IsFinished() {
		return ErrWorkoutLogFinished
	}
	for i, set := range sets {
		if set.ExerciseID.IsZero() || set.SetNumber < 1 {
			return fmt.Errorf("%w: set %d needs an exerciseId and a setNumber", ErrValidationFailed, i)
		}
	}

	now := s.clock.Now().UTC()
	draft := make([]domain.SetLog, len(sets))
	copy(draft, sets)
	for i := range draft {
		if draft[i].LoggedAt.IsZero() {
			draft[i].LoggedAt = now
		}
	}

	return s.saver.Schedule(logID.Hex(), func(ctx context.Context) error {
		return s.workoutLogRepo.UpsertSets(ctx, logID, draft)
	})
}

func (s *clientService) FinishWorkoutLog(ctx context.Context, clientID, logID primitive.ObjectID) (*domain.WorkoutLog, error) {
	wl, err := s.ownedLog(ctx, clientID, logID)
	if err != nil {
		return nil, err
	}
	if wl.IsFinished() {
		return nil, ErrWorkoutLogFinished
	}

	if err := s.saver.Flush(ctx, logID.Hex()); err != nil {
		return nil, fmt.Errorf("save pending sets: %w", err)
	}

	now := s.clock.Now().UTC()
	if err := s.workoutLogRepo.MarkCompleted(ctx, logID, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutLogFinished
		}
		return nil, err
	}

	date, err := schedule.ParseDate(wl.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("workout log %s: %w", logID.Hex(), err)
	}
	occ := &Occurrence{
		Date:            date,
		ClientProgramID: wl.ClientProgramID,
		OccurrenceID:    wl.OccurrenceID,
		Scheduled:       true,
	}
	if _, err := s.recordCompletion(ctx, clientID, wl.WorkoutID, occ, &logID); err != nil {
		return nil, err
	}

	finished, err := s.workoutLogRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	return finished, nil
}

// === Progress photos ===

func (s *clientService) RequestPhotoUploadURL(ctx context.Context, clientID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	objectKey, err := storage.ProgressPhotoKey(clientID.Hex(), contentType)
	if err != nil {
		return nil, err
	}

	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, strings.ToLower(contentType), storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Errorf("presign upload for client %s: %s", clientID.Hex(), err)
		return nil, ErrUploadURLError
	}

	return &UploadURLResponse{
		UploadURL: url,
		ObjectKey: objectKey,
		ExpiresIn: int(storage.DefaultPresignedURLExpiry.Seconds()),
	}, nil
}

func (s *clientService) ConfirmPhotoUpload(ctx context.Context, clientID primitive.ObjectID, in ConfirmPhotoInput) (*domain.ProgressPhoto, error) {
	if in.ObjectKey == "" || in.ContentType == "" {
		return nil, ErrUploadMetadataMissing
	}
	if !storage.OwnsKey(clientID.Hex(), in.ObjectKey) {
		return nil, fmt.Errorf("%w: object key was not issued to this client", ErrUploadConfirmationFailed)
	}

	size, err := s.fileStorage.ObjectSize(ctx, in.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: nothing was uploaded", ErrUploadConfirmationFailed)
		}
		return nil, err
	}

	takenOn := in.TakenOn
	if takenOn.IsZero() {
		if takenOn, err = s.schedules.Today(ctx, clientID); err != nil {
			return nil, err
		}
	}

	photo := &domain.ProgressPhoto{
		ClientID:    clientID,
		S3ObjectKey: in.ObjectKey,
		ContentType: strings.ToLower(in.ContentType),
		Size:        size,
		TakenOn:     schedule.DateKey(takenOn),
		Notes:       in.Notes,
		UploadedAt:  s.clock.Now().UTC(),
	}
	id, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: already confirmed", ErrUploadConfirmationFailed)
		}
		return nil, err
	}
	photo.ID = id
	return photo, nil
}

func (s *clientService) GetProgressPhotos(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	photos, err := s.photoRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photos[i].S3ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Warnf("presign download of %s: %s", photos[i].S3ObjectKey, err)
			continue
		}
		photos[i].URL = url
	}
	return photos, nil
}
