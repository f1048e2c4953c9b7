package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError distinguishes repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	AddClientIDToTrainer(ctx context.Context, trainerID, clientID primitive.ObjectID) error
	GetClientsByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.User, error)
	SetTrainerForClient(ctx context.Context, clientID, trainerID primitive.ObjectID) error
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	// Delete only removes exercises owned by trainerID.
	Delete(ctx context.Context, id, trainerID primitive.ObjectID) error
}

type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Program, error)
}

type ProgramWorkoutRepository interface {
	Create(ctx context.Context, workout *domain.ProgramWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramWorkout, error)
	// GetByProgramIDs returns the workouts of all given programs ordered by
	// orderIndex.
	GetByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) ([]domain.ProgramWorkout, error)
	Update(ctx context.Context, workout *domain.ProgramWorkout) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ClientProgramRepository interface {
	Create(ctx context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClientProgram, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error)
	GetActiveByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error)
	// GetActiveClientIDsByProgramID lists the clients that currently follow the program.
	GetActiveClientIDsByProgramID(ctx context.Context, programID primitive.ObjectID) ([]primitive.ObjectID, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	// DeactivateOthers deactivates every active assignment of the client except keep.
	DeactivateOthers(ctx context.Context, clientID, keep primitive.ObjectID) error
}

type CompletionRepository interface {
	// Create is idempotent per (client, workout, scheduled date); repeating it
	// returns the ID of the stored row.
	Create(ctx context.Context, completion *domain.WorkoutCompletion) (primitive.ObjectID, error)
	// GetInRange returns the client's completions with from <= scheduledDate <= to
	// (YYYY-MM-DD, inclusive).
	GetInRange(ctx context.Context, clientID primitive.ObjectID, from, to string) ([]domain.WorkoutCompletion, error)
}

type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error)
	// UpsertSets replaces or appends sets keyed by (exerciseId, setNumber).
	UpsertSets(ctx context.Context, logID primitive.ObjectID, sets []domain.SetLog) error
	MarkCompleted(ctx context.Context, logID primitive.ObjectID, at time.Time) error
}

type ProgressPhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressPhoto, error)
}
