package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutCompletion records that a client did a workout on a scheduled date.
// ScheduledDate is the calendar date the workout was planned for, not the
// moment it was finished.
type WorkoutCompletion struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ClientID        primitive.ObjectID  `bson:"clientId" json:"clientId"`
	WorkoutID       primitive.ObjectID  `bson:"workoutId" json:"workoutId"`
	ClientProgramID *primitive.ObjectID `bson:"clientProgramId,omitempty" json:"clientProgramId,omitempty"`
	ScheduledDate   string              `bson:"scheduledDate" json:"scheduledDate"` // YYYY-MM-DD
	OccurrenceID    string              `bson:"occurrenceId,omitempty" json:"occurrenceId,omitempty"`
	WorkoutLogID    *primitive.ObjectID `bson:"workoutLogId,omitempty" json:"workoutLogId,omitempty"`
	CompletedAt     time.Time           `bson:"completedAt" json:"completedAt"`
}

// WorkoutLog is a training session. It is a draft until CompletedAt is set.
type WorkoutLog struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ClientID        primitive.ObjectID  `bson:"clientId" json:"clientId"`
	WorkoutID       primitive.ObjectID  `bson:"workoutId" json:"workoutId"`
	ClientProgramID *primitive.ObjectID `bson:"clientProgramId,omitempty" json:"clientProgramId,omitempty"`
	ScheduledDate   string              `bson:"scheduledDate" json:"scheduledDate"`
	OccurrenceID    string              `bson:"occurrenceId,omitempty" json:"occurrenceId,omitempty"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Sets            []SetLog            `bson:"sets" json:"sets"`
	StartedAt       time.Time           `bson:"startedAt" json:"startedAt"`
	CompletedAt     *time.Time          `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (l *WorkoutLog) IsFinished() bool {
	return l.CompletedAt != nil
}

// SetLog is one performed set, identified within its log by
// (ExerciseID, SetNumber).
type SetLog struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	SetNumber  int                `bson:"setNumber" json:"setNumber"`
	Reps       int                `bson:"reps" json:"reps"`
	WeightKg   float64            `bson:"weightKg" json:"weightKg"`
	RPE        *float64           `bson:"rpe,omitempty" json:"rpe,omitempty"`
	Completed  bool               `bson:"completed" json:"completed"`
	LoggedAt   time.Time          `bson:"loggedAt" json:"loggedAt"`
}
