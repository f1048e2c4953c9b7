package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramWorkout is one workout of a program.
//
// DayOfWeek uses 0=Sunday..6=Saturday; a workout without a day is never placed
// on the calendar. WeekNumber is 1-based and optional: programs where no
// workout carries one repeat the same week forever. A workout with a
// ParentWorkoutID is a finisher appended to its parent and is not scheduled
// on its own.
type ProgramWorkout struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ProgramID       primitive.ObjectID  `bson:"programId" json:"programId"`
	TrainerID       primitive.ObjectID  `bson:"trainerId" json:"trainerId"`
	Name            string              `bson:"name" json:"name"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	DayOfWeek       *int                `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`
	WeekNumber      *int                `bson:"weekNumber,omitempty" json:"weekNumber,omitempty"`
	ParentWorkoutID *primitive.ObjectID `bson:"parentWorkoutId,omitempty" json:"parentWorkoutId,omitempty"`
	OrderIndex      int                 `bson:"orderIndex" json:"orderIndex"`
	Exercises       []WorkoutExercise   `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type WorkoutExercise struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name       string             `bson:"name" json:"name"`
	OrderIndex int                `bson:"orderIndex" json:"orderIndex"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Sets       []ExerciseSet      `bson:"sets,omitempty" json:"sets,omitempty"`
}

// ExerciseSet is a prescribed set. Reps is free text ("8-12", "AMRAP").
type ExerciseSet struct {
	SetNumber      int      `bson:"setNumber" json:"setNumber"`
	Reps           string   `bson:"reps,omitempty" json:"reps,omitempty"`
	TargetWeightKg *float64 `bson:"targetWeightKg,omitempty" json:"targetWeightKg,omitempty"`
	RestSeconds    int      `bson:"restSeconds,omitempty" json:"restSeconds,omitempty"`
	Tempo          string   `bson:"tempo,omitempty" json:"tempo,omitempty"`
}

// IsFinisher reports whether the workout hangs off another workout.
func (w *ProgramWorkout) IsFinisher() bool {
	return w.ParentWorkoutID != nil && !w.ParentWorkoutID.IsZero()
}
