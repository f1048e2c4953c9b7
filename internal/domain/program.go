package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a reusable training template owned by a trainer. Its workouts
// live in the program_workouts collection.
type Program struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID     primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Name          string             `bson:"name" json:"name"`         // "Hypertrophy Block"
	Category      string             `bson:"category" json:"category"` // "strength", "conditioning"
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DurationWeeks *int               `bson:"durationWeeks,omitempty" json:"durationWeeks,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgramWithWorkouts is the read model returned to trainers.
type ProgramWithWorkouts struct {
	Program
	Workouts []ProgramWorkout `json:"workouts"`
}
