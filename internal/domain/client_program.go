package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientProgram assigns a Program to a Client from StartDate on.
// Several can be active at once; each contributes its workouts to the
// client's calendar.
type ClientProgram struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID      primitive.ObjectID `bson:"clientId" json:"clientId"`
	ProgramID     primitive.ObjectID `bson:"programId" json:"programId"`
	TrainerID     primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	PhaseName     string             `bson:"phaseName,omitempty" json:"phaseName,omitempty"` // "Phase 1: Base"
	DurationWeeks *int               `bson:"durationWeeks,omitempty" json:"durationWeeks,omitempty"`
	AssignedAt    time.Time          `bson:"assignedAt" json:"assignedAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
