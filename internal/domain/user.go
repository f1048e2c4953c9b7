package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleClient
}

// User is either a Trainer or a Client.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique, stored lower-case
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	// TimeZone is an IANA name used to decide the client's "today".
	// Empty means the server default.
	TimeZone  string    `bson:"timeZone,omitempty" json:"timeZone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Trainer only.
	ClientIDs []primitive.ObjectID `bson:"clientIds,omitempty" json:"clientIds,omitempty"`

	// Client only.
	TrainerID *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// Manages reports whether the trainer has the client on their roster.
func (u *User) Manages(clientID primitive.ObjectID) bool {
	if !u.IsTrainer() {
		return false
	}
	for _, id := range u.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

// Location returns the user's time zone, or fallback when unset or unknown.
func (u *User) Location(fallback *time.Location) *time.Location {
	if u == nil || u.TimeZone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(u.TimeZone)
	if err != nil {
		return fallback
	}
	return loc
}
