package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user with their internship profile
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // Password hash is never returned in JSON
	Academics []string           `bson:"academics" json:"academics"`
	Hobbies   []string           `bson:"hobbies" json:"hobbies"`
	Skills    []string           `bson:"skills" json:"skills"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ProfileUpdate carries the fields a user may change after signup.
// A nil slice or empty name means "leave the stored value untouched";
// email and password are deliberately not updatable here.
type ProfileUpdate struct {
	Name      string   `json:"name"`
	Academics []string `json:"academics"`
	Hobbies   []string `json:"hobbies"`
	Skills    []string `json:"skills"`
}

// Empty reports whether the update would change nothing besides updated_at.
func (p ProfileUpdate) Empty() bool {
	return p.Name == "" && p.Academics == nil && p.Hobbies == nil && p.Skills == nil
}
