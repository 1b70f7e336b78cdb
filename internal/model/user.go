package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that can sign in to the admin panel.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RoleAdmin marks accounts allowed to perform privileged writes.
const RoleAdmin = "ADMIN"

// IsAdmin reports whether the user's role carries the admin marker.
// The check is case-insensitive so legacy roles like "admin" still pass.
func (u *User) IsAdmin() bool {
	return strings.Contains(strings.ToUpper(u.Role), RoleAdmin)
}
