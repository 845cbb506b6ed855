package domain

import (
	"errors"
	"time"
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleChef  = "chef"
	RoleAdmin = "admin"
)

// MaxUsernameLength is enforced on registration.
const MaxUsernameLength = 10

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is a registered account. Email is unique case-insensitively; the
// password is stored as an opaque string and never interpreted by the core.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	Password     string    `json:"password" bson:"password"`
	Role         string    `json:"role" bson:"role"`
	ProfileImage string    `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Introduction string    `json:"introduction,omitempty" bson:"introduction,omitempty"`
	DateJoined   time.Time `json:"dateJoined" bson:"dateJoined"`
}

// Profile holds the editable presentation data of a user, keyed 1:1 by
// UserID. Created lazily on first edit with upsert semantics.
type Profile struct {
	UserID       string `json:"userID" bson:"userID"`
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Introduction string `json:"introduction,omitempty" bson:"introduction,omitempty"`
}
