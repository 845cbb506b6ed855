package domain

import (
	"errors"
	"time"
)

var ErrChefNotFound = errors.New("chef not found")

// Chef is an auxiliary registry entry tracking accounts promoted to the
// chef role. DisplayName and Specialty are caller-supplied.
type Chef struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId,omitempty" bson:"userId,omitempty"`
	DisplayName string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Specialty   string    `json:"specialty,omitempty" bson:"specialty,omitempty"`
	DateCreated time.Time `json:"dateCreated" bson:"dateCreated"`
}
