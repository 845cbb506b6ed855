package domain

import (
	"errors"
	"time"
)

// MaxCommentLength caps review comments.
const MaxCommentLength = 200

var ErrReviewNotFound = errors.New("review not found")

// Review is a user's rating of a recipe. A user may review the same recipe
// more than once; no uniqueness constraint exists on (UserID, RecipeID).
type Review struct {
	ID          string    `json:"id" bson:"id"`
	RecipeID    string    `json:"recipeId" bson:"recipeId"`
	UserID      string    `json:"userId" bson:"userId"`
	Rating      int       `json:"rating" bson:"rating"`
	Comment     string    `json:"comment" bson:"comment"`
	DateCreated time.Time `json:"dateCreated" bson:"dateCreated"`
}
