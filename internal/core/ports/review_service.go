package ports

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// CreateReviewInput carries a new review. Rating must be a whole star
// count between 1 and 5 and the comment is mandatory.
type CreateReviewInput struct {
	RecipeID string `validate:"required"`
	UserID   string `validate:"required"`
	Rating   int    `validate:"required,min=1,max=5"`
	Comment  string `validate:"required,max=200"`
}

// UpdateReviewInput rewrites the rating and comment of an existing review;
// all other fields are immutable. An unknown ID is a silent no-op.
type UpdateReviewInput struct {
	ID      string `validate:"required"`
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"required,max=200"`
}

// ListReviewsInput carries the review listing query.
type ListReviewsInput struct {
	RecipeID string // "" = reviews of every recipe
	Search   string // matches reviewer username or recipe name
	Page     int
	PageSize int
}

// ReviewListItem is a review joined with its display fields. Username and
// RecipeName fall back to "Unknown" for dangling references.
type ReviewListItem struct {
	domain.Review
	Username     string
	Avatar       string
	RecipeName   string
	RecipeAuthor string
	RecipeImage  string
}

// ListReviewsResult is a page of the filtered, enriched review collection.
type ListReviewsResult struct {
	Items      []ReviewListItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ReviewService defines review use-cases.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, input UpdateReviewInput) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, input ListReviewsInput) (*ListReviewsResult, error)
}
