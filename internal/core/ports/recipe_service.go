package ports

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// SortOrder selects the ordering of a recipe listing.
type SortOrder string

const (
	// SortNewest orders by creation time, most recent first.
	SortNewest SortOrder = "newest"
	// SortTopRated orders by average rating, highest first.
	SortTopRated SortOrder = "top_rated"
)

// CreateRecipeInput carries a new recipe. Author defaults to "Unknown"
// when empty, matching the publishing flow.
type CreateRecipeInput struct {
	Name            string `validate:"required"`
	Description     string `validate:"required"`
	Ingredients     string `validate:"required"`
	Instructions    string `validate:"required"`
	Image           string
	Author          string
	Preparation     string
	CookingTime     string
	Servings        string
	Difficulty      domain.Difficulty `validate:"omitempty,oneof=Easy Medium Hard"`
	YoutubeTutorial string
}

// UpdateRecipeInput merges the non-nil fields onto the stored recipe. An
// unknown ID is a silent no-op.
type UpdateRecipeInput struct {
	ID              string `validate:"required"`
	Name            *string
	Description     *string
	Ingredients     *string
	Instructions    *string
	Image           *string
	Preparation     *string
	CookingTime     *string
	Servings        *string
	Difficulty      *domain.Difficulty
	YoutubeTutorial *string
	Hidden          *bool
}

// ListRecipesInput carries all parameters of the recipe listing pipeline.
type ListRecipesInput struct {
	Search        string    // case-insensitive substring on the recipe name
	Author        string    // exact username snapshot; "" = all authors
	RatingBucket  int       // 1..5 matches round(avg); 0 = all
	IncludeHidden bool      // admin views list hidden recipes too
	ViewerID      string    // when set, Favorite flags are resolved for this user
	Sort          SortOrder // defaults to SortNewest
	Page          int       // 1-based
	PageSize      int
}

// RecipeListItem is a recipe with its display-time derived fields. The
// derived fields are computed on read and never persisted.
type RecipeListItem struct {
	domain.Recipe
	AvgRating   float64
	ReviewCount int
	Favorite    bool
}

// ListRecipesResult is a page of the filtered, enriched recipe collection.
type ListRecipesResult struct {
	Items      []RecipeListItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ListFavoritesInput carries the favorites-screen query for one user.
type ListFavoritesInput struct {
	UserID   string `validate:"required"`
	Search   string
	Page     int
	PageSize int
}

// RecipeService defines recipe content and favorite use-cases.
type RecipeService interface {
	Create(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	Update(ctx context.Context, input UpdateRecipeInput) error
	Remove(ctx context.Context, id string) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	// RecordView increments the recipe's view counter.
	RecordView(ctx context.Context, id string) error
	List(ctx context.Context, input ListRecipesInput) (*ListRecipesResult, error)
	// TopRated returns visible recipes with at least one review, ordered by
	// average rating descending, capped at limit.
	TopRated(ctx context.Context, limit int) ([]RecipeListItem, error)
	AddFavorite(ctx context.Context, userID, recipeID string) error
	RemoveFavorite(ctx context.Context, userID, recipeID string) error
	FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error)
	ListFavorites(ctx context.Context, input ListFavoritesInput) (*ListRecipesResult, error)
}

// ViewRecorder is the sink the view dispatcher drains into.
type ViewRecorder interface {
	RecordView(ctx context.Context, recipeID string) error
}
