package ports

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// Store is the gateway over the six persisted collections. Reads run in
// degraded mode: a storage or decode failure is logged and surfaces as an
// empty slice, never as an error or a panic. Writes report their failure.
//
// Put operations append when the id is unknown and replace the existing
// record otherwise. Remove operations are no-ops for unknown ids.
type Store interface {
	Users(ctx context.Context) []domain.User
	PutUser(ctx context.Context, u domain.User) error
	RemoveUser(ctx context.Context, id string) error

	Profiles(ctx context.Context) []domain.Profile
	// UpsertProfile replaces the profile with the same UserID or appends a
	// new one. At most one profile exists per user.
	UpsertProfile(ctx context.Context, p domain.Profile) error
	RemoveProfile(ctx context.Context, userID string) error

	Recipes(ctx context.Context) []domain.Recipe
	PutRecipe(ctx context.Context, r domain.Recipe) error
	RemoveRecipe(ctx context.Context, id string) error

	Reviews(ctx context.Context) []domain.Review
	PutReview(ctx context.Context, r domain.Review) error
	RemoveReview(ctx context.Context, id string) error

	Favorites(ctx context.Context) []domain.Favorite
	// AddFavorite is a no-op when the (UserID, RecipeID) pair already exists.
	AddFavorite(ctx context.Context, f domain.Favorite) error
	RemoveFavorite(ctx context.Context, f domain.Favorite) error

	Chefs(ctx context.Context) []domain.Chef
	PutChef(ctx context.Context, c domain.Chef) error
	RemoveChef(ctx context.Context, id string) error
}
