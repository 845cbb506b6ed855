// Package enrich computes display-time derived fields by joining the raw
// entity collections in memory. Every function is pure: no I/O, inputs are
// never mutated, results are freshly allocated.
package enrich

import (
	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// UnknownLabel substitutes for display fields whose referenced entity no
// longer exists (deleted users, removed recipes).
const UnknownLabel = "Unknown"

// Rating accumulates the review ratings of one recipe.
type Rating struct {
	Sum   int
	Count int
}

// Average returns the arithmetic mean, 0 when the recipe has no reviews.
func (r Rating) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Sum) / float64(r.Count)
}

// RatingIndex maps recipe id to its accumulated rating.
type RatingIndex map[string]Rating

// NewRatingIndex folds reviews into per-recipe sums and counts.
func NewRatingIndex(reviews []domain.Review) RatingIndex {
	idx := make(RatingIndex, len(reviews))
	for _, rv := range reviews {
		r := idx[rv.RecipeID]
		r.Sum += rv.Rating
		r.Count++
		idx[rv.RecipeID] = r
	}
	return idx
}

// RatedRecipe is a recipe with its derived rating and favorite membership.
type RatedRecipe struct {
	domain.Recipe
	AvgRating   float64
	ReviewCount int
	Favorite    bool
}

// WithAverageRating attaches the average review rating of each recipe,
// preserving input order.
func WithAverageRating(recipes []domain.Recipe, reviews []domain.Review) []RatedRecipe {
	idx := NewRatingIndex(reviews)
	rated := make([]RatedRecipe, 0, len(recipes))
	for _, rec := range recipes {
		r := idx[rec.ID]
		rated = append(rated, RatedRecipe{
			Recipe:      rec,
			AvgRating:   r.Average(),
			ReviewCount: r.Count,
		})
	}
	return rated
}

// WithFavoriteFlag marks the recipes whose id appears in favoriteRecipeIDs.
func WithFavoriteFlag(rated []RatedRecipe, favoriteRecipeIDs []string) []RatedRecipe {
	members := make(map[string]struct{}, len(favoriteRecipeIDs))
	for _, id := range favoriteRecipeIDs {
		members[id] = struct{}{}
	}
	out := make([]RatedRecipe, len(rated))
	for i, r := range rated {
		_, r.Favorite = members[r.ID]
		out[i] = r
	}
	return out
}

// ReviewDetail is a review joined with the reviewer's and recipe's display
// fields.
type ReviewDetail struct {
	domain.Review
	Username     string
	Avatar       string
	RecipeName   string
	RecipeAuthor string
	RecipeImage  string
}

// WithReviewDisplayFields left-joins each review to its user, the user's
// profile, and its recipe. Dangling references degrade to UnknownLabel for
// names and to an empty avatar/image.
func WithReviewDisplayFields(
	reviews []domain.Review,
	users []domain.User,
	profiles []domain.Profile,
	recipes []domain.Recipe,
) []ReviewDetail {
	usersByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	profilesByUser := make(map[string]domain.Profile, len(profiles))
	for _, p := range profiles {
		profilesByUser[p.UserID] = p
	}
	recipesByID := make(map[string]domain.Recipe, len(recipes))
	for _, r := range recipes {
		recipesByID[r.ID] = r
	}

	details := make([]ReviewDetail, 0, len(reviews))
	for _, rv := range reviews {
		d := ReviewDetail{
			Review:       rv,
			Username:     UnknownLabel,
			RecipeName:   UnknownLabel,
			RecipeAuthor: UnknownLabel,
		}
		if u, ok := usersByID[rv.UserID]; ok {
			if u.Username != "" {
				d.Username = u.Username
			}
			// Profile image wins over the image stored on the account.
			d.Avatar = u.ProfileImage
			if p, ok := profilesByUser[u.ID]; ok && p.ProfileImage != "" {
				d.Avatar = p.ProfileImage
			}
		}
		if rec, ok := recipesByID[rv.RecipeID]; ok {
			if rec.Name != "" {
				d.RecipeName = rec.Name
			}
			if rec.Author != "" {
				d.RecipeAuthor = rec.Author
			}
			d.RecipeImage = rec.Image
		}
		details = append(details, d)
	}
	return details
}
