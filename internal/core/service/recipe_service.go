package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/enrich"
	"github.com/kusinadelights/recipe-platform/internal/core/pager"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/core/query"
	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

const defaultTopRatedLimit = 10

// RecipeService coordinates recipe and favorite mutations and serves the
// enriched recipe listings.
type RecipeService struct {
	store           ports.Store
	defaultPageSize int
	log             zerolog.Logger
}

var _ ports.RecipeService = (*RecipeService)(nil)
var _ ports.ViewRecorder = (*RecipeService)(nil)

func NewRecipeService(store ports.Store, defaultPageSize int, log zerolog.Logger) *RecipeService {
	if defaultPageSize <= 0 {
		defaultPageSize = fallbackPageSize
	}
	return &RecipeService{store: store, defaultPageSize: defaultPageSize, log: log}
}

// Create publishes a new visible recipe. The author field is a snapshot of
// the submitting user's name and defaults to "Unknown" when absent.
func (s *RecipeService) Create(ctx context.Context, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	if err := validateInput("recipe", input); err != nil {
		return nil, err
	}

	author := input.Author
	if author == "" {
		author = enrich.UnknownLabel
	}

	recipe := domain.Recipe{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Description:     input.Description,
		Ingredients:     input.Ingredients,
		Instructions:    input.Instructions,
		Image:           input.Image,
		Author:          author,
		Preparation:     input.Preparation,
		CookingTime:     input.CookingTime,
		Servings:        input.Servings,
		Difficulty:      input.Difficulty,
		YoutubeTutorial: input.YoutubeTutorial,
		Hidden:          false,
		DateCreated:     time.Now().UTC(),
	}

	if err := s.store.PutRecipe(ctx, recipe); err != nil {
		s.log.Error().Err(err).Msg("failed to persist new recipe")
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("recipe", "create").Inc()
	s.log.Info().Str("recipe_id", recipe.ID).Str("author", recipe.Author).Msg("recipe created")
	return &recipe, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	for _, r := range s.store.Recipes(ctx) {
		if r.ID == id {
			recipe := r
			return &recipe, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

// Update merges the provided fields onto the stored recipe. An unknown ID
// is a silent no-op.
func (s *RecipeService) Update(ctx context.Context, input ports.UpdateRecipeInput) error {
	if err := validateInput("recipe", input); err != nil {
		return err
	}

	for _, r := range s.store.Recipes(ctx) {
		if r.ID != input.ID {
			continue
		}
		if input.Name != nil {
			r.Name = *input.Name
		}
		if input.Description != nil {
			r.Description = *input.Description
		}
		if input.Ingredients != nil {
			r.Ingredients = *input.Ingredients
		}
		if input.Instructions != nil {
			r.Instructions = *input.Instructions
		}
		if input.Image != nil {
			r.Image = *input.Image
		}
		if input.Preparation != nil {
			r.Preparation = *input.Preparation
		}
		if input.CookingTime != nil {
			r.CookingTime = *input.CookingTime
		}
		if input.Servings != nil {
			r.Servings = *input.Servings
		}
		if input.Difficulty != nil {
			r.Difficulty = *input.Difficulty
		}
		if input.YoutubeTutorial != nil {
			r.YoutubeTutorial = *input.YoutubeTutorial
		}
		if input.Hidden != nil {
			r.Hidden = *input.Hidden
		}
		if err := s.store.PutRecipe(ctx, r); err != nil {
			return err
		}
		metrics.MutationsTotal.WithLabelValues("recipe", "update").Inc()
		s.log.Info().Str("recipe_id", r.ID).Msg("recipe updated")
		return nil
	}
	return nil
}

func (s *RecipeService) Remove(ctx context.Context, id string) error {
	if err := s.store.RemoveRecipe(ctx, id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("recipe", "delete").Inc()
	s.log.Info().Str("recipe_id", id).Msg("recipe removed")
	return nil
}

// SetHidden flips the visibility flag. An unknown ID is a silent no-op.
func (s *RecipeService) SetHidden(ctx context.Context, id string, hidden bool) error {
	h := hidden
	return s.Update(ctx, ports.UpdateRecipeInput{ID: id, Hidden: &h})
}

// RecordView increments the recipe's view counter. Unlike the listing
// derived fields, the counter is persisted on the recipe record.
func (s *RecipeService) RecordView(ctx context.Context, id string) error {
	for _, r := range s.store.Recipes(ctx) {
		if r.ID != id {
			continue
		}
		r.Views++
		if err := s.store.PutRecipe(ctx, r); err != nil {
			return err
		}
		metrics.ViewsRecordedTotal.Inc()
		return nil
	}
	return domain.ErrRecipeNotFound
}

// List runs the full pipeline: visibility and author filters, rating
// enrichment, favorite flags for the viewer, rating-bucket and text
// filters, stable sort, pagination.
func (s *RecipeService) List(ctx context.Context, input ports.ListRecipesInput) (*ports.ListRecipesResult, error) {
	recipes := s.store.Recipes(ctx)
	if !input.IncludeHidden {
		recipes = query.FilterVisible(recipes)
	}
	recipes = query.FilterByAuthor(recipes, input.Author)

	rated := enrich.WithAverageRating(recipes, s.store.Reviews(ctx))
	if input.ViewerID != "" {
		ids, err := s.FavoriteRecipeIDs(ctx, input.ViewerID)
		if err != nil {
			return nil, err
		}
		rated = enrich.WithFavoriteFlag(rated, ids)
	}

	rated = query.FilterByRatingBucket(rated, input.RatingBucket)
	rated = query.FilterByText(rated, input.Search, func(r enrich.RatedRecipe) string {
		return r.Name
	})

	switch input.Sort {
	case ports.SortTopRated:
		rated = query.SortByRatingDescending(rated)
	default:
		rated = query.SortNewestFirst(rated, func(r enrich.RatedRecipe) time.Time {
			return r.DateCreated
		})
	}

	page, pageSize := normalizePaging(input.Page, input.PageSize, s.defaultPageSize)
	pg := pager.Paginate(rated, pageSize, page)

	return &ports.ListRecipesResult{
		Items:      toListItems(pg.Items),
		Total:      len(rated),
		Page:       pg.PageIndex,
		PageSize:   pageSize,
		TotalPages: pg.TotalPages,
	}, nil
}

// TopRated returns the best reviewed visible recipes, skipping recipes
// without any review.
func (s *RecipeService) TopRated(ctx context.Context, limit int) ([]ports.RecipeListItem, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}

	rated := enrich.WithAverageRating(query.FilterVisible(s.store.Recipes(ctx)), s.store.Reviews(ctx))
	reviewed := rated[:0:0]
	for _, r := range rated {
		if r.AvgRating > 0 {
			reviewed = append(reviewed, r)
		}
	}
	reviewed = query.SortByRatingDescending(reviewed)
	if len(reviewed) > limit {
		reviewed = reviewed[:limit]
	}
	return toListItems(reviewed), nil
}

func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID string) error {
	if userID == "" || recipeID == "" {
		return &ValidationError{Message: "userId and recipeId are required"}
	}
	if err := s.store.AddFavorite(ctx, domain.Favorite{UserID: userID, RecipeID: recipeID}); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("favorite", "create").Inc()
	return nil
}

func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	if userID == "" || recipeID == "" {
		return &ValidationError{Message: "userId and recipeId are required"}
	}
	if err := s.store.RemoveFavorite(ctx, domain.Favorite{UserID: userID, RecipeID: recipeID}); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("favorite", "delete").Inc()
	return nil
}

func (s *RecipeService) FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for _, f := range s.store.Favorites(ctx) {
		if f.UserID == userID {
			ids = append(ids, f.RecipeID)
		}
	}
	return ids, nil
}

// ListFavorites returns the user's starred recipes in the order they were
// starred, enriched and searchable.
func (s *RecipeService) ListFavorites(ctx context.Context, input ports.ListFavoritesInput) (*ports.ListRecipesResult, error) {
	if err := validateInput("favorite", input); err != nil {
		return nil, err
	}

	rated := enrich.WithAverageRating(s.store.Recipes(ctx), s.store.Reviews(ctx))
	byID := make(map[string]enrich.RatedRecipe, len(rated))
	for _, r := range rated {
		byID[r.ID] = r
	}

	var starred []enrich.RatedRecipe
	for _, f := range s.store.Favorites(ctx) {
		if f.UserID != input.UserID {
			continue
		}
		if r, ok := byID[f.RecipeID]; ok {
			r.Favorite = true
			starred = append(starred, r)
		}
	}

	starred = query.FilterByText(starred, input.Search, func(r enrich.RatedRecipe) string {
		return r.Name
	})

	page, pageSize := normalizePaging(input.Page, input.PageSize, s.defaultPageSize)
	pg := pager.Paginate(starred, pageSize, page)

	return &ports.ListRecipesResult{
		Items:      toListItems(pg.Items),
		Total:      len(starred),
		Page:       pg.PageIndex,
		PageSize:   pageSize,
		TotalPages: pg.TotalPages,
	}, nil
}

func toListItems(rated []enrich.RatedRecipe) []ports.RecipeListItem {
	items := make([]ports.RecipeListItem, 0, len(rated))
	for _, r := range rated {
		items = append(items, ports.RecipeListItem{
			Recipe:      r.Recipe,
			AvgRating:   r.AvgRating,
			ReviewCount: r.ReviewCount,
			Favorite:    r.Favorite,
		})
	}
	return items
}
