package service

import (
	"context"
	"strings"
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

// ReviewService coordinates review mutations and serves the enriched
// review listing.
type ReviewService struct {
	store           ports.Store
	defaultPageSize int
	log             zerolog.Logger
}

var _ ports.ReviewService = (*ReviewService)(nil)

func NewReviewService(store ports.Store, defaultPageSize int, log zerolog.Logger) *ReviewService {
	if defaultPageSize <= 0 {
		defaultPageSize = fallbackPageSize
	}
	return &ReviewService{store: store, defaultPageSize: defaultPageSize, log: log}
}

// Create stores a new review. A zero rating or an empty comment is
// rejected; surrounding whitespace on the comment is trimmed first.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validateInput("review", input); err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:          uuid.NewString(),
		RecipeID:    input.RecipeID,
		UserID:      input.UserID,
		Rating:      input.Rating,
		Comment:     input.Comment,
		DateCreated: time.Now().UTC(),
	}

	if err := s.store.PutReview(ctx, review); err != nil {
		s.log.Error().Err(err).Msg("failed to persist new review")
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("review", "create").Inc()
	s.log.Info().Str("review_id", review.ID).Str("recipe_id", review.RecipeID).Int("rating", review.Rating).Msg("review created")
	return &review, nil
}

// Update rewrites the rating and comment of an existing review; the other
// fields are immutable. An unknown ID is a silent no-op.
func (s *ReviewService) Update(ctx context.Context, input ports.UpdateReviewInput) error {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validateInput("review", input); err != nil {
		return err
	}

	for _, r := range s.store.Reviews(ctx) {
		if r.ID != input.ID {
			continue
		}
		r.Rating = input.Rating
		r.Comment = input.Comment
		if err := s.store.PutReview(ctx, r); err != nil {
			return err
		}
		metrics.MutationsTotal.WithLabelValues("review", "update").Inc()
		s.log.Info().Str("review_id", r.ID).Msg("review updated")
		return nil
	}
	return nil
}

func (s *ReviewService) Remove(ctx context.Context, id string) error {
	if err := s.store.RemoveReview(ctx, id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("review", "delete").Inc()
	s.log.Info().Str("review_id", id).Msg("review removed")
	return nil
}

// List joins each review with its reviewer and recipe display fields, then
// filters and pages. The search matches reviewer username or recipe name.
func (s *ReviewService) List(ctx context.Context, input ports.ListReviewsInput) (*ports.ListReviewsResult, error) {
	reviews := s.store.Reviews(ctx)
	if input.RecipeID != "" {
		filtered := reviews[:0:0]
		for _, r := range reviews {
			if r.RecipeID == input.RecipeID {
				filtered = append(filtered, r)
			}
		}
		reviews = filtered
	}

	details := enrich.WithReviewDisplayFields(
		reviews,
		s.store.Users(ctx),
		s.store.Profiles(ctx),
		s.store.Recipes(ctx),
	)
	details = query.FilterByText(details, input.Search, func(d enrich.ReviewDetail) string {
		return d.Username + "\n" + d.RecipeName
	})

	page, pageSize := normalizePaging(input.Page, input.PageSize, s.defaultPageSize)
	pg := pager.Paginate(details, pageSize, page)

	items := make([]ports.ReviewListItem, 0, len(pg.Items))
	for _, d := range pg.Items {
		items = append(items, ports.ReviewListItem{
			Review:       d.Review,
			Username:     d.Username,
			Avatar:       d.Avatar,
			RecipeName:   d.RecipeName,
			RecipeAuthor: d.RecipeAuthor,
			RecipeImage:  d.RecipeImage,
		})
	}

	return &ports.ListReviewsResult{
		Items:      items,
		Total:      len(details),
		Page:       pg.PageIndex,
		PageSize:   pageSize,
		TotalPages: pg.TotalPages,
	}, nil
}
