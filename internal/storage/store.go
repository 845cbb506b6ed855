// Package storage implements the gateway over the persisted collections.
// Each collection is one JSON array stored under a fixed key in an opaque
// string key-value backend.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

// Storage keys, preserved from the original KusinaDelights data layout so
// existing stores keep working.
const (
	keyUsers     = "KusinaDelights_USERS"
	keyProfiles  = "KusinaDelights_USER_PROFILES"
	keyRecipes   = "KusinaDelights_RECIPES"
	keyReviews   = "KusinaDelights_REVIEWS"
	keyChefs     = "KusinaDelights_CHEFS"
	keyFavorites = "KusinaDelights_FAVORITES"
)

// Store reads and writes the six entity collections through a
// ports.KeyValueStore. Reads degrade to an empty collection on storage or
// decode failure; the failure is logged and counted, never propagated.
type Store struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

var _ ports.Store = (*Store)(nil)

func New(kv ports.KeyValueStore, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// readList fetches and decodes one collection. Degraded mode: any failure
// yields an empty slice.
func readList[T any](ctx context.Context, s *Store, key, collection string) []T {
	metrics.StoreReadsTotal.WithLabelValues(collection).Inc()

	raw, err := s.kv.GetItem(ctx, key)
	if err != nil {
		metrics.StoreReadErrorsTotal.WithLabelValues(collection, "storage").Inc()
		s.log.Error().Err(err).Str("collection", collection).Msg("collection read failed, returning empty")
		return nil
	}
	if raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.StoreReadErrorsTotal.WithLabelValues(collection, "decode").Inc()
		s.log.Error().Err(err).Str("collection", collection).Msg("collection payload corrupt, returning empty")
		return nil
	}
	return items
}

// writeList encodes and persists one full collection.
func writeList[T any](ctx context.Context, s *Store, key, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		metrics.StoreWriteErrorsTotal.WithLabelValues(collection).Inc()
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	if err := s.kv.SetItem(ctx, key, string(raw)); err != nil {
		metrics.StoreWriteErrorsTotal.WithLabelValues(collection).Inc()
		s.log.Error().Err(err).Str("collection", collection).Msg("collection write failed")
		return fmt.Errorf("save %s: %w", collection, err)
	}

	metrics.StoreWritesTotal.WithLabelValues(collection).Inc()
	return nil
}

// putByID appends item when no element matches its id, or replaces the
// first match otherwise.
func putByID[T any](items []T, item T, sameID func(T) bool) []T {
	for i := range items {
		if sameID(items[i]) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

// removeWhere drops every element matching the predicate.
func removeWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Store) Users(ctx context.Context) []domain.User {
	return readList[domain.User](ctx, s, keyUsers, "users")
}

func (s *Store) PutUser(ctx context.Context, u domain.User) error {
	users := putByID(s.Users(ctx), u, func(x domain.User) bool { return x.ID == u.ID })
	return writeList(ctx, s, keyUsers, "users", users)
}

func (s *Store) RemoveUser(ctx context.Context, id string) error {
	users := removeWhere(s.Users(ctx), func(x domain.User) bool { return x.ID == id })
	return writeList(ctx, s, keyUsers, "users", users)
}

// ── Profiles ──────────────────────────────────────────────────────────────────

func (s *Store) Profiles(ctx context.Context) []domain.Profile {
	return readList[domain.Profile](ctx, s, keyProfiles, "profiles")
}

func (s *Store) UpsertProfile(ctx context.Context, p domain.Profile) error {
	profiles := putByID(s.Profiles(ctx), p, func(x domain.Profile) bool { return x.UserID == p.UserID })
	return writeList(ctx, s, keyProfiles, "profiles", profiles)
}

func (s *Store) RemoveProfile(ctx context.Context, userID string) error {
	profiles := removeWhere(s.Profiles(ctx), func(x domain.Profile) bool { return x.UserID == userID })
	return writeList(ctx, s, keyProfiles, "profiles", profiles)
}

// ── Recipes ───────────────────────────────────────────────────────────────────

func (s *Store) Recipes(ctx context.Context) []domain.Recipe {
	return readList[domain.Recipe](ctx, s, keyRecipes, "recipes")
}

func (s *Store) PutRecipe(ctx context.Context, r domain.Recipe) error {
	recipes := putByID(s.Recipes(ctx), r, func(x domain.Recipe) bool { return x.ID == r.ID })
	return writeList(ctx, s, keyRecipes, "recipes", recipes)
}

func (s *Store) RemoveRecipe(ctx context.Context, id string) error {
	recipes := removeWhere(s.Recipes(ctx), func(x domain.Recipe) bool { return x.ID == id })
	return writeList(ctx, s, keyRecipes, "recipes", recipes)
}

// ── Reviews ───────────────────────────────────────────────────────────────────

func (s *Store) Reviews(ctx context.Context) []domain.Review {
	return readList[domain.Review](ctx, s, keyReviews, "reviews")
}

func (s *Store) PutReview(ctx context.Context, r domain.Review) error {
	reviews := putByID(s.Reviews(ctx), r, func(x domain.Review) bool { return x.ID == r.ID })
	return writeList(ctx, s, keyReviews, "reviews", reviews)
}

func (s *Store) RemoveReview(ctx context.Context, id string) error {
	reviews := removeWhere(s.Reviews(ctx), func(x domain.Review) bool { return x.ID == id })
	return writeList(ctx, s, keyReviews, "reviews", reviews)
}

// ── Favorites ─────────────────────────────────────────────────────────────────

func (s *Store) Favorites(ctx context.Context) []domain.Favorite {
	return readList[domain.Favorite](ctx, s, keyFavorites, "favorites")
}

func (s *Store) AddFavorite(ctx context.Context, f domain.Favorite) error {
	favorites := s.Favorites(ctx)
	for _, existing := range favorites {
		if existing.UserID == f.UserID && existing.RecipeID == f.RecipeID {
			return nil
		}
	}
	return writeList(ctx, s, keyFavorites, "favorites", append(favorites, f))
}

func (s *Store) RemoveFavorite(ctx context.Context, f domain.Favorite) error {
	favorites := removeWhere(s.Favorites(ctx), func(x domain.Favorite) bool {
		return x.UserID == f.UserID && x.RecipeID == f.RecipeID
	})
	return writeList(ctx, s, keyFavorites, "favorites", favorites)
}

// ── Chefs ─────────────────────────────────────────────────────────────────────

func (s *Store) Chefs(ctx context.Context) []domain.Chef {
	return readList[domain.Chef](ctx, s, keyChefs, "chefs")
}

func (s *Store) PutChef(ctx context.Context, c domain.Chef) error {
	chefs := putByID(s.Chefs(ctx), c, func(x domain.Chef) bool { return x.ID == c.ID })
	return writeList(ctx, s, keyChefs, "chefs", chefs)
}

func (s *Store) RemoveChef(ctx context.Context, id string) error {
	chefs := removeWhere(s.Chefs(ctx), func(x domain.Chef) bool { return x.ID == id })
	return writeList(ctx, s, keyChefs, "chefs", chefs)
}
