// Package query provides the composable filter and sort steps of the list
// pipeline. Filters allocate a new slice except when they match everything,
// in which case the input is returned untouched; sorts always copy and are
// stable, so ties keep their input order.
package query

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/enrich"
)

// RoleAll bypasses FilterByRole.
const RoleAll = "all"

// FilterByText keeps the items whose field contains q, case-insensitively.
// An empty query is the identity: the input slice is returned as is.
func FilterByText[T any](items []T, q string, field func(T) string) []T {
	if q == "" {
		return items
	}
	q = strings.ToLower(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(field(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// FilterByRole keeps users with exactly the given role. An empty role or
// RoleAll bypasses the filter.
func FilterByRole(users []domain.User, role string) []domain.User {
	if role == "" || role == RoleAll {
		return users
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// FilterVisible drops hidden recipes.
func FilterVisible(recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

// FilterByAuthor keeps recipes whose author snapshot matches username
// exactly. An empty username bypasses the filter.
func FilterByAuthor(recipes []domain.Recipe, username string) []domain.Recipe {
	if username == "" {
		return recipes
	}
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Author == username {
			out = append(out, r)
		}
	}
	return out
}

// FilterByRatingBucket keeps recipes whose rounded average rating equals
// bucket (1..5). Bucket 0 bypasses the filter.
func FilterByRatingBucket(rated []enrich.RatedRecipe, bucket int) []enrich.RatedRecipe {
	if bucket == 0 {
		return rated
	}
	out := make([]enrich.RatedRecipe, 0, len(rated))
	for _, r := range rated {
		if int(math.Round(r.AvgRating)) == bucket {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst returns a copy sorted by descending creation time.
func SortNewestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

// SortByRatingDescending returns a copy sorted by descending average rating.
func SortByRatingDescending(rated []enrich.RatedRecipe) []enrich.RatedRecipe {
	out := make([]enrich.RatedRecipe, len(rated))
	copy(out, rated)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgRating > out[j].AvgRating
	})
	return out
}
