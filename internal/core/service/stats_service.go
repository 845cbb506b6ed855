package service

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/ports"
)

// StatsService aggregates the collection counts for the admin dashboard.
type StatsService struct {
	store ports.Store
}

var _ ports.StatsService = (*StatsService)(nil)

func NewStatsService(store ports.Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Overview(ctx context.Context) (*ports.Overview, error) {
	return &ports.Overview{
		Recipes: len(s.store.Recipes(ctx)),
		Reviews: len(s.store.Reviews(ctx)),
		Users:   len(s.store.Users(ctx)),
		Chefs:   len(s.store.Chefs(ctx)),
	}, nil
}
