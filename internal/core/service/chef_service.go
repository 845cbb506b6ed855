package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

// ChefService maintains the auxiliary chef registry.
type ChefService struct {
	store ports.Store
	log   zerolog.Logger
}

var _ ports.ChefService = (*ChefService)(nil)

func NewChefService(store ports.Store, log zerolog.Logger) *ChefService {
	return &ChefService{store: store, log: log}
}

func (s *ChefService) Register(ctx context.Context, input ports.RegisterChefInput) (*domain.Chef, error) {
	if err := validateInput("chef", input); err != nil {
		return nil, err
	}

	chef := domain.Chef{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Specialty:   input.Specialty,
		DateCreated: time.Now().UTC(),
	}
	if err := s.store.PutChef(ctx, chef); err != nil {
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("chef", "create").Inc()
	s.log.Info().Str("chef_id", chef.ID).Str("display_name", chef.DisplayName).Msg("chef registered")
	return &chef, nil
}

func (s *ChefService) List(ctx context.Context) ([]domain.Chef, error) {
	return s.store.Chefs(ctx), nil
}

func (s *ChefService) Remove(ctx context.Context, id string) error {
	if err := s.store.RemoveChef(ctx, id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("chef", "delete").Inc()
	return nil
}
