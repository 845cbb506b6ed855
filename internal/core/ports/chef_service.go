package ports

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// RegisterChefInput adds an entry to the chef registry.
type RegisterChefInput struct {
	UserID      string
	DisplayName string `validate:"required"`
	Specialty   string
}

// ChefService defines the auxiliary chef registry use-cases.
type ChefService interface {
	Register(ctx context.Context, input RegisterChefInput) (*domain.Chef, error)
	List(ctx context.Context) ([]domain.Chef, error)
	Remove(ctx context.Context, id string) error
}

// Overview aggregates the collection counts shown on the admin dashboard.
type Overview struct {
	Recipes int
	Reviews int
	Users   int
	Chefs   int
}

// StatsService reports aggregate platform figures.
type StatsService interface {
	Overview(ctx context.Context) (*Overview, error)
}
