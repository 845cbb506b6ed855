package ports

import (
	"context"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
)

// RegisterUserInput carries the signup form fields.
type RegisterUserInput struct {
	Username string `validate:"required,max=10"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateUserInput merges the non-nil fields onto the stored user. An
// unknown ID is a silent no-op.
type UpdateUserInput struct {
	ID           string `validate:"required"`
	Username     *string
	Email        *string
	Role         *string
	ProfileImage *string
	Introduction *string
}

// ListUsersInput carries the admin user-list query.
type ListUsersInput struct {
	Role     string // "" or "all" = every role
	Search   string // matches username or email, case-insensitive
	Page     int    // 1-based
	PageSize int
}

// ListUsersResult is a page of the filtered user collection.
type ListUsersResult struct {
	Items      []domain.User
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// UpsertProfileInput creates or replaces a user's profile record.
type UpsertProfileInput struct {
	UserID       string `validate:"required"`
	ProfileImage string
	Introduction string
}

// UserService defines account and profile use-cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Authenticate resolves the account by email (case-insensitive) and
	// compares the opaque password verbatim.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	Update(ctx context.Context, input UpdateUserInput) error
	// Remove deletes the user and cascades to its profile. Recipes and
	// reviews referencing the user are left untouched.
	Remove(ctx context.Context, userID string) error
	UpsertProfile(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error)
	// ProfileFor returns nil when the user has no profile record yet.
	ProfileFor(ctx context.Context, userID string) (*domain.Profile, error)
}
