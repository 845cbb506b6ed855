package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/pager"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/core/query"
	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

// UserService coordinates account and profile mutations against the store
// and serves the admin user listing.
type UserService struct {
	store           ports.Store
	defaultPageSize int
	log             zerolog.Logger
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(store ports.Store, defaultPageSize int, log zerolog.Logger) *UserService {
	if defaultPageSize <= 0 {
		defaultPageSize = fallbackPageSize
	}
	return &UserService{store: store, defaultPageSize: defaultPageSize, log: log}
}

// Register creates a new account with the default user role. The email
// must not already be registered, compared case-insensitively.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if err := validateInput("user", input); err != nil {
		return nil, err
	}

	for _, u := range s.store.Users(ctx) {
		if strings.EqualFold(u.Email, input.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	user := domain.User{
		ID:         uuid.NewString(),
		Username:   input.Username,
		Email:      input.Email,
		Password:   input.Password,
		Role:       domain.RoleUser,
		DateJoined: time.Now().UTC(),
	}

	if err := s.store.PutUser(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("failed to persist new user")
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("user", "create").Inc()
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return &user, nil
}

// Authenticate resolves the account by email and compares the stored
// opaque password verbatim.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.store.Users(ctx) {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// List filters users by role and by a username/email search, then pages
// the result. Insertion order is preserved.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	users := query.FilterByRole(s.store.Users(ctx), input.Role)
	users = query.FilterByText(users, input.Search, func(u domain.User) string {
		return u.Username + "\n" + u.Email
	})

	page, pageSize := normalizePaging(input.Page, input.PageSize, s.defaultPageSize)
	pg := pager.Paginate(users, pageSize, page)

	return &ports.ListUsersResult{
		Items:      pg.Items,
		Total:      len(users),
		Page:       pg.PageIndex,
		PageSize:   pageSize,
		TotalPages: pg.TotalPages,
	}, nil
}

// Update merges the provided fields onto the stored user. An unknown ID is
// a silent no-op, matching the historical behavior callers rely on.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) error {
	if err := validateInput("user", input); err != nil {
		return err
	}

	for _, u := range s.store.Users(ctx) {
		if u.ID != input.ID {
			continue
		}
		if input.Username != nil {
			u.Username = *input.Username
		}
		if input.Email != nil {
			u.Email = *input.Email
		}
		if input.Role != nil {
			u.Role = *input.Role
		}
		if input.ProfileImage != nil {
			u.ProfileImage = *input.ProfileImage
		}
		if input.Introduction != nil {
			u.Introduction = *input.Introduction
		}
		if err := s.store.PutUser(ctx, u); err != nil {
			return err
		}
		metrics.MutationsTotal.WithLabelValues("user", "update").Inc()
		s.log.Info().Str("user_id", u.ID).Msg("user updated")
		return nil
	}
	return nil
}

// Remove deletes the user and then its profile. The two writes are
// independent: a failure after the first leaves at worst an orphaned
// profile, never a dangling user. Recipes and reviews keep their author
// and userId snapshots.
func (s *UserService) Remove(ctx context.Context, userID string) error {
	if err := s.store.RemoveUser(ctx, userID); err != nil {
		return err
	}
	if err := s.store.RemoveProfile(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("user removed but profile cleanup failed")
		return err
	}
	metrics.MutationsTotal.WithLabelValues("user", "delete").Inc()
	s.log.Info().Str("user_id", userID).Msg("user removed with profile cascade")
	return nil
}

// UpsertProfile creates or replaces the user's profile record.
func (s *UserService) UpsertProfile(ctx context.Context, input ports.UpsertProfileInput) (*domain.Profile, error) {
	if err := validateInput("profile", input); err != nil {
		return nil, err
	}

	profile := domain.Profile{
		UserID:       input.UserID,
		ProfileImage: input.ProfileImage,
		Introduction: input.Introduction,
	}
	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues("profile", "update").Inc()
	return &profile, nil
}

// ProfileFor returns the user's profile, or nil when none has been created
// yet.
func (s *UserService) ProfileFor(ctx context.Context, userID string) (*domain.Profile, error) {
	for _, p := range s.store.Profiles(ctx) {
		if p.UserID == userID {
			profile := p
			return &profile, nil
		}
	}
	return nil, nil
}
