// Package app wires configuration, logging, the key-value backend, the
// store gateway, and the services into one ready-to-use composition root.
// The mobile UI layer consumes App in-process; there is no network surface.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/core/service"
	"github.com/kusinadelights/recipe-platform/internal/infrastructure/db/mongo"
	"github.com/kusinadelights/recipe-platform/internal/infrastructure/db/redis"
	"github.com/kusinadelights/recipe-platform/internal/infrastructure/queue"
	"github.com/kusinadelights/recipe-platform/internal/pkg/config"
	"github.com/kusinadelights/recipe-platform/internal/storage"
	"github.com/kusinadelights/recipe-platform/pkg/logger"
)

// App bundles the wired services. Close releases the backend connection.
type App struct {
	Config *config.Config
	Store  ports.Store

	Users   ports.UserService
	Recipes ports.RecipeService
	Reviews ports.ReviewService
	Chefs   ports.ChefService
	Stats   ports.StatsService

	// Views records recipe views asynchronously; Start has already been
	// called by New.
	Views *queue.Dispatcher

	log   zerolog.Logger
	close func(context.Context) error
}

// New loads configuration, initialises logging, connects the configured
// key-value backend, and wires every service. The view dispatcher workers
// run until ctx is cancelled.
func New(ctx context.Context) (*App, error) {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	kv, closeFn, err := connectBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store := storage.New(kv, log)

	recipes := service.NewRecipeService(store, cfg.DefaultPageSize, log)
	views := queue.NewDispatcher(cfg.ViewWorkers, recipes, log)
	views.Start(ctx)

	a := &App{
		Config:  cfg,
		Store:   store,
		Users:   service.NewUserService(store, cfg.DefaultPageSize, log),
		Recipes: recipes,
		Reviews: service.NewReviewService(store, cfg.DefaultPageSize, log),
		Chefs:   service.NewChefService(store, log),
		Stats:   service.NewStatsService(store),
		Views:   views,
		log:     log,
		close:   closeFn,
	}

	log.Info().
		Str("env", cfg.Env).
		Str("backend", cfg.Store.Backend).
		Msg("application wired")
	return a, nil
}

// Close releases the key-value backend connection.
func (a *App) Close(ctx context.Context) error {
	if a.close == nil {
		return nil
	}
	return a.close(ctx)
}

// connectBackend opens the key-value store selected by STORE_BACKEND.
func connectBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.KeyValueStore, func(context.Context) error, error) {
	switch cfg.Store.Backend {
	case "redis":
		client, err := redis.Connect(ctx, redis.Config{
			Addr: cfg.Store.Redis.Addr,
			DB:   cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Store.Redis.Addr).Msg("connected to redis")
		return redis.NewKeyValueStore(client), func(context.Context) error {
			return client.Close()
		}, nil

	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Store.Mongo.Database).Msg("connected to mongo")
		return mongo.NewKeyValueStore(db), func(closeCtx context.Context) error {
			return client.Disconnect(closeCtx)
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
