package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/foundry/internal/dependencies/clock"
	"github.com/mcoot/foundry/internal/dependencies/random"
	"github.com/mcoot/foundry/internal/repository"
	"github.com/mcoot/foundry/internal/services/identity"
	"github.com/mcoot/foundry/internal/services/world"
	"github.com/mcoot/foundry/internal/storage"
	"github.com/mcoot/foundry/internal/storage/memory"
	redisstorage "github.com/mcoot/foundry/internal/storage/redis"
	sqlitestorage "github.com/mcoot/foundry/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage    storage.Storage
	Repository *repository.Repository

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Stores
	Identity *identity.Service
	World    *world.Store
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds the database path (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// WorldConfig configures tables and first-start seeding (optional)
	// If nil, defaults to world.DefaultConfig()
	WorldConfig *world.Config
}

// New creates a new application with all dependencies wired and both
// stores loaded from storage
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(*cfg.SQLiteConfig)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	worldCfg := world.DefaultConfig()
	if cfg.WorldConfig != nil {
		worldCfg = *cfg.WorldConfig
	}

	app := newWithDependencies(store, clock.New(), random.New(), worldCfg, logger)
	if err := app.Load(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	logger.Info("application loaded", slog.String("storage", storageType))
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, worldCfg world.Config, logger *slog.Logger) *App {
	repo := repository.New(store)

	return &App{
		Storage:    store,
		Repository: repo,
		Clock:      clk,
		Random:     rnd,
		Identity:   identity.New(repo, rnd, logger),
		World:      world.New(repo, clk, rnd, logger, worldCfg),
	}
}

// Load reads both stores' snapshots from storage
func (a *App) Load(ctx context.Context) error {
	if err := a.Identity.Load(ctx); err != nil {
		return err
	}
	return a.World.Load(ctx)
}

// Close releases the storage backend if it holds a connection
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
