package factory

import (
	"log/slog"

	"github.com/mcoot/foundry/internal/config"
	"github.com/mcoot/foundry/internal/services/world"
	redisstorage "github.com/mcoot/foundry/internal/storage/redis"
	sqlitestorage "github.com/mcoot/foundry/internal/storage/sqlite"
)

// ConfigFromSettings maps loaded process settings onto the factory config
func ConfigFromSettings(settings *config.Config, logger *slog.Logger) Config {
	cfg := Config{
		Logger:      logger,
		StorageType: settings.Storage.Type,
		WorldConfig: &world.Config{
			Tables:       settings.ModelTables(),
			SeedDefaults: settings.World.SeedDefaults,
		},
	}

	switch settings.Storage.Type {
	case StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = settings.Storage.RedisURL
		if settings.Storage.RedisPoolSize > 0 {
			redisCfg.PoolSize = settings.Storage.RedisPoolSize
		}
		cfg.RedisConfig = &redisCfg
	case StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		sqliteCfg.Path = settings.Storage.SQLitePath
		cfg.SQLiteConfig = &sqliteCfg
	}

	return cfg
}
