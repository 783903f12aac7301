package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/foundry/internal/model"
)

// EnvPrefix is prepended to every environment override, e.g. FOUNDRY_STORAGE_TYPE
const EnvPrefix = "FOUNDRY"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	World   WorldConfig   `mapstructure:"world"`
	Tables  []TableConfig `mapstructure:"tables"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // json | text
}

type StorageConfig struct {
	Type          string `mapstructure:"type"` // memory | redis | sqlite
	RedisURL      string `mapstructure:"redis_url"`
	RedisPoolSize int    `mapstructure:"redis_pool_size"`
	SQLitePath    string `mapstructure:"sqlite_path"`
}

type WorldConfig struct {
	SeedDefaults bool `mapstructure:"seed_defaults"`
}

type TableConfig struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	MaxPlayers  int    `mapstructure:"max_players"`
}

// Load reads config from an optional YAML file and FOUNDRY_* environment
// variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis_url", "redis://localhost:6379")
	v.SetDefault("storage.redis_pool_size", 10)
	v.SetDefault("storage.sqlite_path", "./data/foundry.db")
	v.SetDefault("world.seed_defaults", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory", "redis", "sqlite":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if t.ID == "" {
			return fmt.Errorf("table %q has no id", t.Name)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate table id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ModelTables converts the configured tables. It returns nil when none are
// configured so the world store falls back to its defaults.
func (c *Config) ModelTables() []model.Table {
	if len(c.Tables) == 0 {
		return nil
	}
	tables := make([]model.Table, len(c.Tables))
	for i, t := range c.Tables {
		tables[i] = model.Table{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			MaxPlayers:  t.MaxPlayers,
		}
	}
	return tables
}
