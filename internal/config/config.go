// Package config loads server settings from an optional YAML file and
// WCAP_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/wordcapture/internal/api"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/auth"
	"github.com/mcoot/wordcapture/internal/services/movegen"
	redisstorage "github.com/mcoot/wordcapture/internal/storage/redis"
)

// EnvPrefix prefixes every environment override, e.g. WCAP_SERVER_PORT
const EnvPrefix = "WCAP"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Board      BoardConfig      `mapstructure:"board"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	AnalysisTTL  time.Duration `mapstructure:"analysis_ttl"`
	GameTTL      time.Duration `mapstructure:"game_ttl"`
}

type DictionaryConfig struct {
	// Path is a word list, one word per line, most common first
	Path string `mapstructure:"path"`
}

type BoardConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
	// WinThreshold of 0 means a strict majority of the squares
	WinThreshold int `mapstructure:"win_threshold"`
}

type GeneratorConfig struct {
	Workers int `mapstructure:"workers"`
}

type AuthConfig struct {
	// Keys are "name:bcrypt-hash" pairs; none disables auth
	Keys     []string      `mapstructure:"keys"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// DefaultConfig returns the settings used when nothing overrides them
func DefaultConfig() Config {
	server := api.DefaultServerConfig()
	redis := redisstorage.DefaultConfig()

	return Config{
		Server: ServerConfig{
			Host:            server.Host,
			Port:            server.Port,
			ReadTimeout:     server.ReadTimeout,
			WriteTimeout:    server.WriteTimeout,
			ShutdownTimeout: server.ShutdownTimeout,
		},
		Storage: StorageConfig{
			Type: StorageMemory,
			Redis: RedisConfig{
				URL:          redis.URL,
				PoolSize:     redis.PoolSize,
				MinIdleConns: redis.MinIdleConns,
				AnalysisTTL:  redis.AnalysisTTL,
				GameTTL:      redis.GameTTL,
			},
		},
		Dictionary: DictionaryConfig{
			Path: "data/words.txt",
		},
		Board: BoardConfig{
			Rows: model.DefaultRows,
			Cols: model.DefaultCols,
		},
		Generator: GeneratorConfig{
			Workers: movegen.DefaultConfig().Workers,
		},
		Auth: AuthConfig{
			CacheTTL: auth.DefaultConfig().CacheTTL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads defaults, then the YAML file at path when path is non-empty,
// then environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so environment variables can override keys
// that appear in no file
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("storage.type", d.Storage.Type)
	v.SetDefault("storage.redis.url", d.Storage.Redis.URL)
	v.SetDefault("storage.redis.pool_size", d.Storage.Redis.PoolSize)
	v.SetDefault("storage.redis.min_idle_conns", d.Storage.Redis.MinIdleConns)
	v.SetDefault("storage.redis.analysis_ttl", d.Storage.Redis.AnalysisTTL)
	v.SetDefault("storage.redis.game_ttl", d.Storage.Redis.GameTTL)

	v.SetDefault("dictionary.path", d.Dictionary.Path)

	v.SetDefault("board.rows", d.Board.Rows)
	v.SetDefault("board.cols", d.Board.Cols)
	v.SetDefault("board.win_threshold", d.Board.WinThreshold)

	v.SetDefault("generator.workers", d.Generator.Workers)

	v.SetDefault("auth.keys", d.Auth.Keys)
	v.SetDefault("auth.cache_ttl", d.Auth.CacheTTL)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks the settings that the services would otherwise reject at
// startup
func (c Config) Validate() error {
	if _, err := c.Rules(); err != nil {
		return fmt.Errorf("%w: board %dx%d threshold %d: %w",
			ErrInvalidConfig, c.Board.Rows, c.Board.Cols, c.Board.WinThreshold, err)
	}
	switch c.Storage.Type {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: storage type %q must be %s or %s",
			ErrInvalidConfig, c.Storage.Type, StorageMemory, StorageRedis)
	}
	if _, err := c.AuthConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log format %q must be json or text", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Rules builds the board geometry
func (c Config) Rules() (model.Rules, error) {
	threshold := c.Board.WinThreshold
	if threshold == 0 {
		threshold = model.MajorityThreshold(c.Board.Rows * c.Board.Cols)
	}
	return model.NewRules(c.Board.Rows, c.Board.Cols, threshold)
}

func (c Config) AuthConfig() (auth.Config, error) {
	cfg := auth.Config{CacheTTL: c.Auth.CacheTTL}
	for _, raw := range c.Auth.Keys {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		key, err := auth.ParseAPIKey(raw)
		if err != nil {
			return auth.Config{}, err
		}
		cfg.Keys = append(cfg.Keys, key)
	}
	return cfg, nil
}

func (c Config) ServerConfig() api.ServerConfig {
	return api.ServerConfig{
		Host:            c.Server.Host,
		Port:            c.Server.Port,
		ReadTimeout:     c.Server.ReadTimeout,
		WriteTimeout:    c.Server.WriteTimeout,
		ShutdownTimeout: c.Server.ShutdownTimeout,
	}
}

func (c Config) RedisConfig() redisstorage.Config {
	return redisstorage.Config{
		URL:          c.Storage.Redis.URL,
		PoolSize:     c.Storage.Redis.PoolSize,
		MinIdleConns: c.Storage.Redis.MinIdleConns,
		AnalysisTTL:  c.Storage.Redis.AnalysisTTL,
		GameTTL:      c.Storage.Redis.GameTTL,
	}
}

func (c Config) GeneratorConfig() movegen.Config {
	return movegen.Config{Workers: c.Generator.Workers}
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}
