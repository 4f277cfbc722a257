// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "loading notes service configuration"
	LogConfigLoaded     = "configuration loaded successfully"
	ErrFailedLoadConfig = "failed to load configuration"
)

// ErrEmptySecretKey возвращается, когда секрет подписи токенов не задан.
var ErrEmptySecretKey = errors.New("JWT secret key must be provided via environment")

// Config представляет полную конфигурацию приложения.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	JWT       JWTConfig       `yaml:"jwt"`
	Redis     RedisConfig     `yaml:"redis"`
	CORS      CORSConfig      `yaml:"cors"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
	Notes     NotesConfig     `yaml:"notes"`
	Logging   LoggingConfig   `yaml:"logging"`
	Shutdown  ShutdownConfig  `yaml:"shutdown"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	// Секрет подписи не имеет значения по умолчанию: без него процесс не стартует.
	if cfg.JWT.SecretKey == "" {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(ErrEmptySecretKey))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, ErrEmptySecretKey)
	}
	if err := cfg.JWT.ValidateAlgorithm(); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_host", cfg.HTTP.Host),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("jwt_algorithm", cfg.JWT.Algorithm),
		zap.Duration("jwt_access_token_ttl", cfg.JWT.GetAccessTokenTTL()),
		zap.Bool("cache_enabled", cfg.Redis.Enabled),
		zap.Bool("bootstrap_admin", cfg.Bootstrap.Enabled),
		zap.Bool("strict_ownership", cfg.Notes.StrictOwnership),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return &cfg, nil
}
