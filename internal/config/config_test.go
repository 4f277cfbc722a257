package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/config"
)

const (
	msgErrUnexpectedError = "не ожидалась ошибка"
	msgErrExpectedError   = "ожидалась ошибка"
	msgErrWrongError      = "получена не та ошибка"
	msgErrWrongDefault    = "неверное значение по умолчанию"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Конфигурация по умолчанию с заданным секретом", func(t *testing.T) {
		t.Setenv("GONOTES_JWT_SECRET_KEY", "test-secret")

		cfg, err := config.Load(ctx)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host, msgErrWrongDefault)
		assert.Equal(t, 8000, cfg.HTTP.Port, msgErrWrongDefault)
		assert.Equal(t, "HS256", cfg.JWT.Algorithm, msgErrWrongDefault)
		assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL(), msgErrWrongDefault)
		assert.False(t, cfg.Notes.StrictOwnership, msgErrWrongDefault)
		assert.Equal(t, 100, cfg.Notes.DefaultLimit, msgErrWrongDefault)
		assert.True(t, cfg.Bootstrap.Enabled, msgErrWrongDefault)
		assert.Equal(t, "admin", cfg.Bootstrap.AdminUsername, msgErrWrongDefault)
		assert.False(t, cfg.Redis.Enabled, msgErrWrongDefault)
	})

	t.Run("Отсутствие секрета подписи не дает процессу стартовать", func(t *testing.T) {
		t.Setenv("GONOTES_JWT_SECRET_KEY", "")

		cfg, err := config.Load(ctx)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, config.ErrEmptySecretKey, msgErrWrongError)
		assert.Nil(t, cfg)
	})

	t.Run("Неподдерживаемый алгоритм подписи отклоняется", func(t *testing.T) {
		t.Setenv("GONOTES_JWT_SECRET_KEY", "test-secret")
		t.Setenv("GONOTES_JWT_ALGORITHM", "RS256")

		cfg, err := config.Load(ctx)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, config.ErrUnsupportedAlgorithm, msgErrWrongError)
		assert.Nil(t, cfg)
	})

	t.Run("Переменные окружения перекрывают значения по умолчанию", func(t *testing.T) {
		t.Setenv("GONOTES_JWT_SECRET_KEY", "test-secret")
		t.Setenv("GONOTES_HTTP_PORT", "9000")
		t.Setenv("GONOTES_JWT_ACCESS_TOKEN_TTL", "15m")
		t.Setenv("GONOTES_STRICT_OWNERSHIP", "true")
		t.Setenv("GONOTES_BOOTSTRAP_ADMIN", "false")

		cfg, err := config.Load(ctx)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, 9000, cfg.HTTP.Port)
		assert.Equal(t, 15*time.Minute, cfg.JWT.GetAccessTokenTTL())
		assert.True(t, cfg.Notes.StrictOwnership)
		assert.False(t, cfg.Bootstrap.Enabled)
	})
}

func TestGetAccessTokenTTL(t *testing.T) {
	t.Run("Некорректная длительность заменяется 30 минутами", func(t *testing.T) {
		cfg := config.JWTConfig{AccessTokenTTL: "garbage"}
		assert.Equal(t, 30*time.Minute, cfg.GetAccessTokenTTL())
	})
}

func TestGetAllowedOrigins(t *testing.T) {
	t.Run("Список origins разбирается с обрезкой пробелов", func(t *testing.T) {
		cfg := config.CORSConfig{AllowedOrigins: "http://a.example, http://b.example ,,"}
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.GetAllowedOrigins())
	})
}

func TestGetAddress(t *testing.T) {
	cfg := config.HTTPConfig{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "127.0.0.1:8000", cfg.GetAddress())
}
