package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedAlgorithm возвращается для неподдерживаемого алгоритма подписи.
var ErrUnsupportedAlgorithm = errors.New("unsupported JWT signing algorithm")

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"GONOTES_JWT_SECRET_KEY"`
	Algorithm      string `yaml:"algorithm" env:"GONOTES_JWT_ALGORITHM" env-default:"HS256"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"GONOTES_JWT_ACCESS_TOKEN_TTL" env-default:"30m"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"GONOTES_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает время жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return duration
}

// ValidateAlgorithm проверяет, что задан поддерживаемый HMAC алгоритм.
func (c *JWTConfig) ValidateAlgorithm() error {
	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, c.Algorithm)
	}
}
