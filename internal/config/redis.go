package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию кэша заметок в Redis.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled" env:"GONOTES_CACHE_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"GONOTES_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"GONOTES_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"GONOTES_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"GONOTES_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"GONOTES_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"GONOTES_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"GONOTES_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"GONOTES_REDIS_POOL_SIZE" env-default:"10"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"GONOTES_REDIS_DEFAULT_TTL" env-default:"5m"`
}

// GetAddressString возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddressString() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
