package config

import "strings"

// CORSConfig содержит настройки CORS для фронтенда.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"GONOTES_CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
}

// GetAllowedOrigins возвращает список разрешенных origins.
func (c *CORSConfig) GetAllowedOrigins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
