package config

// BootstrapConfig управляет созданием пользователя admin при старте.
// Шаг предназначен для разработки и отключается в защищенных окружениях.
type BootstrapConfig struct {
	Enabled       bool   `yaml:"enabled" env:"GONOTES_BOOTSTRAP_ADMIN" env-default:"true"`
	AdminUsername string `yaml:"admin_username" env:"GONOTES_BOOTSTRAP_ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `yaml:"admin_password" env:"GONOTES_BOOTSTRAP_ADMIN_PASSWORD" env-default:"password123"`
}
