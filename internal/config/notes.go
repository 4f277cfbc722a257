package config

// NotesConfig содержит настройки поведения репозитория заметок.
// StrictOwnership включает проверку владельца на чтение, изменение и удаление;
// по умолчанию выключено: любой аутентифицированный пользователь видит
// все заметки.
type NotesConfig struct {
	StrictOwnership bool `yaml:"strict_ownership" env:"GONOTES_STRICT_OWNERSHIP" env-default:"false"`
	DefaultLimit    int  `yaml:"default_limit" env:"GONOTES_NOTES_DEFAULT_LIMIT" env-default:"100"`
}
