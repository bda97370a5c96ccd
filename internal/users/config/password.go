package config

// PasswordConfig содержит настройки хэширования паролей.
type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"USERS_BCRYPT_COST" env-default:"10"`
}
