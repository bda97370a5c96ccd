package config

// SeedConfig управляет заполнением базы демонстрационными данными.
// Демо-данные никогда не создаются вне явно включенного режима.
type SeedConfig struct {
	Demo bool `yaml:"demo" env:"USERS_SEED_DEMO" env-default:"false"`
}
