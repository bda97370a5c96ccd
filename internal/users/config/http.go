package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"USERS_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"USERS_HTTP_PORT" env-default:"3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"USERS_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"USERS_HTTP_WRITE_TIMEOUT" env-default:"10s"`

	// Список разрешенных CORS-источников через запятую.
	CORSOrigins []string `yaml:"cors_origins" env:"USERS_HTTP_CORS_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
