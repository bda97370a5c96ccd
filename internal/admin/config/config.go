// Package config содержит конфигурацию консоли администратора.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"useradmin/pkg/logger"
)

// Константы сообщений логгера.
const (
	LogConfigLoaded = "admin console configuration loaded"
)

// Config содержит настройки консоли администратора.
type Config struct {
	// APIURL - адрес HTTP API сервиса пользователей.
	APIURL string `yaml:"api_url" env:"ADMIN_API_URL" env-default:"http://localhost:3000"`

	// PageSize - размер страницы списка пользователей по умолчанию.
	PageSize int `yaml:"page_size" env:"ADMIN_PAGE_SIZE" env-default:"5"`

	// RequestTimeout - таймаут HTTP-запросов к API, в секундах.
	RequestTimeout int `yaml:"request_timeout" env:"ADMIN_REQUEST_TIMEOUT" env-default:"10"`
}

// GetRequestTimeout возвращает таймаут запросов как time.Duration.
func (c *Config) GetRequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load загружает конфигурацию консоли из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading admin environment variables: %w", err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded)

	return cfg, nil
}
