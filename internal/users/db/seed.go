package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"useradmin/internal/users/ports/services"
	"useradmin/pkg/logger"
)

// Константы сообщений seed-шага.
const (
	LogSeeding      = "seeding demo users"
	LogSeedSkipped  = "users table is not empty, demo seed skipped"
	LogSeedFinished = "demo users seeded"
)

type demoUser struct {
	name, surname, email, password string
	country, role                  string
}

// Демонстрационные записи для режима разработки.
var demoUsers = []demoUser{
	{name: "Ann", surname: "Smith", email: "ann.smith@example.com", password: "demo-pass-1", country: "Canada", role: "admin"},
	{name: "Boris", surname: "Ivanov", email: "boris.ivanov@example.com", password: "demo-pass-2", country: "Serbia", role: "viewer"},
	{name: "Carla", surname: "Rossi", email: "carla.rossi@example.com", password: "demo-pass-3", country: "Italy", role: "editor"},
}

// SeedDemo заполняет пустую таблицу users демонстрационными записями.
// Шаг отделен от подготовки схемы и выполняется только когда включен
// в конфигурации. Непустая таблица не изменяется.
func SeedDemo(ctx context.Context, exec executor, passwordService services.PasswordService) error {
	log := logger.Log(ctx)

	var count int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("counting users before seed: %w", err)
	}
	if count > 0 {
		log.Info(ctx, LogSeedSkipped, zap.Int("count", count))
		return nil
	}

	log.Info(ctx, LogSeeding, zap.Int("users", len(demoUsers)))

	for _, demo := range demoUsers {
		hash, err := passwordService.Hash(ctx, demo.password)
		if err != nil {
			return fmt.Errorf("hashing demo password: %w", err)
		}

		_, err = exec.Exec(ctx, `
            INSERT INTO users (name, surname, email, password, country, role, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
            ON CONFLICT (email) DO NOTHING`,
			demo.name, demo.surname, demo.email, hash, demo.country, demo.role,
		)
		if err != nil {
			return fmt.Errorf("inserting demo user %s: %w", demo.email, err)
		}
	}

	log.Info(ctx, LogSeedFinished)
	return nil
}
