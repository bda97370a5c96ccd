// Package db отвечает за подготовку базы данных сервиса пользователей:
// идемпотентно создает целевую базу и таблицу users при старте.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"useradmin/internal/users/config"
	"useradmin/pkg/db/postgres"
	"useradmin/pkg/logger"
)

// Константы сообщений логгера.
const (
	LogDBInitializing   = "initializing users database"
	LogDBInitialized    = "users database initialized successfully"
	LogDatabaseCreated  = "database created"
	LogDatabaseExists   = "database already exists"
	LogTableCreated     = "table users created"
	LogTableExists      = "table users already exists"
)

// Константы сообщений об ошибках.
const (
	ErrDBConnection    = "failed to connect to users database"
	ErrMaintenanceConn = "failed to connect to maintenance database"
	ErrEnsureDatabase  = "failed to ensure database exists"
	ErrEnsureTable     = "failed to ensure users table exists"
)

// executor - минимальный интерфейс выполнения запросов, нужный bootstrap-шагам.
type executor interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// Фиксированный набор колонок таблицы users.
const createUsersTableDDL = `
CREATE TABLE users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    surname VARCHAR(100) NOT NULL,
    email VARCHAR(150) UNIQUE NOT NULL,
    password VARCHAR(255) NOT NULL,
    phone VARCHAR(15),
    age INT,
    country VARCHAR(100),
    district VARCHAR(100),
    role VARCHAR(50),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// DB представляет подготовленное соединение с базой данных сервиса.
type DB struct {
	database *postgres.Database
}

// New готовит базу данных: создает целевую базу при отсутствии,
// открывает пул и создает таблицу users при отсутствии.
// Любая ошибка фатальна для запуска, повторов нет.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	if err := ensureDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrEnsureDatabase, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	if err := ensureUsersTable(ctx, database.Pool()); err != nil {
		database.Close(ctx)
		return nil, fmt.Errorf("%s: %w", ErrEnsureTable, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// ensureDatabase проверяет существование целевой базы через служебное
// соединение и создает ее при отсутствии.
func ensureDatabase(ctx context.Context, cfg *config.PostgresConfig) error {
	log := logger.Log(ctx)

	conn, err := pgx.Connect(ctx, cfg.GetMaintenanceDSN())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMaintenanceConn, err)
	}
	defer func() { _ = conn.Close(ctx) }()

	var exists bool
	err = conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`,
		cfg.Database,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking database existence: %w", err)
	}

	if exists {
		log.Info(ctx, LogDatabaseExists, zap.String("database", cfg.Database))
		return nil
	}

	// Имя базы нельзя передать параметром, поэтому оно экранируется.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.Database}.Sanitize()); err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	log.Info(ctx, LogDatabaseCreated, zap.String("database", cfg.Database))
	return nil
}

// ensureUsersTable проверяет существование таблицы users и создает ее
// с фиксированным набором колонок при отсутствии.
func ensureUsersTable(ctx context.Context, exec executor) error {
	log := logger.Log(ctx)

	var exists bool
	err := exec.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
		"users",
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking users table existence: %w", err)
	}

	if exists {
		log.Info(ctx, LogTableExists)
		return nil
	}

	if _, err := exec.Exec(ctx, createUsersTableDDL); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	log.Info(ctx, LogTableCreated)
	return nil
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}
