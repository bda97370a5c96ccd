// Package main реализует точку входа консоли администратора.
package main

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"useradmin/internal/admin/cli"
	"useradmin/internal/admin/client"
	"useradmin/internal/admin/config"
	"useradmin/pkg/logger"
)

// Константы переменных окружения.
const (
	EnvLoggerMode  = "ADMIN_LOGGER_MODE"
	EnvLoggerLevel = "ADMIN_LOGGER_LEVEL"
)

// Константы сообщений об ошибках.
const (
	ErrInitLogger = "failed to initialize logger"
	ErrLoadConfig = "failed to load configuration"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	level := os.Getenv(EnvLoggerLevel)
	if level == "" {
		// Консоль общается с оператором напрямую, журнал по умолчанию тихий.
		level = "error"
	}

	log, err := logger.NewLogger(env, level)
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		os.Exit(1)
	}

	notifier := client.NewConsoleNotifier(os.Stdout)
	dataCtx := client.New(cfg.APIURL, cfg.GetRequestTimeout(), cfg.PageSize, notifier)

	app := cli.NewApp(cfg, dataCtx)
	app.Run(ctx)
}
