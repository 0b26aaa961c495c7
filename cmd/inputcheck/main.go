// Package main реализует точку входа утилиты inputcheck.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"inputcheck/internal/cli"
	"inputcheck/internal/config"
	"inputcheck/pkg/logger"
)

// Сообщения об ошибках запуска.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrStartup              = "failed to start inputcheck"
)

// Ошибки Sync, которые возникают при выводе в терминал и не требуют реакции.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

func main() {
	startupCfg := config.LoggingConfig{
		Level: os.Getenv(config.EnvLoggerLevel),
		Mode:  os.Getenv(config.EnvLoggerMode),
	}

	log, err := logger.NewLogger(startupCfg.GetEnvironment(), startupCfg.Level)
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(log)

	ctx := logger.ContextWithRequestID(context.Background(), "")

	var exitCode int

	func() {
		defer func() { syncLogger(logger.Log(ctx)) }()

		ctx, err = bootstrap(ctx, log)
		if err != nil {
			log.Error(ctx, ErrStartup, zap.Error(err))
			exitCode = cli.ExitUsage
			return
		}

		exitCode = cli.Run(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// bootstrap загружает конфигурацию, сбрасывает буфер стартового logger
// и возвращает контекст с итоговым logger.
func bootstrap(ctx context.Context, startup *logger.Logger) (context.Context, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return ctx, fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		return ctx, fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}

	syncLogger(startup)
	logger.SetGlobalLogger(finalLogger)

	finalLogger.Debug(ctx, "logger configured",
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", string(cfg.Logging.GetEnvironment())))

	return logger.Bind(ctx, finalLogger), nil
}

func syncLogger(l *logger.Logger) {
	if err := l.Sync(); err != nil && !isTerminalSyncError(err) {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err)
	}
}

func isTerminalSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, ErrSyncStderr) || strings.Contains(msg, ErrSyncStdout)
}
