// Package config содержит конфигурацию утилиты inputcheck.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"inputcheck/pkg/logger"
)

// EnvConfigFile задает путь к необязательному файлу конфигурации.
// Переменные окружения имеют приоритет над значениями из файла.
const EnvConfigFile = "INPUTCHECK_CONFIG_FILE"

const (
	msgReadingConfigFile = "reading configuration file"
	attrPath             = "path"

	msgLoadingConfig    = "loading inputcheck configuration"
	msgConfigLoaded     = "configuration loaded successfully"
	errFailedLoadConfig = "failed to load configuration"
)

// Config представляет полную конфигурацию приложения.
// Правила проверки не настраиваются.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)
	log.Debug(ctx, msgLoadingConfig)

	var (
		cfg Config
		err error
	)
	if path := os.Getenv(EnvConfigFile); path != "" {
		log.Debug(ctx, msgReadingConfigFile, zap.String(attrPath, path))
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, errFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfig, err)
	}

	log.Debug(ctx, msgConfigLoaded,
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return &cfg, nil
}
