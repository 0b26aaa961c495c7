package config

import (
	"strings"

	"inputcheck/pkg/logger"
)

// Переменные окружения настроек логирования.
const (
	EnvLoggerLevel = "INPUTCHECK_LOGGER_LEVEL"
	EnvLoggerMode  = "INPUTCHECK_LOGGER_MODE"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"INPUTCHECK_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"INPUTCHECK_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment переводит строку режима в logger.Environment без учета регистра.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if strings.EqualFold(strings.TrimSpace(l.Mode), string(logger.Production)) {
		return logger.Production
	}
	return logger.Development
}
