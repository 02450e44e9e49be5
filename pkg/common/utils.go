// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func GetEnvInt(key string, fallback int) int {
	str := GetEnv(key, strconv.Itoa(fallback))
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}

	return val
}

// GenerateUUID generates uuid without hyphens
func GenerateUUID() string {
	id, _ := uuid.NewRandom()

	return strings.ReplaceAll(id.String(), "-", "")
}

// Config is read from the environment once at startup
type Config struct {
	LogLevel       string
	LogFormat      string
	ServiceName    string
	DefaultService string
	Indent         int
}

func LoadConfig() Config {
	return Config{
		LogLevel:       GetEnv("LOG_LEVEL", logrus.InfoLevel.String()),
		LogFormat:      GetEnv("LOG_FORMAT", "text"),
		ServiceName:    GetEnv("OTEL_SERVICE_NAME", "playfab-models"),
		DefaultService: GetEnv("PLAYFAB_MODELS_SERVICE", "client"),
		Indent:         GetEnvInt("PLAYFAB_MODELS_INDENT", 2),
	}
}

// ConfigureLogging applies the log level and format of cfg to the standard logrus logger
func ConfigureLogging(cfg Config) {
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
