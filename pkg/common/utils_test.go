// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PLAYFAB_MODELS_TEST_INT", "12")
	t.Setenv("PLAYFAB_MODELS_TEST_BAD", "twelve")

	assert.Equal(t, 12, GetEnvInt("PLAYFAB_MODELS_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("PLAYFAB_MODELS_TEST_BAD", 1))
	assert.Equal(t, 3, GetEnvInt("PLAYFAB_MODELS_TEST_MISSING", 3))
}

func TestLoadConfig(t *testing.T) {
	// Arrange
	t.Setenv("PLAYFAB_MODELS_SERVICE", "multiplayer")
	t.Setenv("PLAYFAB_MODELS_INDENT", "4")
	t.Setenv("LOG_LEVEL", "debug")

	// Act
	cfg := LoadConfig()

	// Assert
	assert.Equal(t, "multiplayer", cfg.DefaultService)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	ConfigureLogging(Config{LogLevel: "warn", LogFormat: "json"})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	ConfigureLogging(Config{LogLevel: "loud", LogFormat: "text"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestRootScopeTraceID(t *testing.T) {
	given := "0123456789abcdef0123456789abcdef"

	scope := NewRootScope(context.Background(), "test", given)
	defer scope.Finish()
	fallback := NewRootScope(context.Background(), "test", "short")
	defer fallback.Finish()

	assert.Equal(t, given, scope.TraceID)
	assert.Equal(t, given, scope.Log.Data[traceIDLogField])
	assert.Len(t, fallback.TraceID, 32)
}
