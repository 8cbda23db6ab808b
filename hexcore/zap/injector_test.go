//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_ValidConfig(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{
		Environment:     EnvironmentProduction,
		OTelLibraryName: "hexcore.test",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNew_ExplicitLevel(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{
		Environment:     EnvironmentProduction,
		Level:           "error",
		OTelLibraryName: "hexcore.test",
	})
	require.NoError(t, err)
	require.Equal(t, zapcore.ErrorLevel, level.Level())
}

func TestNew_DevelopmentDefaultsToDebug(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{
		Environment:     EnvironmentDevelopment,
		OTelLibraryName: "hexcore.test",
	})
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestNew_MissingLibraryName(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction})
	require.ErrorContains(t, err, "OTelLibraryName is required")
}

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: "qa", OTelLibraryName: "hexcore.test"})
	require.ErrorContains(t, err, "invalid environment")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{
		Environment:     EnvironmentLocal,
		Level:           "loudest",
		OTelLibraryName: "hexcore.test",
	})
	require.ErrorContains(t, err, "invalid level")
}
