//go:build unit

package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "warn", LevelWarn.String())
	require.Equal(t, "info", LevelInfo.String())
	require.Equal(t, "debug", LevelDebug.String())
	require.Equal(t, "unknown", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, level)

	level, err = ParseLevel(" warning ")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	fieldErr := errors.New("boom")

	require.Equal(t, Field{Key: "name", Value: "x"}, String("name", "x"))
	require.Equal(t, Field{Key: "count", Value: 3}, Int("count", 3))
	require.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	require.Equal(t, Field{Key: "took", Value: time.Second}, Duration("took", time.Second))
	require.Equal(t, Field{Key: "error", Value: fieldErr}, Err(fieldErr))
	require.Equal(t, Field{Key: "payload", Value: 1.5}, Any("payload", 1.5))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	require.Same(t, logger, logger.With(String("k", "v")))
	require.False(t, logger.Enabled(LevelError))
	require.NoError(t, logger.Sync(context.Background()))
}
