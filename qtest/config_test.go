package qtest

import (
	"bytes"
	"testing"
	"time"

	"github.com/arloliu/go-strqueue/logger"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	require := require.New(t)

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(err)
		require.Equal(1*time.Second, cfg.TimeLimit())
		require.Equal(0, cfg.FailProbability())
		require.Equal(MaxStringLength, cfg.StringLength())
		require.False(cfg.Echo())
		require.NotNil(cfg.output)
		require.NotNil(cfg.logger)
	})

	t.Run("Valid Configuration", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, err := NewConfig(
			WithTimeLimit(0),
			WithFailProbability(25),
			WithStringLength(8),
			WithEcho(true),
			WithOutput(&buf),
			WithLogger(logger.NewMockLogger()),
			WithSeed(99),
		)
		require.NoError(err)
		require.Zero(cfg.TimeLimit())
		require.Equal(25, cfg.FailProbability())
		require.Equal(8, cfg.StringLength())
		require.True(cfg.Echo())
		require.Same(&buf, cfg.output)
		require.True(cfg.seeded)
		require.EqualValues(99, cfg.seed)
	})

	t.Run("Invalid Time Limit", func(t *testing.T) {
		_, err := NewConfig(WithTimeLimit(time.Microsecond))
		require.EqualError(err, "time limit out of range [1ms, 60s]")

		_, err = NewConfig(WithTimeLimit(61 * time.Second))
		require.EqualError(err, "time limit out of range [1ms, 60s]")
	})

	t.Run("Invalid Fail Probability", func(t *testing.T) {
		_, err := NewConfig(WithFailProbability(-1))
		require.EqualError(err, "fail probability out of range [0, 100]")

		_, err = NewConfig(WithFailProbability(101))
		require.Error(err)
	})

	t.Run("Invalid String Length", func(t *testing.T) {
		_, err := NewConfig(WithStringLength(0))
		require.EqualError(err, "string length out of range [1, 1024]")

		_, err = NewConfig(WithStringLength(MaxStringLength + 1))
		require.Error(err)
	})

	t.Run("Nil Values", func(t *testing.T) {
		_, err := NewConfig(WithOutput(nil))
		require.ErrorIs(err, ErrOutputNil)

		_, err = NewConfig(WithLogger(nil))
		require.ErrorIs(err, ErrLoggerNil)

		require.ErrorIs(WithEcho(true).apply(nil), ErrConfigNil)

		_, err = NewConsole(nil)
		require.ErrorIs(err, ErrConfigNil)
	})
}
