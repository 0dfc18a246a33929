package testutil

import (
	"testing"

	"github.com/MGTheTrain/jose-rsa/internal/pkg/config"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initializing it at debug level on first use.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
