package commands

import (
	"fmt"

	"github.com/MGTheTrain/jose-rsa/internal/pkg/config"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var validate = validator.New()

// registerLoggerFlags adds the persistent logging flags to rootCmd.
func registerLoggerFlags(rootCmd *cobra.Command) {
	defaults := config.DefaultLoggerSettings()
	rootCmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (debug, info, warning, error, critical)")
	rootCmd.PersistentFlags().String("log-type", defaults.LogType, "Log sink (console or file)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path when --log-type=file")
	rootCmd.PersistentFlags().Int("log-max-size", 10, "Maximum log file size in MB before rotation")
	rootCmd.PersistentFlags().Int("log-max-backups", 3, "Maximum number of rotated log files")
	rootCmd.PersistentFlags().Int("log-max-age", 28, "Maximum age of rotated log files in days")
}

func loggerSettingsFromFlags(cmd *cobra.Command) (*config.LoggerSettings, error) {
	flags := cmd.Flags()
	settings := &config.LoggerSettings{}

	var err error
	if settings.LogLevel, err = flags.GetString("log-level"); err != nil {
		return nil, fmt.Errorf("invalid log-level flag: %w", err)
	}
	if settings.LogType, err = flags.GetString("log-type"); err != nil {
		return nil, fmt.Errorf("invalid log-type flag: %w", err)
	}
	if settings.FilePath, err = flags.GetString("log-file"); err != nil {
		return nil, fmt.Errorf("invalid log-file flag: %w", err)
	}
	if settings.MaxSize, err = flags.GetInt("log-max-size"); err != nil {
		return nil, fmt.Errorf("invalid log-max-size flag: %w", err)
	}
	if settings.MaxBackups, err = flags.GetInt("log-max-backups"); err != nil {
		return nil, fmt.Errorf("invalid log-max-backups flag: %w", err)
	}
	if settings.MaxAge, err = flags.GetInt("log-max-age"); err != nil {
		return nil, fmt.Errorf("invalid log-max-age flag: %w", err)
	}
	return settings, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func validateRequest(request interface{}) error {
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
