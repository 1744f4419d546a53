package logger

import "log/slog"

// Config describes the environment-driven logger settings. Pair it with the
// config package to populate it from LOG_* variables.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`  // Level is the minimum level a record must have to be logged.
	Format Format     `env:"LOG_FORMAT" envDefault:"json"` // Format selects between json and text output.
}

// NewFromConfig creates a logger from the provided Config.
// Additional options are applied on top of the config values.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := make([]Option, 0, 2+len(opts))

	configOpts = append(configOpts, WithLevel(cfg.Level))
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(cfg.Format))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
