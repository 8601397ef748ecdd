package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/slogjson"
)

// envPrefix is prepended to every configuration key to form its environment
// variable, e.g. SUPPRESS_LOG_FILE.
const envPrefix = "SUPPRESS"

// Config is read from the environment only. The wrapper has no flags of its
// own since every argument belongs to the wrapped command.
type Config struct {
	// LogFile is where JSON debug logs are appended. Logging is disabled when
	// empty so that the wrapper never writes anything of its own to stderr
	// except fatal errors.
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()

	var config Config
	err := v.Unmarshal(&config)
	if err != nil {
		return Config{}, xerrors.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, xerrors.Errorf("unknown log level %q", s)
	}
}

// newLogger builds the logger described by c. The returned close function
// must be called once logging is finished.
func newLogger(c Config) (slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.Make(), func() error { return nil }, nil
	}

	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.Logger{}, nil, err
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return slog.Logger{}, nil, xerrors.Errorf("open log file %q: %w", c.LogFile, err)
	}

	return slog.Make(slogjson.Sink(f)).Leveled(level), f.Close, nil
}
