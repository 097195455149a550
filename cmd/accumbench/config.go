package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type BenchConfig struct {
	Rows       int    `mapstructure:"rows"`
	Cols       int    `mapstructure:"cols"`
	Chunks     int    `mapstructure:"chunks"`
	Iterations int    `mapstructure:"iterations"`
	Seed       uint64 `mapstructure:"seed"`
	Source     string `mapstructure:"source"`
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`
}

func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Rows:       10000,
		Cols:       10,
		Chunks:     10,
		Iterations: 100,
		Seed:       1,
		Source:     "table",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadBenchConfig merges, lowest first: defaults, accumbench.yaml in the
// working directory, ACCUMBENCH_* environment variables and explicit flags.
// For example, "log-level" is read from ACCUMBENCH_LOG_LEVEL.
func LoadBenchConfig(flags *pflag.FlagSet) (*BenchConfig, error) {
	cfg := DefaultBenchConfig()

	v := viper.New()
	v.SetConfigName("accumbench")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ACCUMBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *BenchConfig) Validate() error {
	if cfg.Rows < 0 || cfg.Cols < 0 || cfg.Chunks < 0 {
		return fmt.Errorf("rows, cols and chunks must be non-negative")
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1")
	}
	switch cfg.Source {
	case "table", "arrow":
	default:
		return fmt.Errorf("unknown source %q", cfg.Source)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func (cfg *BenchConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
