package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keySchema         = "schema"
	keyMaxDepth       = "max-depth"
	keySchemaMaxDepth = "schema-max-depth"
	keyConcurrency    = "concurrency"
	keyLogLevel       = "log-level"
	keyConfig         = "config"
	keyCPUProfile     = "cpuprofile"
	keyMemProfile     = "memprofile"
)

type config struct {
	schema         string
	logLevel       string
	cpuProfile     string
	memProfile     string
	maxDepth       int
	schemaMaxDepth int
	concurrency    int
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(keySchema, "", "path to JSON or YAML schema file")
	flags.Int(keyMaxDepth, 0, "maximum instance nesting depth (0 uses default)")
	flags.Int(keySchemaMaxDepth, 0, "maximum schema nesting depth (0 uses default)")
	flags.Int(keyConcurrency, runtime.GOMAXPROCS(0), "number of documents validated in parallel")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(keyConfig, "", "config file (default .jsonlint.yaml in the working directory)")
	flags.String(keyCPUProfile, "", "write CPU profile to file")
	flags.String(keyMemProfile, "", "write memory profile to file")
}

// loadConfig resolves settings with flag > environment > config file > default precedence.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix("jsonlint")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".jsonlint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := config{
		schema:         v.GetString(keySchema),
		logLevel:       v.GetString(keyLogLevel),
		cpuProfile:     v.GetString(keyCPUProfile),
		memProfile:     v.GetString(keyMemProfile),
		maxDepth:       v.GetInt(keyMaxDepth),
		schemaMaxDepth: v.GetInt(keySchemaMaxDepth),
		concurrency:    v.GetInt(keyConcurrency),
	}
	if cfg.schema == "" {
		return config{}, usageError{errors.New("--schema is required")}
	}
	if cfg.maxDepth < 0 {
		return config{}, usageError{fmt.Errorf("--max-depth must be >= 0, got %d", cfg.maxDepth)}
	}
	if cfg.schemaMaxDepth < 0 {
		return config{}, usageError{fmt.Errorf("--schema-max-depth must be >= 0, got %d", cfg.schemaMaxDepth)}
	}
	if cfg.concurrency < 1 {
		return config{}, usageError{fmt.Errorf("--concurrency must be >= 1, got %d", cfg.concurrency)}
	}
	return cfg, nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, usageError{fmt.Errorf("--log-level: %w", err)}
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
