/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/suparena/epistemic/errors"
)

// EnvPrefix prefixes every environment override, e.g. EPISTEMIC_LOG_LEVEL.
const EnvPrefix = "EPISTEMIC"

// Config holds all configuration for the epistemic command.
type Config struct {
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"` // "text" (default) or "json"
	Builtin   bool           `mapstructure:"builtin"`    // register the CODATA baseline table
	Stores    []StoreConfig  `mapstructure:"stores"`
	DynamoDB  DynamoDBConfig `mapstructure:"dynamodb"`
}

// StoreConfig binds a store name to the tables that populate it.
type StoreConfig struct {
	Name    string         `mapstructure:"name"`
	Sources []SourceConfig `mapstructure:"sources"`
}

// SourceConfig names exactly one table: a file path or a DynamoDB table.
type SourceConfig struct {
	Path  string `mapstructure:"path"`
	Table string `mapstructure:"table"`
}

// DynamoDBConfig configures the client used for table sources.
type DynamoDBConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Builtin:   false,
		DynamoDB: DynamoDBConfig{
			Region: "us-east-1",
		},
	}
}

// Load reads the configuration file at path, if any, applies defaults and
// EPISTEMIC_* environment overrides, and validates the result. A .env file
// in the working directory is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("dynamodb.region", EnvPrefix+"_DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.access_key", EnvPrefix+"_DYNAMODB_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_key", EnvPrefix+"_DYNAMODB_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers Defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("builtin", d.Builtin)
	v.SetDefault("dynamodb.region", d.DynamoDB.Region)
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.NewValidationError("log_format", fmt.Sprintf("must be text or json, got %q", c.LogFormat))
	}

	seen := make(map[string]bool, len(c.Stores))
	for i, s := range c.Stores {
		if s.Name == "" {
			return errors.NewValidationError(fmt.Sprintf("stores[%d].name", i), "name is required")
		}
		if seen[s.Name] {
			return errors.NewValidationError(fmt.Sprintf("stores[%d].name", i), fmt.Sprintf("store %q listed twice", s.Name))
		}
		seen[s.Name] = true

		if len(s.Sources) == 0 {
			return errors.NewValidationError(fmt.Sprintf("stores[%d].sources", i), "at least one source is required")
		}
		for j, src := range s.Sources {
			field := fmt.Sprintf("stores[%d].sources[%d]", i, j)
			switch {
			case src.Path == "" && src.Table == "":
				return errors.NewValidationError(field, "path or table is required")
			case src.Path != "" && src.Table != "":
				return errors.NewValidationError(field, "path and table are mutually exclusive")
			case src.Table != "" && c.DynamoDB.Region == "":
				return errors.NewValidationError("dynamodb.region", "region is required for table sources")
			}
		}
	}
	return nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.NewValidationError("log_level", fmt.Sprintf("unknown level %q", s))
}
