package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envOverrides mirrors the settings that may come from the environment.
// Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	Images     *string `env:"MASKLINT_IMAGES"`
	Jobs       *int    `env:"MASKLINT_JOBS"`
	LogFile    *string `env:"MASKLINT_LOG_FILE"`
	ConfigFile *string `env:"MASKLINT_CONFIG"`
	Verbose    *bool   `env:"MASKLINT_VERBOSE"`
	Strict     *bool   `env:"MASKLINT_STRICT"`
	Color      *string `env:"MASKLINT_COLOR"`
	NoColor    string  `env:"NO_COLOR"` // https://no-color.org: any non-empty value.
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already present in the environment are not overwritten.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ApplyEnv layers MASKLINT_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{})
}

func applyEnv(cfg *Config, opts env.Options) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if o.Images != nil {
		cfg.ImagesDir = NormalizeDirArg(*o.Images)
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
	if o.LogFile != nil {
		cfg.LogFile = *o.LogFile
	}
	if o.ConfigFile != nil {
		cfg.ConfigFile = *o.ConfigFile
	}
	if o.Verbose != nil {
		cfg.Verbose = *o.Verbose
	}
	if o.Strict != nil {
		cfg.Strict = *o.Strict
	}
	if o.Color != nil {
		mode, err := parseColorMode(*o.Color)
		if err != nil {
			return fmt.Errorf("MASKLINT_COLOR: %w", err)
		}
		cfg.ColorMode = mode
	}
	if o.NoColor != "" {
		cfg.ColorMode = ColorNever
	}
	return nil
}
