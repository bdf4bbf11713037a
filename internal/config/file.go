package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML layout. Omitted keys keep their current
// values.
//
//	images: /data/images
//	jobs: 16
//	log_file: /var/log/masklint.log
//	verbose: false
//	strict: true
//	color: auto
type fileConfig struct {
	Images  *string `yaml:"images"`
	Jobs    *int    `yaml:"jobs"`
	LogFile *string `yaml:"log_file"`
	Verbose *bool   `yaml:"verbose"`
	Strict  *bool   `yaml:"strict"`
	Color   *string `yaml:"color"`
}

// LoadFile reads the YAML file at path and layers its values onto cfg.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %q: %w", path, err)
	}

	if fc.Images != nil {
		cfg.ImagesDir = NormalizeDirArg(*fc.Images)
	}
	if fc.Jobs != nil {
		cfg.Jobs = *fc.Jobs
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.Color != nil {
		mode, err := parseColorMode(*fc.Color)
		if err != nil {
			return fmt.Errorf("config %q: %w", path, err)
		}
		cfg.ColorMode = mode
	}
	return nil
}
