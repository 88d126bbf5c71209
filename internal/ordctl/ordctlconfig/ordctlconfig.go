// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ordctlconfig provides configuration parsing and validation for ordctl.
//
// Configuration is stored at ~/.config/ordctl/config.yaml (or $ORDCTL_CONFIG_DIR/config.yaml).
// The configuration file is optional: conversion commands fall back to built-in
// defaults when it is absent.
package ordctlconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bufdev/ordctl/internal/pkg/cliio"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// DefaultPrecision is the number of ordinal decimal places used when the
// configuration does not set one.
const DefaultPrecision = 6

// maxPrecision is the largest accepted precision. strconv.FormatFloat produces
// no meaningful digits for a float64 beyond this.
const maxPrecision = 17

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# Input parsing configuration.
#
# Optional. Layouts are extra Go time layouts tried when parsing datetime
# values, before the built-in layouts. See https://pkg.go.dev/time#Layout.
# input:
#   layouts:
#     - "01/02/2006 15:04:05"
# Output configuration.
#
# Optional. Format is the default output format (table, csv, json).
# Precision is the number of ordinal decimal places in table and CSV
# output (0-17, default 6).
# output:
#   format: table
#   precision: 6
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Input holds input parsing configuration.
	Input ExternalInputConfig `yaml:"input"`
	// Output holds output formatting configuration.
	Output ExternalOutputConfig `yaml:"output"`
}

// ExternalInputConfig holds input parsing configuration.
type ExternalInputConfig struct {
	// Layouts is the list of extra Go time layouts tried when parsing datetime values.
	Layouts []string `yaml:"layouts"`
}

// ExternalOutputConfig holds output formatting configuration.
type ExternalOutputConfig struct {
	// Format is the default output format (table, csv, json).
	Format string `yaml:"format"`
	// Precision is the number of ordinal decimal places in table and CSV output.
	Precision *int `yaml:"precision"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Layouts is the list of extra Go time layouts tried when parsing datetime values.
	Layouts []string
	// Format is the default output format.
	Format cliio.Format
	// Precision is the number of ordinal decimal places in table and CSV output.
	Precision int
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Format:    cliio.FormatTable,
		Precision: DefaultPrecision,
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	for i, layout := range externalConfig.Input.Layouts {
		if layout == "" {
			return nil, fmt.Errorf("input.layouts[%d] is empty", i)
		}
	}
	format := cliio.FormatTable
	if externalConfig.Output.Format != "" {
		var err error
		format, err = cliio.ParseFormat(externalConfig.Output.Format)
		if err != nil {
			return nil, fmt.Errorf("output.format: %w", err)
		}
	}
	precision := DefaultPrecision
	if externalConfig.Output.Precision != nil {
		precision = *externalConfig.Output.Precision
		if precision < 0 || precision > maxPrecision {
			return nil, fmt.Errorf("output.precision %d out of range [0,%d]", precision, maxPrecision)
		}
	}
	return &Config{
		Layouts:   externalConfig.Input.Layouts,
		Format:    format,
		Precision: precision,
	}, nil
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
// Returns a clear error message directing users to run "ordctl config init" if the file is missing.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"ordctl config init\" to create one", filePath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig)
}

// ReadConfigIfPresent reads and validates the configuration file from the given
// config directory, returning DefaultConfig if the file does not exist.
func ReadConfigIfPresent(configDirPath string) (*Config, error) {
	if _, err := os.Stat(ConfigFilePath(configDirPath)); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return ReadConfig(configDirPath)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfig reads and validates the configuration file from the given config directory.
func ValidateConfig(configDirPath string) error {
	_, err := ReadConfig(configDirPath)
	return err
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
