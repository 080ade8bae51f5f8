// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
)

// Global exposes the generator configuration.
var Global GeneratorConfig

// GeneratorConfig holds the application configuration.
type GeneratorConfig struct {
	Build buildInfo `yaml:"-"`

	Generator struct {
		// InputDir is the directory holding the per-locale translation files.
		InputDir string `env:"LOCALEGEN_INPUT,overwrite" yaml:"inputDir"`
		// OutputDir receives the generated units. An explicitly empty value
		// means "write next to the input files".
		OutputDir string `env:"LOCALEGEN_OUTPUT,overwrite" yaml:"outputDir"`
		// Template is the locale whose key set is the authoritative schema.
		Template string `env:"LOCALEGEN_TEMPLATE,overwrite" yaml:"template"`
		// Package is the Go package name of the generated units.
		Package string `env:"LOCALEGEN_PACKAGE,overwrite" yaml:"package"`
	} `yaml:"generator"`

	Log struct {
		Level   string   `env:"LOCALEGEN_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"LOCALEGEN_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"LOCALEGEN_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *GeneratorConfig) LoadConfig() error {
	parsedConfigFlagValue, configFlagUserSet := parseCommandLineArgs()

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (LOCALEGEN_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		// Command-line flag has the highest precedence.
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("LOCALEGEN_CONFIGFILE"); envVar != "" {
		// Environment variable is next.
		configFilePath = envVar
	} else {
		// If neither flag nor env var was provided, use the default value
		// from the flag ("./config.yaml").
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}
