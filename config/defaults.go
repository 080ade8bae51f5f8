// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// SetDefaults populates the configuration with default values.
func (cfg *GeneratorConfig) SetDefaults() {
	cfg.Generator.InputDir = "locale-input"
	cfg.Generator.OutputDir = "locale-output"
	cfg.Generator.Template = "en"
	cfg.Generator.Package = "messages"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
