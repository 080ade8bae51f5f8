// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

// parseCommandLineArgs defines and parses flags, returning the value of the
// "config" flag and whether the user set it explicitly.
func parseCommandLineArgs() (string, bool) {
	var configFilePath string

	if flag.Lookup("config") == nil {
		flag.StringVar(&configFilePath, "config", "./config.yaml", "Path to a localegen configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	userSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			userSet = true
		}
	})

	return configFilePath, userSet
}
