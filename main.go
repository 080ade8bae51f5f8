// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
localegen turns a directory of per-locale translation files into a typed,
fallback-aware accessor package for Go programs.
*/
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"codeberg.org/localegen/localegen/config"
	"codeberg.org/localegen/localegen/core/audit"
	"codeberg.org/localegen/localegen/core/locale"
	"codeberg.org/localegen/localegen/core/pipeline"
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates a single generation run.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	registry, err := locale.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load locale reference tables: %w", err)
	}

	log.Info().
		Int("languages", len(registry.Languages())).
		Int("regions", len(registry.Regions())).
		Msg("Loaded locale reference tables")

	// A batch run has no graceful-shutdown dance; an interrupt cancels the
	// context and the run reports the cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, pipeline.Params{
		Registry:  registry,
		InputDir:  config.Global.Generator.InputDir,
		OutputDir: config.Global.Generator.OutputDir,
		Template:  config.Global.Generator.Template,
		Package:   config.Global.Generator.Package,
	})
	if err != nil {
		return err
	}

	log.Info().
		Strs("languages", result.Languages).
		Int("locales", len(result.Locales)).
		Int("files", len(result.Files)).
		Msg("Generation complete")

	return nil
}
