// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package pipeline sequences a full generation run: discover and load
// translation files, validate them against the template locale, group by
// language, synthesise the accessor units, and only then write output.
//
// The stages are strictly fail-fast. Any validation or synthesis failure
// aborts the run before the output directory is touched, so a failed run
// never leaves partial or stale-mixed output behind.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/localegen/localegen/core/audit"
	"codeberg.org/localegen/localegen/core/catalog"
	"codeberg.org/localegen/localegen/core/codegen"
	"codeberg.org/localegen/localegen/core/locale"
	"codeberg.org/localegen/localegen/core/resolve"
)

// Params configures a generation run.
type Params struct {
	// Registry validates locale identifiers.
	Registry *locale.Registry

	// InputDir holds the translation files.
	InputDir string

	// OutputDir receives the generated units; empty means InputDir.
	OutputDir string

	// Template is the locale whose key set is the authoritative schema.
	Template string

	// Package is the Go package name of the generated units.
	Package string
}

// Result summarises a successful run.
type Result struct {
	Locales   []string // canonical locale identifiers, sorted
	Languages []string // languages with a generated unit, sorted
	Files     []string // paths written, aggregate unit first
}

// runStage executes one pipeline phase inside an audit span, so every phase
// shows up in traces and debug logs with its duration and outcome.
func runStage(ctx context.Context, stage audit.Stage, detail string, fn func(context.Context) error) error {
	span := audit.Span{Stage: stage, Detail: detail}

	ctx = span.Begin(ctx)
	err := fn(ctx)
	span.End()

	span.Error = err
	span.Log()

	return err
}

// Run executes the pipeline and reports what was generated.
func Run(ctx context.Context, p Params) (*Result, error) {
	logger := log.With().Str("sys", "pipeline").Logger()

	template, err := p.Registry.Parse(p.Template)
	if err != nil {
		return nil, fmt.Errorf("template locale: %w", err)
	}

	var sets []*catalog.Set

	err = runStage(ctx, audit.StageLoad, p.InputDir, func(_ context.Context) error {
		var err error

		sets, err = catalog.LoadDir(p.Registry, p.InputDir)

		return err
	})
	if err != nil {
		return nil, err
	}

	for _, set := range sets {
		logger.Info().
			Str("locale", set.ID.String()).
			Str("file", set.Path).
			Int("keys", set.Len()).
			Msg("Loaded translation set")
	}

	var (
		templateSet *catalog.Set
		groups      []resolve.Group
	)

	err = runStage(ctx, audit.StageValidate, template.String(), func(_ context.Context) error {
		var err error

		templateSet, err = catalog.FindTemplate(sets, template)
		if err != nil {
			return fmt.Errorf("input directory %s: %w", p.InputDir, err)
		}

		if err := catalog.CheckKeys(templateSet, sets); err != nil {
			return err
		}

		if err := catalog.CheckDefaults(templateSet, sets); err != nil {
			return err
		}

		ids := make([]locale.ID, 0, len(sets))
		for _, set := range sets {
			ids = append(ids, set.ID)
		}

		groups, err = resolve.Build(ids)

		return err
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*catalog.Set, len(sets))
	for _, set := range sets {
		byID[set.ID.String()] = set
	}

	var files []codegen.File

	err = runStage(ctx, audit.StageGenerate, p.Package, func(_ context.Context) error {
		var err error

		files, err = codegen.Generate(codegen.Input{
			Package:  p.Package,
			Template: templateSet,
			Groups:   groups,
			Sets:     byID,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	// Everything validated and rendered; only now touch the output
	// directory.
	outDir := p.OutputDir
	if outDir == "" {
		outDir = p.InputDir
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, len(files))

	// Units are disjoint files, so the writes can fan out; each one is
	// atomic, so no reader ever observes a half-written unit.
	var g errgroup.Group

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(outDir, file.Name)

			span := audit.Span{Stage: audit.StageWrite, Detail: path, Bytes: len(file.Content)}
			_ = span.Begin(ctx)

			err := atomic.WriteFile(path, bytes.NewReader(file.Content))

			span.End()
			span.Error = err
			span.Log()

			if err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			written[i] = path

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Locales:   make([]string, 0, len(sets)),
		Languages: make([]string, 0, len(groups)),
		Files:     written,
	}

	for _, set := range sets {
		result.Locales = append(result.Locales, set.ID.String())
	}

	for _, group := range groups {
		result.Languages = append(result.Languages, group.Language)
	}

	return result, nil
}
