package config

import (
	"errors"
	"fmt"
	"go/token"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errTemplateIsPath     = errors.New("generator.template must be a locale name, not a path")
	errInvalidPackageName = errors.New("generator.package is not a valid Go package name")
	errInvalidLogFormat   = errors.New("invalid log.format value")
)

var packageNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validateAndSet validates the generator configuration and populates some fields.
func (cfg *GeneratorConfig) validateAndSet() error {
	if cfg.Generator.InputDir == "" {
		cfg.Generator.InputDir = "locale-input"
		log.Info().
			Str("inputDir", cfg.Generator.InputDir).
			Msg("Using default input directory")
	}

	// An empty OutputDir is deliberate and means "write next to the input
	// files", so it is left alone here.

	if cfg.Generator.Template == "" {
		cfg.Generator.Template = "en"
		log.Info().
			Str("template", cfg.Generator.Template).
			Msg("Using default template locale")
	}

	// The template names a locale, not a file; whether it is a known locale
	// is checked against the reference tables once generation starts.
	if strings.ContainsAny(cfg.Generator.Template, `/\`) {
		return fmt.Errorf("%w: %q", errTemplateIsPath, cfg.Generator.Template)
	}

	if cfg.Generator.Package == "" {
		cfg.Generator.Package = "messages"
		log.Info().
			Str("package", cfg.Generator.Package).
			Msg("Using default package name")
	}

	// The generated units declare this in their package clause, so it must be
	// a plain lower-case identifier and not a keyword.
	if !packageNameRegexp.MatchString(cfg.Generator.Package) || token.IsKeyword(cfg.Generator.Package) {
		return fmt.Errorf("%w: %q", errInvalidPackageName, cfg.Generator.Package)
	}

	switch cfg.Log.Format {
	case "console", "json":
		// valid
	case "":
		cfg.Log.Format = "console"
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
