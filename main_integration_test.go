// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeInput lays out a translation directory for a test run.
func writeInput(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
}

// TestRunEndToEnd drives run() against a real input directory, the way the
// installed binary is invoked, and checks the files that land in the output
// directory.
func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "locale-input")
	outputDir := filepath.Join(dir, "locale-output")

	writeInput(t, inputDir, map[string]string{
		"en.json":    `{"greeting": "Hello", "farewell": "Bye"}`,
		"en-US.json": `{"greeting": "Howdy"}`,
		"de.yaml":    "greeting: Hallo\nfarewell: Tschüss\n",
	})

	t.Setenv("LOCALEGEN_INPUT", inputDir)
	t.Setenv("LOCALEGEN_OUTPUT", outputDir)
	t.Setenv("LOCALEGEN_TEMPLATE", "en")

	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"messages_gen.go", "messages_en_gen.go", "messages_de_gen.go"} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", name, err)
		}

		if !strings.HasPrefix(string(data), "// Code generated by localegen. DO NOT EDIT.") {
			t.Errorf("%s is missing the generated-code header", name)
		}
	}
}

// TestRunRejectsUnknownKey checks that a locale file using a key the template
// does not declare fails the whole run and nothing is written.
func TestRunRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "locale-input")
	outputDir := filepath.Join(dir, "locale-output")

	writeInput(t, inputDir, map[string]string{
		"en.json": `{"greeting": "Hello"}`,
		"fr.json": `{"greeting": "Salut", "signoff": "Bisous"}`,
	})

	t.Setenv("LOCALEGEN_INPUT", inputDir)
	t.Setenv("LOCALEGEN_OUTPUT", outputDir)
	t.Setenv("LOCALEGEN_TEMPLATE", "en")

	err := run()
	if err == nil {
		t.Fatal("run() succeeded, want unknown-key failure")
	}

	if !strings.Contains(err.Error(), "signoff") {
		t.Errorf("run() error = %v, want mention of the unknown key", err)
	}

	if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
		t.Errorf("output directory %s exists after a failed run", outputDir)
	}
}
