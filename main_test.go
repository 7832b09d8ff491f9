package main

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()

	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatalf("Failed to build parser: %v", err)
	}
	return parser
}

func TestCLI_Structure(t *testing.T) {
	// Compile-time check that the expected commands exist
	var cli CLI
	_ = cli.Convert
	_ = cli.Duplicates
}

func TestCLI_ParseConvertFlags(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	_, err := parser.Parse([]string{"convert", "-p", "photos", "-q", "80", "-c", "4", "--lossless=false", "-r"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if filepath.Base(cli.Convert.Path) != "photos" {
		t.Errorf("Path = %q, want photos", cli.Convert.Path)
	}
	if cli.Convert.Quality != 80 {
		t.Errorf("Quality = %d, want 80", cli.Convert.Quality)
	}
	if cli.Convert.Effort != 4 {
		t.Errorf("Effort = %d, want 4", cli.Convert.Effort)
	}
	if cli.Convert.Lossless {
		t.Error("Expected lossless to be disabled")
	}
	if !cli.Convert.Recursive {
		t.Error("Expected recursive flag to parse (even though it has no effect)")
	}
}

func TestCLI_ConvertDefaults(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	// convert is the default command, so the path flag alone selects it
	_, err := parser.Parse([]string{"-p", "photos"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cli.Convert.Quality != 75 {
		t.Errorf("Default quality = %d, want 75", cli.Convert.Quality)
	}
	if !cli.Convert.Lossless {
		t.Error("Default lossless should be true")
	}
	if cli.Convert.Effort != 2 {
		t.Errorf("Default effort = %d, want 2", cli.Convert.Effort)
	}
	if cli.Convert.Workers != 0 {
		t.Errorf("Default workers = %d, want 0", cli.Convert.Workers)
	}
}

func TestCLI_PathIsRequired(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	if _, err := parser.Parse([]string{"convert"}); err == nil {
		t.Error("Expected parse error when path is missing")
	}
}
