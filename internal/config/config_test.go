package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joe/seqscan/internal/config"
	"github.com/joe/seqscan/pkg/seqerr"
	"github.com/joe/seqscan/pkg/sequence"
)

func TestValidateRequiresDir(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error when Dir is empty")
	}
	if got := err.(*seqerr.Error).Kind(); got != seqerr.KindDetectionConfigInvalid {
		t.Errorf("expected KindDetectionConfigInvalid, got %v", got)
	}
}

func TestValidateRejectsMissingDir(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "does-not-exist")}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
	if got := err.(*seqerr.Error).Kind(); got != seqerr.KindInputNotFound {
		t.Errorf("expected KindInputNotFound, got %v", got)
	}
}

func TestValidateRejectsNonDirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "notadir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg := &config.Config{Dir: file}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for a non-directory path")
	}
	if got := err.(*seqerr.Error).Kind(); got != seqerr.KindInputNotADirectory {
		t.Errorf("expected KindInputNotADirectory, got %v", got)
	}
}

func TestOptionsTranslatesFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{ShowDotfile: true, Negative: true}
	opts := cfg.Options()

	if !opts.Has(sequence.DotFile) {
		t.Error("expected DotFile to be set")
	}
	if !opts.Has(sequence.Negative) {
		t.Error("expected Negative to be set")
	}
}

func TestAcceptedFlavorsDefaultsToAll(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}

	accept, err := cfg.AcceptedFlavors()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accept != sequence.FlavorAll {
		t.Errorf("expected FlavorAll, got %v", accept)
	}
}

func TestAcceptedFlavorsRejectsUnknownName(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Flavors: []string{"bogus"}}
	if _, err := cfg.AcceptedFlavors(); err == nil {
		t.Fatal("expected an error for an unknown flavor name")
	}
}

func TestMergeProfileFillsUnsetFields(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	yamlContent := "recursive: true\nfilters:\n  - \"*.exr\"\nflavors:\n  - standard\n"
	if err := os.WriteFile(profilePath, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, ProfileFile: profilePath}

	got, err := config.PostProcessConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Recursive {
		t.Error("expected Recursive to be picked up from the profile")
	}
	if len(got.Filters) != 1 || got.Filters[0] != "*.exr" {
		t.Errorf("expected filters from profile, got %v", got.Filters)
	}
	if len(got.Flavors) != 1 || got.Flavors[0] != "standard" {
		t.Errorf("expected flavors from profile, got %v", got.Flavors)
	}
}

func TestCLIFlagsOverrideProfile(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(profilePath, []byte("filters:\n  - \"*.mov\"\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, ProfileFile: profilePath, Filters: []string{"*.jpg"}}

	got, err := config.PostProcessConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Filters) != 1 || got.Filters[0] != "*.jpg" {
		t.Errorf("expected CLI filter to win, got %v", got.Filters)
	}
}
