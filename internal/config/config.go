// Package config parses command-line flags and an optional YAML
// detection-profile file into the options the scanner needs.
package config

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"gopkg.in/yaml.v3"

	"github.com/joe/seqscan/pkg/seqerr"
	"github.com/joe/seqscan/pkg/sequence"
)

// Config holds the parsed CLI flags for cmd/seqscan, grounded in the
// teacher's Config (internal/config/config.go): struct-tag-driven flags
// via go-arg, with a Description()/Version() pair for its --help output.
type Config struct {
	Dir         string   `arg:"positional" help:"directory to scan"`
	Recursive   bool     `arg:"-r,--recursive" help:"recurse into subdirectories (Browse semantics)"`
	Filters     []string `arg:"--filter" help:"glob filters; a file passes if it matches any filter, or none are given"`
	ShowDotfile bool     `arg:"--show-dotfiles" help:"include dotfiles, normally hidden"`
	Negative    bool     `arg:"--negative" help:"allow a leading sign on frame numbers during detection"`
	Verbose     bool     `arg:"-v,--verbose" help:"enable debug logging"`
	ProfileFile string   `arg:"--profile" help:"path to a YAML detection-profile file; flags override its values"`

	Flavors []string `arg:"--flavor" help:"accepted pattern flavors: standard, cstyle, frame, frameneg (default: all)"`
}

// Description returns the program description for go-arg's --help output.
func (Config) Description() string {
	return "Detect numbered file sequences in a directory"
}

// Version returns the version string for go-arg's --version output.
func (Config) Version() string {
	return "seqscan 1.0.0"
}

// Profile is the YAML-file shape for a saved detection profile: the
// subset of Config a show or pipeline step wants to pin down once and
// reuse, grounded in the YAML config layer of blueman82-conductor's
// internal/config.Config (an unexported intermediate struct merged onto
// defaults field-by-field, zero-value meaning "not set").
type Profile struct {
	Recursive   *bool    `yaml:"recursive"`
	Filters     []string `yaml:"filters"`
	ShowDotfile *bool    `yaml:"show_dotfiles"`
	Negative    *bool    `yaml:"negative"`
	Flavors     []string `yaml:"flavors"`
}

// ParseFlags parses command-line flags, then merges in a YAML profile
// file when --profile was given. Flags win over the profile for any
// field both set, matching the teacher's "flags are the source of
// truth" stance in ParseFlags/PostProcessConfig.
func ParseFlags() (*Config, error) {
	cfg := &Config{}
	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig validates cfg and merges in its YAML profile, if any.
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.ProfileFile != "" {
		if err := mergeProfile(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeProfile(cfg *Config) error {
	data, err := os.ReadFile(cfg.ProfileFile)
	if err != nil {
		return fmt.Errorf("reading profile %s: %w", cfg.ProfileFile, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parsing profile %s: %w", cfg.ProfileFile, err)
	}

	if !cfg.Recursive && profile.Recursive != nil {
		cfg.Recursive = *profile.Recursive
	}
	if len(cfg.Filters) == 0 && len(profile.Filters) > 0 {
		cfg.Filters = profile.Filters
	}
	if !cfg.ShowDotfile && profile.ShowDotfile != nil {
		cfg.ShowDotfile = *profile.ShowDotfile
	}
	if !cfg.Negative && profile.Negative != nil {
		cfg.Negative = *profile.Negative
	}
	if len(cfg.Flavors) == 0 && len(profile.Flavors) > 0 {
		cfg.Flavors = profile.Flavors
	}

	return nil
}

// Validate checks cfg for consistency, mirroring the teacher's
// Config.ValidatePaths: a required positional directory must exist.
func (cfg *Config) Validate() error {
	if cfg.Dir == "" {
		return seqerr.DetectionConfigInvalid("a directory to scan is required")
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return seqerr.NotFound(cfg.Dir)
	}
	if !info.IsDir() {
		return seqerr.NotADirectory(cfg.Dir)
	}

	return nil
}

// Options converts the parsed flags into the sequence.Options bitmask
// that governs decomposition and grouping (DotFile visibility, sign
// handling).
func (cfg *Config) Options() sequence.Options {
	var opts sequence.Options
	if cfg.ShowDotfile {
		opts |= sequence.DotFile
	}
	if cfg.Negative {
		opts |= sequence.Negative
	}

	return opts
}

// AcceptedFlavors converts the parsed --flavor names into a Flavor
// bitmask for pattern-string recognition, defaulting to every flavor
// this package supports when none were named.
func (cfg *Config) AcceptedFlavors() (sequence.Flavor, error) {
	if len(cfg.Flavors) == 0 {
		return sequence.FlavorAll, nil
	}

	var accept sequence.Flavor
	for _, name := range cfg.Flavors {
		flavor, err := parseFlavorName(name)
		if err != nil {
			return 0, err
		}

		accept |= flavor
	}

	return accept, nil
}

func parseFlavorName(name string) (sequence.Flavor, error) {
	switch name {
	case "standard":
		return sequence.FlavorStandard, nil
	case "cstyle":
		return sequence.FlavorCStyle, nil
	case "frame":
		return sequence.FlavorFrame, nil
	case "frameneg":
		return sequence.FlavorFrameNeg, nil
	default:
		return 0, fmt.Errorf("unknown pattern flavor %q (valid: standard, cstyle, frame, frameneg)", name)
	}
}
