// Package config loads dotsync's runtime options. Built-in defaults
// are embedded; a dotsync.toml or dotsync.yaml at the repository root,
// a user config under the XDG config directory, and DOTSYNC_*
// environment variables override them, in that order.
package config

import (
	"os"
	"path/filepath"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/paths"
)

// Link modes
const (
	ModeSymlink = "symlink"
	ModeCopy    = "copy"
)

// EnvPrefix namespaces environment variable overrides
const EnvPrefix = "DOTSYNC_"

// Config holds the runtime options of one dotsync invocation
type Config struct {
	// LinkMode selects how install/restore materialize files:
	// ModeSymlink or ModeCopy
	LinkMode string `koanf:"link_mode" toml:"link_mode"`

	// StrictEnv makes an undefined environment variable in a location
	// template a resolution error instead of expanding to ""
	StrictEnv bool `koanf:"strict_env" toml:"strict_env"`

	// StagingDir is the scratch directory for atomic staging,
	// relative to the repository root
	StagingDir string `koanf:"staging_dir" toml:"staging_dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LinkMode:   ModeSymlink,
		StrictEnv:  false,
		StagingDir: paths.StagingDirName,
	}
}

// Load merges defaults, the repository config, the user config and
// environment overrides into the effective configuration.
func Load(p *paths.Paths) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	userConfig := paths.UserConfigPath()
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), ktoml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load user config from %s", userConfig)
		}
	}

	for _, candidate := range p.RepoConfigCandidates() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		parser := parserFor(candidate)
		if err := k.Load(file.Provider(candidate), parser); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load repo config from %s", candidate)
		}
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LinkMode {
	case ModeSymlink, ModeCopy:
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid link_mode %q (want %q or %q)",
			c.LinkMode, ModeSymlink, ModeCopy)
	}
	if c.StagingDir == "" || filepath.IsAbs(c.StagingDir) {
		return errors.Newf(errors.ErrConfigParse,
			"staging_dir must be a non-empty path relative to the repository root, got %q", c.StagingDir)
	}
	return nil
}

// envToKey maps DOTSYNC_LINK_MODE to link_mode and so on. Unknown
// keys, DOTSYNC_ROOT among them, simply don't match any config field.
func envToKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return ktoml.Parser()
	}
}
