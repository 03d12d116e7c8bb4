// Package paths provides centralized path handling for dotsync: the
// repository root, the scratch directory used for atomic staging, and
// the XDG directories for config and state.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotsync/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the
	// repository location
	EnvRepoRoot = "DOTSYNC_ROOT"
)

// Default directories and files
const (
	// StagingDirName is the scratch subdirectory used exclusively for
	// temporary staging files during atomic replace. It lives inside
	// the repository root and is never left populated across a
	// successful run.
	StagingDirName = "tmp"

	// ConfigFileTOML and ConfigFileYAML are the recognized config
	// file names, tried in that order.
	ConfigFileTOML = "dotsync.toml"
	ConfigFileYAML = "dotsync.yaml"

	// AppDirName is the directory name for dotsync-specific files
	// under the XDG base directories
	AppDirName = "dotsync"
)

// Paths resolves the directories one dotsync run works against
type Paths struct {
	repoRoot     string
	usedFallback bool
}

// New resolves the repository root. An explicit root wins, then the
// DOTSYNC_ROOT environment variable, then the current directory as a
// fallback. A leading ~ is expanded against the home directory.
func New(root string) (*Paths, error) {
	usedFallback := false

	if root == "" {
		root = os.Getenv(EnvRepoRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		root = cwd
		usedFallback = true
	}

	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot expand ~ in repository root")
		}
		root = filepath.Join(home, strings.TrimPrefix(root[1:], "/"))
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve repository root %q", root)
	}

	return &Paths{repoRoot: abs, usedFallback: usedFallback}, nil
}

// RepoRoot returns the absolute repository root
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// UsedFallback reports whether the root came from the cwd fallback
// rather than an explicit flag or DOTSYNC_ROOT
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// StagingDir returns the scratch directory for atomic staging
func (p *Paths) StagingDir() string {
	return filepath.Join(p.repoRoot, StagingDirName)
}

// RepoConfigCandidates returns the config file paths probed at the
// repository root, in priority order
func (p *Paths) RepoConfigCandidates() []string {
	return []string{
		filepath.Join(p.repoRoot, ConfigFileTOML),
		filepath.Join(p.repoRoot, ConfigFileYAML),
	}
}

// UserConfigPath returns the XDG user-level config file path
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileTOML)
}
