package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaths(t *testing.T, root string) *paths.Paths {
	t.Helper()
	p, err := paths.New(root)
	require.NoError(t, err)
	return p
}

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DOTSYNC_LINK_MODE", "DOTSYNC_STRICT_ENV", "DOTSYNC_STAGING_DIR"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnvOverrides(t)
	cfg, err := Load(newPaths(t, t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, ModeSymlink, cfg.LinkMode)
	assert.False(t, cfg.StrictEnv)
	assert.Equal(t, "tmp", cfg.StagingDir)
}

func TestLoadRepoTOMLOverride(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.toml"),
		[]byte("link_mode = \"copy\"\nstrict_env = true\n"),
		0644,
	))

	cfg, err := Load(newPaths(t, root))
	require.NoError(t, err)
	assert.Equal(t, ModeCopy, cfg.LinkMode)
	assert.True(t, cfg.StrictEnv)
	// Unset keys keep their defaults
	assert.Equal(t, "tmp", cfg.StagingDir)
}

func TestLoadRepoYAMLOverride(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.yaml"),
		[]byte("staging_dir: .staging\n"),
		0644,
	))

	cfg, err := Load(newPaths(t, root))
	require.NoError(t, err)
	assert.Equal(t, ".staging", cfg.StagingDir)
}

func TestLoadTOMLWinsOverYAML(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.toml"), []byte("link_mode = \"copy\"\n"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.yaml"), []byte("link_mode: symlink\n"), 0644))

	cfg, err := Load(newPaths(t, root))
	require.NoError(t, err)
	assert.Equal(t, ModeCopy, cfg.LinkMode)
}

func TestLoadEnvOverride(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("DOTSYNC_LINK_MODE", "copy")

	cfg, err := Load(newPaths(t, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, ModeCopy, cfg.LinkMode)
}

func TestLoadRejectsInvalidLinkMode(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.toml"), []byte("link_mode = \"hardlink\"\n"), 0644))

	_, err := Load(newPaths(t, root))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsAbsoluteStagingDir(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "dotsync.toml"), []byte("staging_dir = \"/tmp/elsewhere\"\n"), 0644))

	_, err := Load(newPaths(t, root))
	require.Error(t, err)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# link_mode = ")
	assert.Contains(t, content, "# staging_dir = ")

	// Nothing in the generated file is an active assignment
	for _, line := range splitNonEmptyLines(content) {
		assert.True(t, line[0] == '#', "line should be commented: %q", line)
	}
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range splitLines(s) {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
