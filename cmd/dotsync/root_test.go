package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

// execute runs the CLI with the given args against a fresh command tree
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// testRepo points DOTSYNC_ROOT at a fresh repository and HOME at a
// fresh fake home
func testRepo(t *testing.T) (repo, home string) {
	t.Helper()
	repo = t.TempDir()
	home = t.TempDir()
	t.Setenv("DOTSYNC_ROOT", repo)
	t.Setenv("HOME", home)
	return repo, home
}

func TestRootNoCommandFails(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, out, "dotsync")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotsync version")
	assert.Contains(t, out, "commit:")
}

func TestCompletionBash(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestListShowsCategories(t *testing.T) {
	testRepo(t)

	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "GIT")
	assert.Contains(t, out, "ZSH")
	assert.Contains(t, out, "requires: SH")
	assert.Contains(t, out, "git/config")
}

func TestGenConfigPrints(t *testing.T) {
	testRepo(t)

	out, err := execute(t, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "# link_mode")
	assert.Contains(t, out, "# staging_dir")
}

func TestGenConfigWrite(t *testing.T) {
	repo, _ := testRepo(t)

	out, err := execute(t, "gen-config", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	content, err := os.ReadFile(filepath.Join(repo, "dotsync.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# link_mode")

	// A second write refuses to clobber the existing file
	_, err = execute(t, "gen-config", "--write")
	assert.Error(t, err)
}

func TestInstallUnknownCategory(t *testing.T) {
	testRepo(t)

	_, err := execute(t, "install", "emacs")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCategory))

	// The message main prints for this failure names the category
	assert.Contains(t, formatError(err), `unknown category "emacs"`)
}

func TestFormatError(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownCategory, "unknown category %q", "emacs")
	assert.Equal(t, `Error: [UNKNOWN_CATEGORY] unknown category "emacs"`, formatError(err))
}

func TestFormatErrorSurfacesHookOutput(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("exit status 1"), errors.ErrHookExecute, `hook "brew" failed`).
		WithDetail("output", "Error: No Brewfile found\n")

	msg := formatError(err)
	assert.Contains(t, msg, `hook "brew" failed`)
	assert.Contains(t, msg, "No Brewfile found")
}

func TestFormatErrorSkipsEmptyHookOutput(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("exit status 1"), errors.ErrHookExecute, `hook "curl" failed`).
		WithDetail("output", "  \n")

	assert.Equal(t, `Error: [HOOK_EXECUTE] hook "curl" failed: exit status 1`, formatError(err))
}

func TestInstallDryRunTouchesNothing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake HOME via env only works on POSIX")
	}
	repo, home := testRepo(t)

	require.NoError(t, os.MkdirAll(filepath.Join(repo, "git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "git", "config"), []byte("[user]\n"), 0o644))

	out, err := execute(t, "--dry-run", "install", "git")
	require.NoError(t, err)

	assert.Contains(t, out, "GIT")
	assert.Contains(t, out, "symlink(src=")
	assert.Contains(t, out, "DRY RUN MODE")

	_, statErr := os.Lstat(filepath.Join(home, ".gitconfig"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiffDryBehaviour(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake HOME via env only works on POSIX")
	}
	repo, home := testRepo(t)

	require.NoError(t, os.MkdirAll(filepath.Join(repo, "git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "git", "config"), []byte("[user]\nname = amy\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte("[user]\n"), 0o644))

	out, err := execute(t, "diff", "git")
	require.NoError(t, err)
	assert.Contains(t, out, "-name = amy")
}

func TestTopicsCommand(t *testing.T) {
	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "configuration")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "categories")
	assert.Contains(t, out, "dry-run")
	assert.Contains(t, out, "configuration")
}

func TestHelpTopicContent(t *testing.T) {
	out, err := execute(t, "help", "dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "dry-run")
}
