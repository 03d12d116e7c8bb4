package reconcile

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/types"
)

func additions(diff string) []string {
	var out []string
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			out = append(out, line)
		}
	}
	return out
}

func TestUnifiedDiffIdenticalFiles(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/sh", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/sh/profile", []byte("export EDITOR=vi\n"), 0o644))
	require.NoError(t, fsys.MkdirAll("/home/amy", 0o755))
	require.NoError(t, fsys.WriteFile("/home/amy/.profile", []byte("export EDITOR=vi\n"), 0o644))

	text, err := unifiedDiff(fsys, types.PathPair{Repo: "/repo/sh/profile", System: "/home/amy/.profile"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestUnifiedDiffBothMissing(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	text, err := unifiedDiff(fsys, types.PathPair{Repo: "/repo/none", System: "/home/none"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestUnifiedDiffSingleAddedLine(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/sh", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/sh/profile", []byte("line one\n"), 0o644))
	require.NoError(t, fsys.MkdirAll("/home/amy", 0o755))
	require.NoError(t, fsys.WriteFile("/home/amy/.profile", []byte("line one\nline two\n"), 0o644))

	text, err := unifiedDiff(fsys, types.PathPair{Repo: "/repo/sh/profile", System: "/home/amy/.profile"})
	require.NoError(t, err)

	added := additions(text)
	require.Len(t, added, 1)
	assert.Equal(t, "+line two", added[0])

	// Zero context: the unchanged line never shows up
	assert.NotContains(t, text, " line one")
}

func TestUnifiedDiffMissingSideReadsAsEmpty(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/git", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/git/config", []byte("[user]\nname = amy\n"), 0o644))

	text, err := unifiedDiff(fsys, types.PathPair{Repo: "/repo/git/config", System: "/home/amy/.gitconfig"})
	require.NoError(t, err)

	// Everything in the repo file reads as removed relative to the
	// missing system file
	assert.Contains(t, text, "-[user]")
	assert.Contains(t, text, "-name = amy")
	assert.Empty(t, additions(text))
}

func TestUnifiedDiffNamesBothSides(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/git", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/git/config", []byte("a\n"), 0o644))

	text, err := unifiedDiff(fsys, types.PathPair{Repo: "/repo/git/config", System: "/home/amy/.gitconfig"})
	require.NoError(t, err)
	assert.Contains(t, text, "--- /repo/git/config")
	assert.Contains(t, text, "+++ /home/amy/.gitconfig")
}
