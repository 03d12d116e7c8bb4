package reconcile

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/resolver"
	"github.com/arthur-debert/dotsync/pkg/types"
)

func memResolver(home string) *resolver.Resolver {
	return &resolver.Resolver{
		RepoRoot: "/repo",
		Platform: types.PlatformLinux,
		LookupEnv: func(name string) (string, bool) {
			if name == "HOME" {
				return home, true
			}
			return "", false
		},
	}
}

func TestExpandPairsSingleFile(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/git", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/git/config", []byte("[user]\n"), 0o644))

	loc := types.Location{Repo: "git/config", Linux: "$HOME/.gitconfig"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)

	assert.Equal(t, []types.PathPair{
		{Repo: "/repo/git/config", System: "/home/amy/.gitconfig"},
	}, pairs)
}

func TestExpandPairsMissingRepoFileStillPairs(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	loc := types.Location{Repo: "zsh/zshrc.local", Linux: "$HOME/.zshrc.local"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestExpandPairsAbsentTemplate(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	loc := types.Location{Repo: "zsh/zshrc", Darwin: "$HOME/.zshrc"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestExpandPairsDirectory(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/vscode/User", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/vscode/a", []byte("a"), 0o644))
	require.NoError(t, fsys.WriteFile("/repo/vscode/User/settings.json", []byte("{}"), 0o644))

	loc := types.Location{Repo: "vscode", Linux: "$HOME/.config/Code"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)

	assert.Equal(t, []types.PathPair{
		{Repo: "/repo/vscode/User/settings.json", System: "/home/amy/.config/Code/User/settings.json"},
		{Repo: "/repo/vscode/a", System: "/home/amy/.config/Code/a"},
	}, pairs)
}

func TestExpandPairsEmptyDirectory(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/vscode/User/snippets", 0o755))

	loc := types.Location{Repo: "vscode", Linux: "$HOME/.config/Code"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestExpandPairsPreservesRelativeSubpath(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/repo/vscode/b", 0o755))
	require.NoError(t, fsys.WriteFile("/repo/vscode/a", []byte("a"), 0o644))
	require.NoError(t, fsys.WriteFile("/repo/vscode/b/c", []byte("c"), 0o644))

	loc := types.Location{Repo: "vscode", Linux: "$HOME/.config/Code"}
	pairs, err := ExpandPairs(fsys, memResolver("/home/amy"), loc)
	require.NoError(t, err)

	require.Len(t, pairs, 2)
	for _, pair := range pairs {
		rel, err := filepath.Rel("/repo/vscode", pair.Repo)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/amy/.config/Code", rel), pair.System)
	}
}
