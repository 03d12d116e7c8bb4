package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		envSetup map[string]string
		validate func(t *testing.T, p *Paths)
	}{
		{
			name: "explicit root",
			root: "/tmp/dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/dotfiles", p.RepoRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:     "from DOTSYNC_ROOT env",
			envSetup: map[string]string{EnvRepoRoot: "/env/dotfiles"},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/env/dotfiles", p.RepoRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name: "cwd fallback",
			validate: func(t *testing.T, p *Paths) {
				assert.True(t, p.UsedFallback())
				assert.True(t, filepath.IsAbs(p.RepoRoot()))
			},
		},
		{
			name: "expand tilde in explicit path",
			root: "~/my-dotfiles",
			validate: func(t *testing.T, p *Paths) {
				home, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(home, "my-dotfiles"), p.RepoRoot())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvRepoRoot, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.root)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestStagingDirInsideRepo(t *testing.T) {
	p, err := New("/repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", StagingDirName), p.StagingDir())
}

func TestRepoConfigCandidates(t *testing.T) {
	p, err := New("/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/repo", "dotsync.toml"),
		filepath.Join("/repo", "dotsync.yaml"),
	}, p.RepoConfigCandidates())
}
