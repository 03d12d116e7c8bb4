package categories

import (
	"github.com/arthur-debert/dotsync/pkg/types"
)

// builtinOrder is the declaration order of the builtin table. It is
// the tie-break order for topological sorting, so keep it stable.
var builtinOrder = []Category{Bash, Brew, Git, Sh, VSCode, Zsh}

var builtinTable = map[Category]types.Descriptor{
	Bash: {
		Prerequisites: []string{"SH"},
		Locations: []types.Location{
			{
				Repo:    "bash/bash_profile",
				Linux:   "$HOME/.bash_profile",
				Darwin:  "$HOME/.bash_profile",
				Windows: "$HOME/.bash_profile",
			},
			{
				Repo:    "bash/bashrc",
				Linux:   "$HOME/.bashrc",
				Darwin:  "$HOME/.bashrc",
				Windows: "$HOME/.bashrc",
			},
		},
	},

	Brew: {
		// https://docs.brew.sh/Manpage#bundle-subcommand
		Locations: []types.Location{
			{
				Repo:    "brew/Brewfile",
				Linux:   "$HOME/.Brewfile",
				Darwin:  "$HOME/.Brewfile",
				Windows: "$HOME/.Brewfile",
			},
		},
		After: []types.Command{
			types.NewCommand("brew", "bundle", "upgrade", "--global"),
		},
	},

	Git: {
		Locations: []types.Location{
			{
				Repo:    "git/config",
				Linux:   "$HOME/.gitconfig",
				Darwin:  "$HOME/.gitconfig",
				Windows: "$HOME/.gitconfig",
			},
		},
	},

	Sh: {
		Locations: []types.Location{
			{
				Repo:    "sh/inputrc",
				Linux:   "$HOME/.inputrc",
				Darwin:  "$HOME/.inputrc",
				Windows: "$HOME/.inputrc",
			},
			{
				Repo:    "sh/profile",
				Linux:   "$HOME/.profile",
				Darwin:  "$HOME/.profile",
				Windows: "$HOME/.profile",
			},
		},
	},

	VSCode: {
		// Whole-directory location: everything under vscode/ in the
		// repository mirrors the editor's user directory.
		// https://code.visualstudio.com/docs/getstarted/settings#_settings-file-locations
		Locations: []types.Location{
			{
				Repo:    "vscode",
				Linux:   "$HOME/.config/Code",
				Darwin:  "$HOME/Library/Application Support/Code",
				Windows: "%APPDATA%/Code",
			},
		},
		After: []types.Command{
			types.NewCommand(
				"code",
				"--install-extension", "ms-python.python",
				"--install-extension", "rust-lang.rust",
				"--install-extension", "vscjava.vscode-java-pack",
				"--install-extension", "vscodevim.vim",
			),
		},
	},

	Zsh: {
		Prerequisites: []string{"SH"},
		Before: []types.Command{
			// Refreshes the grml zshrc in place; runs with the repo
			// root as working directory.
			types.NewCommand(
				"curl", "--silent", "--show-error",
				"https://raw.githubusercontent.com/grml/grml-etc-core/master/etc/zsh/zshrc",
				"--output", "zsh/zshrc",
			),
		},
		// https://wiki.archlinux.org/index.php/zsh#Startup/Shutdown_files
		Locations: []types.Location{
			{Repo: "zsh/zshenv", Linux: "$HOME/.zshenv", Darwin: "$HOME/.zshenv"},
			{Repo: "zsh/zshrc.pre", Linux: "$HOME/.zshrc.pre", Darwin: "$HOME/.zshrc.pre"},
			{Repo: "zsh/zshrc", Linux: "$HOME/.zshrc", Darwin: "$HOME/.zshrc"},
			{Repo: "zsh/zshrc.local", Linux: "$HOME/.zshrc.local", Darwin: "$HOME/.zshrc.local"},
		},
	},
}

// Builtin returns the registry over the builtin category table
func Builtin() (*Registry, error) {
	return New(builtinOrder, builtinTable)
}
