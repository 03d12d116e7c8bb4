package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsync/pkg/categories"
	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/display"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/reconcile"
	"github.com/arthur-debert/dotsync/pkg/resolver"
	"github.com/arthur-debert/dotsync/pkg/style"
)

// initPaths resolves the repository root and warns when the cwd
// fallback kicked in
func initPaths(cmd *cobra.Command) (*paths.Paths, error) {
	p, err := paths.New(rootFlag(cmd))
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.RepoRoot())
	}
	return p, nil
}

// setup wires the full stack for one run: paths, configuration,
// registry, resolver and engine
func setup(cmd *cobra.Command) (*reconcile.Engine, config.Config, error) {
	p, err := initPaths(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf(MsgErrLoadConfig, err)
	}

	registry, err := categories.Builtin()
	if err != nil {
		return nil, config.Config{}, err
	}

	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

	log.Info().
		Str("repo_root", p.RepoRoot()).
		Str("link_mode", cfg.LinkMode).
		Bool("dry_run", dryRun).
		Msg("Run configured")

	engine := reconcile.New(reconcile.Options{
		Registry:   registry,
		Resolver:   resolver.New(p.RepoRoot(), cfg.StrictEnv),
		StagingDir: filepath.Join(p.RepoRoot(), cfg.StagingDir),
		DryRun:     dryRun,
		Printer:    display.New(cmd.OutOrStdout(), style.ColorEnabled()),
	})
	return engine, cfg, nil
}

// categoryNamesCompletion completes category arguments, skipping names
// already given
func categoryNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	registry, err := categories.Builtin()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, cat := range registry.Categories() {
		name := strings.ToLower(cat.String())
		taken := false
		for _, arg := range args {
			if strings.EqualFold(arg, name) {
				taken = true
				break
			}
		}
		if !taken {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func dryRunNotice(cmd *cobra.Command) {
	if dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
	}
}

func newInstallCmd() *cobra.Command {
	var copyMode bool
	cmd := &cobra.Command{
		Use:               "install [categories...]",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		GroupID:           "core",
		ValidArgsFunction: categoryNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			symlink := cfg.LinkMode == config.ModeSymlink && !copyMode
			if err := engine.Install(cmd.Context(), args, symlink); err != nil {
				return err
			}
			dryRunNotice(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyMode, "copy", false, MsgFlagCopy)
	return cmd
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "backup [categories...]",
		Short:             MsgBackupShort,
		Long:              MsgBackupLong,
		GroupID:           "core",
		ValidArgsFunction: categoryNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := engine.Backup(cmd.Context(), args); err != nil {
				return err
			}
			dryRunNotice(cmd)
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	var symlinkMode bool
	cmd := &cobra.Command{
		Use:               "restore [categories...]",
		Short:             MsgRestoreShort,
		Long:              MsgRestoreLong,
		GroupID:           "core",
		ValidArgsFunction: categoryNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := engine.Restore(cmd.Context(), args, symlinkMode); err != nil {
				return err
			}
			dryRunNotice(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&symlinkMode, "symlink", false, MsgFlagSymlink)
	return cmd
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "diff [categories...]",
		Short:             MsgDiffShort,
		Long:              MsgDiffLong,
		GroupID:           "core",
		ValidArgsFunction: categoryNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := setup(cmd)
			if err != nil {
				return err
			}
			return engine.Diff(cmd.Context(), args)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(p)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			registry, err := categories.Builtin()
			if err != nil {
				return err
			}

			res := resolver.New(p.RepoRoot(), cfg.StrictEnv)
			out := cmd.OutOrStdout()
			color := style.ColorEnabled()

			for _, cat := range registry.Categories() {
				desc := registry.Descriptor(cat)

				name := cat.String()
				if color {
					name = style.HeaderStyle.Render(name)
				}
				suffix := ""
				if desc.Disabled(res.Platform) {
					suffix = MsgCategoryDisabled
				}
				fmt.Fprintf(out, "%s%s\n", name, suffix)

				if len(desc.Prerequisites) > 0 {
					fmt.Fprintf(out, MsgPrereqsFormat, strings.Join(desc.Prerequisites, ", "))
				}
				for _, loc := range desc.Locations {
					system, declared, err := res.SystemSide(loc)
					if err != nil {
						return err
					}
					if !declared {
						continue
					}
					fmt.Fprintf(out, MsgLocationFormat, loc.Repo, system)
				}
			}
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}
			target := filepath.Join(p.RepoRoot(), paths.ConfigFileTOML)
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf(MsgErrConfigExists, target)
			}
			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
