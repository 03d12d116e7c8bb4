// Package reconcile drives the four operations that keep the
// repository and the system in sync: install, backup, restore and
// diff. Categories are processed one at a time in topological order,
// locations in declaration order; the first failure aborts the run
// and already-applied categories stay applied.
package reconcile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsync/pkg/categories"
	"github.com/arthur-debert/dotsync/pkg/display"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/hooks"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/resolver"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// Direction selects which side of a pair is the source
type Direction int

const (
	// RepoToSystem copies or links repository files onto the system
	// (install, restore)
	RepoToSystem Direction = iota

	// SystemToRepo copies system files back into the repository
	// (backup)
	SystemToRepo
)

// Options configures an Engine
type Options struct {
	Registry *categories.Registry
	Resolver *resolver.Resolver

	// StagingDir is the absolute scratch directory for atomic
	// staging. Required.
	StagingDir string

	// DryRun resolves, orders and prints everything but mutates
	// nothing and invokes no hooks
	DryRun bool

	// FS defaults to the OS filesystem
	FS types.FS

	// Hooks defaults to process-backed execution
	Hooks hooks.Runner

	// Printer defaults to plain output on stdout
	Printer *display.Printer

	// Logger overrides the default "reconcile" component logger
	Logger *zerolog.Logger
}

// Engine runs reconciliation operations over the registry's categories
type Engine struct {
	registry   *categories.Registry
	resolver   *resolver.Resolver
	stagingDir string
	dryRun     bool
	fs         types.FS
	hooks      hooks.Runner
	printer    *display.Printer
	logger     zerolog.Logger
}

// New creates an Engine, filling in defaults for the injectable
// collaborators
func New(opts Options) *Engine {
	logger := logging.GetLogger("reconcile")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	runner := opts.Hooks
	if runner == nil {
		runner = hooks.NewExecRunner()
	}

	printer := opts.Printer
	if printer == nil {
		printer = display.New(os.Stdout, false)
	}

	return &Engine{
		registry:   opts.Registry,
		resolver:   opts.Resolver,
		stagingDir: opts.StagingDir,
		dryRun:     opts.DryRun,
		fs:         fsys,
		hooks:      runner,
		printer:    printer,
		logger:     logger,
	}
}

// Install materializes repository files onto the system, as symlinks
// or copies, running each category's hooks around its locations
func (e *Engine) Install(ctx context.Context, names []string, symlink bool) error {
	return e.sync(ctx, names, RepoToSystem, symlink)
}

// Restore is Install under another name: repository to system, with
// the copy/symlink choice up to the caller
func (e *Engine) Restore(ctx context.Context, names []string, symlink bool) error {
	return e.sync(ctx, names, RepoToSystem, symlink)
}

// Backup copies system files back into the repository
func (e *Engine) Backup(ctx context.Context, names []string) error {
	return e.sync(ctx, names, SystemToRepo, false)
}

func (e *Engine) sync(ctx context.Context, names []string, direction Direction, symlink bool) error {
	order, err := e.registry.TopologicalOrder(names)
	if err != nil {
		return err
	}

	verb := "cp"
	if symlink {
		verb = "symlink"
	}

	for _, cat := range order {
		desc := e.registry.Descriptor(cat)
		if desc.Disabled(e.resolver.Platform) {
			e.logger.Debug().Stringer("category", cat).Msg("Category disabled on this platform")
			continue
		}

		e.printer.Category(cat.String())
		e.logger.Info().
			Stringer("category", cat).
			Bool("dryRun", e.dryRun).
			Msg("Processing category")

		if err := e.runHooks(ctx, desc.Before); err != nil {
			return err
		}

		for _, loc := range desc.Locations {
			pairs, err := ExpandPairs(e.fs, e.resolver, loc)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				src, dst := pair.Repo, pair.System
				if direction == SystemToRepo {
					src, dst = pair.System, pair.Repo
				}

				e.printer.Pair(verb, src, dst)
				if e.dryRun {
					continue
				}
				if err := e.materialize(src, dst, symlink); err != nil {
					return err
				}
			}
		}

		if err := e.runHooks(ctx, desc.After); err != nil {
			return err
		}
	}
	return nil
}

// Diff reports line-level differences between both sides of every
// pair, zero context lines, mutating nothing. Categories and pairs
// without differences stay silent; diff runs no hooks.
func (e *Engine) Diff(ctx context.Context, names []string) error {
	order, err := e.registry.TopologicalOrder(names)
	if err != nil {
		return err
	}

	for _, cat := range order {
		desc := e.registry.Descriptor(cat)
		if desc.Disabled(e.resolver.Platform) {
			continue
		}

		headerPrinted := false
		for _, loc := range desc.Locations {
			pairs, err := ExpandPairs(e.fs, e.resolver, loc)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				text, err := unifiedDiff(e.fs, pair)
				if err != nil {
					return err
				}
				if text == "" {
					continue
				}
				if !headerPrinted {
					e.printer.Category(cat.String())
					headerPrinted = true
				}
				e.printer.Diff(text)
			}
		}
	}
	return nil
}

func (e *Engine) runHooks(ctx context.Context, cmds []types.Command) error {
	for _, cmd := range cmds {
		e.printer.Run(cmd.Args)
		if e.dryRun {
			continue
		}
		out, err := e.hooks.Run(ctx, cmd, e.resolver.RepoRoot)
		if err != nil {
			return err
		}
		e.printer.HookOutput(out)
	}
	return nil
}

// materialize atomically replaces dst with a symlink to src or a copy
// of src: the new entry is staged in a fresh temp dir under the
// scratch directory and renamed into place, so a concurrent reader
// never observes a half-written destination.
func (e *Engine) materialize(src, dst string, symlink bool) error {
	if e.isSameFile(src, dst) {
		e.printer.SameFile(dst)
		return nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %q", dst)
	}
	if err := e.fs.MkdirAll(e.stagingDir, 0o700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create staging dir %q", e.stagingDir)
	}

	tmpDir, err := e.fs.TempDir(e.stagingDir, "stage-")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create staging area in %q", e.stagingDir)
	}
	defer func() { _ = e.fs.RemoveAll(tmpDir) }()

	if symlink {
		staged := filepath.Join(tmpDir, "symlink")
		if err := e.fs.Symlink(src, staged); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create symlink to %q", src)
		}
		if err := e.fs.Rename(staged, dst); err != nil {
			return errors.Wrapf(err, errors.ErrRename, "cannot replace %q", dst)
		}
		return nil
	}

	data, err := e.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %q", src)
	}

	perm := fs.FileMode(0o644)
	if info, err := e.fs.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	staged := filepath.Join(tmpDir, "cp")
	if err := e.fs.WriteFile(staged, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot stage copy of %q", src)
	}
	if err := e.fs.Rename(staged, dst); err != nil {
		return errors.Wrapf(err, errors.ErrRename, "cannot replace %q", dst)
	}
	return nil
}

// isSameFile reports whether src and dst already resolve to the
// identical file, following symlinks on both sides
func (e *Engine) isSameFile(src, dst string) bool {
	srcInfo, err := e.fs.Stat(src)
	if err != nil {
		return false
	}
	dstInfo, err := e.fs.Stat(dst)
	if err != nil {
		return false
	}
	return e.fs.SameFile(srcInfo, dstInfo)
}
