package reconcile

import (
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/resolver"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// ExpandPairs computes the concrete (repo, system) path pairs for one
// location. A location with no system-side path on this platform
// expands to nothing. A repository side that stats as a directory is
// walked recursively and every regular file underneath yields one
// pair, the relative subpath appended to both sides; anything else,
// including a repository path that does not exist yet, yields exactly
// one pair.
func ExpandPairs(fsys types.FS, res *resolver.Resolver, loc types.Location) ([]types.PathPair, error) {
	repoPath := res.RepoSide(loc)
	sysPath, ok, err := res.SystemSide(loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	info, err := fsys.Stat(repoPath)
	if err != nil || !info.IsDir() {
		return []types.PathPair{{Repo: repoPath, System: sysPath}}, nil
	}

	var pairs []types.PathPair
	if err := walkFiles(fsys, repoPath, "", func(rel string) {
		pairs = append(pairs, types.PathPair{
			Repo:   filepath.Join(repoPath, rel),
			System: filepath.Join(sysPath, rel),
		})
	}); err != nil {
		return nil, err
	}
	return pairs, nil
}

// walkFiles visits every regular file under root depth-first, in the
// lexical order ReadDir guarantees, calling fn with the path relative
// to root. Symlinks and other irregular entries are skipped.
func walkFiles(fsys types.FS, root, rel string, fn func(rel string)) error {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %q", filepath.Join(root, rel))
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		switch {
		case entry.IsDir():
			if err := walkFiles(fsys, root, childRel, fn); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			fn(childRel)
		}
	}
	return nil
}
