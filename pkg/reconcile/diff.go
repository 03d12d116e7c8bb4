package reconcile

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// unifiedDiff produces a unified diff with zero context lines between
// the repository and system sides of a pair. A missing file on either
// side reads as empty input, not an error; identical sides (two
// missing files included) produce the empty string.
func unifiedDiff(fsys types.FS, pair types.PathPair) (string, error) {
	a, err := readOrEmpty(fsys, pair.Repo)
	if err != nil {
		return "", err
	}
	b, err := readOrEmpty(fsys, pair.System)
	if err != nil {
		return "", err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: pair.Repo,
		ToFile:   pair.System,
		Context:  0,
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "diffing %q against %q", pair.Repo, pair.System)
	}
	return text, nil
}

func readOrEmpty(fsys types.FS, path string) ([]byte, error) {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return nil, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %q", path)
	}
	return data, nil
}
