// Package resolver turns a Location's declared mapping into concrete
// absolute paths: the repository side under the repo root, and the
// system side from the platform's template with environment variables
// expanded. Pure path computation; the filesystem is never touched.
package resolver

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// Resolver resolves Locations for one repository root and platform.
// Environment variables are read at resolution time, never cached.
type Resolver struct {
	// RepoRoot is the absolute repository root
	RepoRoot string

	// Platform selects which path template applies
	Platform types.Platform

	// Strict makes an undefined environment variable a resolution
	// error instead of expanding to the empty string the way a host
	// shell would.
	Strict bool

	// LookupEnv overrides the process environment, for tests.
	// Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// New returns a resolver for the current platform and process
// environment
func New(repoRoot string, strict bool) *Resolver {
	return &Resolver{
		RepoRoot: repoRoot,
		Platform: types.CurrentPlatform(),
		Strict:   strict,
	}
}

// RepoSide returns the absolute repository-side path. Always succeeds.
func (r *Resolver) RepoSide(loc types.Location) string {
	return filepath.Join(r.RepoRoot, filepath.FromSlash(loc.Repo))
}

// SystemSide returns the absolute system-side path for the resolver's
// platform. The second return is false when the location declares no
// template for the platform. In strict mode an undefined environment
// variable fails with ENV_UNDEFINED; otherwise it expands to "".
func (r *Resolver) SystemSide(loc types.Location) (string, bool, error) {
	tmpl := loc.Template(r.Platform)
	if tmpl == "" {
		return "", false, nil
	}

	expanded, err := r.expand(tmpl)
	if err != nil {
		return "", false, err
	}
	return filepath.Clean(expanded), true, nil
}

// percentVar matches %VAR% references, the cmd.exe expansion form
var percentVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

func (r *Resolver) expand(s string) (string, error) {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var undefined []string
	mapper := func(name string) string {
		val, ok := lookup(name)
		if !ok {
			undefined = append(undefined, name)
			return ""
		}
		return val
	}

	out := os.Expand(s, mapper)
	if r.Platform == types.PlatformWindows {
		out = percentVar.ReplaceAllStringFunc(out, func(match string) string {
			return mapper(match[1 : len(match)-1])
		})
	}

	if r.Strict && len(undefined) > 0 {
		return "", errors.Newf(errors.ErrEnvUndefined,
			"undefined environment variable(s) %s in %q",
			strings.Join(undefined, ", "), s)
	}
	return out, nil
}
