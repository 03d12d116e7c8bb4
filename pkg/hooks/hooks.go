// Package hooks runs the external commands a category declares around
// its locations. Commands run synchronously with merged stdout/stderr
// capture; an unresolvable executable or a non-zero exit is fatal for
// the run, never a silent no-op.
package hooks

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
)

// Runner executes a hook command and returns its combined output
type Runner interface {
	Run(ctx context.Context, cmd types.Command, workDir string) (string, error)
}

// ExecRunner is the Runner backed by real process execution
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a process-backed hook runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("hooks"),
	}
}

// Run resolves the command's executable on the PATH and invokes it
// with workDir as working directory, capturing stdout and stderr
// together. The captured output is returned even on failure so the
// caller can surface it.
func (r *ExecRunner) Run(ctx context.Context, cmd types.Command, workDir string) (string, error) {
	name := cmd.Args[0]

	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrHookResolve,
			"cannot resolve executable %q", name)
	}

	r.logger.Info().
		Str("executable", path).
		Strs("args", cmd.Args[1:]).
		Str("workingDir", workDir).
		Msg("Executing hook")

	c := exec.CommandContext(ctx, path, cmd.Args[1:]...)
	c.Dir = workDir

	out, err := c.CombinedOutput()
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("executable", path).
			Str("output", string(out)).
			Msg("Hook execution failed")

		return string(out), errors.Wrapf(err, errors.ErrHookExecute,
			"hook %q failed", name).
			WithDetail("output", string(out))
	}

	r.logger.Debug().
		Str("executable", path).
		Str("output", string(out)).
		Msg("Hook executed successfully")

	return string(out), nil
}
