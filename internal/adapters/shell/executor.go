// Package shell runs child commands inside the current process environment.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec. Children inherit the process
// environment as it is at call time, including injected search paths.
type Executor struct {
	stdin io.Reader
}

// NewExecutor creates an Executor whose children read from os.Stdin.
func NewExecutor() *Executor {
	return &Executor{stdin: os.Stdin}
}

// NewExecutorWithStdin creates an Executor whose children read from stdin.
func NewExecutorWithStdin(stdin io.Reader) *Executor {
	return &Executor{stdin: stdin}
}

// Execute runs argv and waits for it. argv[0] is resolved against the current PATH.
func (e *Executor) Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return domain.ErrNoCommandSpecified
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Env = os.Environ()
	cmd.Stdin = e.stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		runErr := zerr.Wrap(domain.ErrCommandFailed, err.Error())
		runErr = zerr.With(runErr, "command", Render(argv))
		return zerr.With(runErr, "exit_code", exitCode)
	}

	return nil
}

// Render quotes argv into a single shell-safe command line.
func Render(argv []string) string {
	return shellquote.Join(argv...)
}

// Split parses a shell-style command line into argv.
func Split(line string) ([]string, error) {
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoCommandSpecified, err.Error()), "command", line)
	}
	return argv, nil
}
