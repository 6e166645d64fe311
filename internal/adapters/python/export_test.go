package python

import (
	"context"
	"os/exec"
)

// SetExecCommandContext replaces the command constructor and returns a restore func.
func SetExecCommandContext(fn func(ctx context.Context, name string, args ...string) *exec.Cmd) func() {
	previous := execCommandContext
	execCommandContext = fn
	return func() {
		execCommandContext = previous
	}
}
