package ldconsole

import (
	"context"
	"os/exec"
)

// SetExecCommandContext replaces the process constructor and returns a restore function.
func SetExecCommandContext(fn func(ctx context.Context, name string, args ...string) *exec.Cmd) func() {
	prev := execCommandContext
	execCommandContext = fn
	return func() { execCommandContext = prev }
}
