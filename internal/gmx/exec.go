package gmx

import (
	"context"
	"os/exec"
)

// System executes raw argument vectors on the local machine and returns
// their combined output. It is the production implementation behind the
// executor seams of the sched and queue packages.
type System struct{}

// Exec runs argv[0] in dir with the remaining elements as arguments. The
// combined standard output and standard error of the child is returned even
// when the run fails, so callers can surface partial diagnostics.
func (System) Exec(ctx context.Context, dir string, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", errEmptyArgv
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}
