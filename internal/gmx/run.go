package gmx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes commands synchronously on the local machine, capturing
// standard output and standard error and echoing both once the process
// finishes. The zero value runs in the current directory and echoes to the
// process streams.
type Runner struct {
	Dir    string    // working directory for the child, empty means inherit
	Stdin  string    // piped to the child's standard input when non-empty
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Run executes the command's argument vector. See ExecArgv for the
// execution semantics.
func (r *Runner) Run(ctx context.Context, c Command) error {
	return r.ExecArgv(ctx, c.Argv())
}

// ExecArgv runs argv[0] with the remaining elements as arguments. Output is
// buffered while the child runs and echoed afterwards, so interleaved
// toolkit chatter arrives in two clean blocks.
//
// A non-zero exit status is not an error: the toolkit reports its problems
// on standard error, which the echo already surfaces. Only failures to
// start the process (missing binary, bad working directory) and context
// cancellation are returned.
func (r *Runner) ExecArgv(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errEmptyArgv
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	if r.Stdin != "" {
		cmd.Stdin = strings.NewReader(r.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	outw := r.Stdout
	if outw == nil {
		outw = os.Stdout
	}
	errw := r.Stderr
	if errw == nil {
		errw = os.Stderr
	}
	if stdout.Len() > 0 {
		fmt.Fprint(outw, stdout.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprint(errw, stderr.String())
	}

	if ctx.Err() != nil {
		return fmt.Errorf("gmx: run %s: %w", argv[0], ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("gmx: run %s: %w", argv[0], err)
	}
	return nil
}
