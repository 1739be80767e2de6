package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Command describes a subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Stdout receives the standard output. Nil discards it.
	Stdout io.Writer
}

// String renders the command line for messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandRunner executes subprocesses.
type CommandRunner interface {
	// Run executes cmd and returns its exit status. A non-zero exit is not an
	// error; the error return is reserved for failures to start the process
	// or to wait for it.
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Debug, when set, receives a copy of stdout and stderr of every command.
	Debug io.Writer
}

// Run implements CommandRunner.
func (r ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	var stderr io.Writer = io.Discard
	if r.Debug != nil {
		stdout = io.MultiWriter(stdout, r.Debug)
		stderr = r.Debug
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", c, err)
	}
	return 0, nil
}
