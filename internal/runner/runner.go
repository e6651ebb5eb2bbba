package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"
)

// ErrEmptyCommand is returned when the configured runner has no executable
var ErrEmptyCommand = errors.New("runner command is empty")

// ErrCommandFailed wraps failures of the spawned script
var ErrCommandFailed = errors.New("script command failed")

// Runner invokes a script by name
type Runner interface {
	Run(ctx context.Context, script string) error
}

// Exec runs "<Command> <script>" as a child process
type Exec struct {
	Command string // e.g. "yarn" or "npm run"
	Dir     string // working directory, empty for the current one

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec creates a runner that inherits the standard streams of this process
func NewExec(command string) *Exec {
	return &Exec{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Args returns the argv used to run script
func (e *Exec) Args(script string) ([]string, error) {
	parts, err := shlex.Split(e.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid runner command %q: %w", e.Command, err)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}
	return append(parts, script), nil
}

// Run spawns the runner with script as its last argument and waits for it
func (e *Exec) Run(ctx context.Context, script string) error {
	args, err := e.Args(script)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrCommandFailed, args[0], script, err)
	}
	return nil
}

// ExitCode extracts the child's exit status from err, or 1 when there is none
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
