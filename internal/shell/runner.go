// Package shell provides a stub-friendly interface for running external commands.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"git.home.luguber.info/inful/pydevkit/internal/logfields"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Opts holds optional parameters for command execution.
type Opts struct {
	Dir string // working directory (optional)
}

// Runner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type Runner interface {
	// Run executes a command and returns the result.
	// Returns a Result with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)

	// LookPath reports where the named binary resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner is the production implementation of Runner using os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	slog.Debug("Running command", logfields.Command(name+" "+strings.Join(args, " ")), logfields.Dir(opts.Dir))

	start := time.Now()
	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return result, err
		}
		result.ExitCode = exitErr.ExitCode()
	}

	slog.Debug("Command finished",
		logfields.Command(name),
		logfields.ExitCode(result.ExitCode),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1e3))

	return result, nil
}

// LookPath resolves the binary on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Output runs a command and returns its trimmed stdout.
// A non-zero exit is returned as *ExitError.
func Output(ctx context.Context, r Runner, dir, name string, args ...string) (string, error) {
	res, err := r.Run(ctx, name, args, Opts{Dir: dir})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &ExitError{Name: name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return strings.TrimSpace(res.Stdout), nil
}
