package shell

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesStdout(t *testing.T) {
	r := NewExecRunner()

	res, err := r.Run(context.Background(), "sh", []string{"-c", "printf hello"}, Opts{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello", res.Stdout)
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	r := NewExecRunner()

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 3"}, Opts{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Stderr, "oops")
}

func TestRunLogsDurationAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	r := NewExecRunner()
	_, err := r.Run(context.Background(), "sh", []string{"-c", "true"}, Opts{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Command finished")
	assert.Contains(t, buf.String(), "duration_ms=")
	assert.Contains(t, buf.String(), "exit_code=0")
}

func TestRunMissingBinaryIsAnError(t *testing.T) {
	r := NewExecRunner()

	_, err := r.Run(context.Background(), "definitely-not-a-binary-pydevkit", nil, Opts{})
	assert.Error(t, err)
}

func TestRunRespectsDir(t *testing.T) {
	r := NewExecRunner()
	dir := t.TempDir()

	out, err := Output(context.Background(), r, dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, out, dir[1:]) // tolerate /private prefix on darwin
}

func TestOutputTrimsAndReportsExitError(t *testing.T) {
	r := NewExecRunner()

	out, err := Output(context.Background(), r, "", "sh", "-c", "echo '  spaced  '")
	require.NoError(t, err)
	assert.Equal(t, "spaced", out)

	_, err = Output(context.Background(), r, "", "sh", "-c", "echo bad >&2; exit 1")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode)
	assert.Contains(t, exitErr.Error(), "bad")
}
