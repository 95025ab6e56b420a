// Package console is the user-facing output sink for the toolbox.
//
// Commands receive a *Console instead of writing to a process-wide printer,
// so embeddings (and tests) can capture or silence everything the tool says.
package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	logStyle     = lipgloss.NewStyle()
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Console writes styled user-facing messages.
type Console struct {
	out io.Writer
	err io.Writer
}

// New returns a Console bound to stdout/stderr.
func New() *Console {
	return &Console{out: os.Stdout, err: os.Stderr}
}

// NewWithWriters returns a Console bound to the given writers.
func NewWithWriters(out, errW io.Writer) *Console {
	return &Console{out: out, err: errW}
}

// Log prints a plain informational message.
func (c *Console) Log(format string, args ...any) {
	fmt.Fprintln(c.out, logStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a warning message.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a success message.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message to the error writer.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.err, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Status announces a long-running step and returns a func that reports its
// completion with the elapsed time.
func (c *Console) Status(msg string) func() {
	fmt.Fprintln(c.out, statusStyle.Render("… "+msg))
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		fmt.Fprintln(c.out, statusStyle.Render(fmt.Sprintf("  done in %s", elapsed)))
	}
}
