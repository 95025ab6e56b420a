package docs

import (
	"fmt"
	"strings"
)

// Typed scaffold errors enabling structured handling without string parsing
// upstream. Only GeneratorError is fatal to the init flow; install and build
// failures are downgraded to warnings there.

// GeneratorError reports a failed quickstart generator invocation.
type GeneratorError struct {
	ExitCode int
	Stderr   string
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("sphinx-quickstart exited with code %d%s", e.ExitCode, stderrSuffix(e.Stderr))
}

// InstallError reports a failed package-installer invocation.
type InstallError struct {
	Step     string
	ExitCode int
	Stderr   string
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("pip %s exited with code %d%s", e.Step, e.ExitCode, stderrSuffix(e.Stderr))
}

// BuildError reports a failed documentation build.
type BuildError struct {
	Dir      string
	ExitCode int
	Stderr   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("make html in %s exited with code %d%s", e.Dir, e.ExitCode, stderrSuffix(e.Stderr))
}

func stderrSuffix(stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return ""
	}
	return ": " + s
}
