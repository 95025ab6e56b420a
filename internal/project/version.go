package project

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"git.home.luguber.info/inful/pydevkit/internal/shell"
)

// ManifestName is the project manifest consulted for the version fallback.
const ManifestName = "pyproject.toml"

// versionLine matches `version = <value>` with optional whitespace around
// the equals sign, the manifest fallback of last resort.
var versionLine = regexp.MustCompile(`^\s*version\s?=\s?(.+)$`)

// ResolveVersion resolves the project version:
// installed-package metadata, then the manifest file, then DefaultVersion.
func ResolveVersion(ctx context.Context, r shell.Runner, root, name, python string) string {
	if v := installedVersion(ctx, r, name, python); v != "" {
		return v
	}
	if v := manifestVersion(filepath.Join(root, ManifestName)); v != "" {
		return v
	}
	return DefaultVersion
}

// installedVersion asks pip for the installed package's metadata. A non-zero
// exit (package not found, pip missing) moves resolution to the manifest.
func installedVersion(ctx context.Context, r shell.Runner, name, python string) string {
	out, err := shell.Output(ctx, r, "", python, "-m", "pip", "show", name)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(out, "\n") {
		if after, ok := strings.CutPrefix(line, "Version:"); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// pyproject mirrors the two places the ecosystem records a version.
type pyproject struct {
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// manifestVersion parses the manifest structurally first, then falls back to
// a line scan taking the first `version = ...` match with quotes stripped.
func manifestVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var p pyproject
	if err := toml.Unmarshal(data, &p); err == nil {
		if p.Project.Version != "" {
			return p.Project.Version
		}
		if p.Tool.Poetry.Version != "" {
			return p.Tool.Poetry.Version
		}
	}

	for _, line := range strings.Split(string(data), "\n") {
		if m := versionLine.FindStringSubmatch(line); m != nil {
			v := strings.TrimSpace(m[1])
			v = strings.Trim(v, `"'`)
			return v
		}
	}
	return ""
}
