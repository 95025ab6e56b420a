package docs

import (
	"fmt"
	"strings"
)

// Marker lines in the generated conf.py. The rewrite is anchored on these
// exact strings, so it is coupled to the quickstart generator's output
// format; if the generator changes its template these must follow.
const (
	extensionsOpen      = "extensions = ["
	extensionsClose     = "]"
	themePrefix         = "html_theme ="
	staticPathLine      = "html_static_path = ['_static']"
	generalConfigMarker = "# -- General configuration"
)

// Rewrite transforms the generated conf.py content: the extensions block is
// swapped for the canonical one, the theme is forced, the custom stylesheet
// is registered, the import preamble is inserted when enabled, and the
// extra-config block is appended. All other lines pass through unchanged,
// in their original order.
func Rewrite(lines []string, projectName string, opts Options) []string {
	out := rewriteLines(lines, opts)
	return append(out, renderExtraConfig(projectName, opts))
}

// rewriteLines performs the single forward pass over the generated lines.
func rewriteLines(lines []string, opts Options) []string {
	out := make([]string, 0, len(lines)+4)
	inExtensions := false

	for _, line := range lines {
		if line == extensionsOpen {
			inExtensions = true
		}

		if strings.HasPrefix(line, themePrefix) {
			line = fmt.Sprintf("html_theme = %q", opts.Theme)
		}

		if line == staticPathLine {
			line += "\n" + `html_css_files = ["css/custom.css"]`
		}

		if opts.InsertPreamble && strings.Contains(line, generalConfigMarker) {
			line = preamble + "\n" + line
		}

		if !inExtensions {
			out = append(out, line)
		}

		if inExtensions && line == extensionsClose {
			inExtensions = false
			out = append(out, extensionsBlock)
		}
	}

	return out
}

// renderExtraConfig substitutes the autoapi source directory and member
// order into the appended configuration block. ROOT only exists when the
// preamble was inserted; without it the directory must be expressed
// relative to conf.py so the appended block stays self-contained.
func renderExtraConfig(projectName string, opts Options) string {
	dirs := fmt.Sprintf("%q", "../"+projectName)
	if opts.InsertPreamble {
		dirs = fmt.Sprintf("str(ROOT/ %q)", projectName)
	}
	s := strings.ReplaceAll(extraConfig, "$AUTOAPI_DIRS", dirs)
	return strings.ReplaceAll(s, "$MEMBER_ORDER", opts.MemberOrder)
}
