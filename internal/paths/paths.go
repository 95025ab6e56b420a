// Package paths holds small path manipulation helpers.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands environment variables and a leading ~ in a path and
// returns it as an absolute path.
func Resolve(path string) (string, error) {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
