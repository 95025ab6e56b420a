package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCommand    = "command"
	KeyDir        = "dir"
	KeyProject    = "project"
	KeyVersion    = "version"
	KeyExitCode   = "exit_code"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Command(c string) slog.Attr       { return slog.String(KeyCommand, c) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func Project(p string) slog.Attr       { return slog.String(KeyProject, p) }
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func ExitCode(c int) slog.Attr         { return slog.Int(KeyExitCode, c) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
