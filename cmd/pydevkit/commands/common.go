package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Docs DocsCmd `cmd:"" help:"Documentation tools (Sphinx scaffolding and builds)"`
}

// AfterApply runs after flag parsing; setup logging once and load env files.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := LoadEnvFile(); err == nil && c.Verbose {
		_, _ = fmt.Fprintln(os.Stderr, "Loaded environment variables from .env file")
	}
	return nil
}

// LoadEnvFile loads environment variables from .env/.env.local files.
// Both files are applied when present, in that order. Existing process
// environment variables are not overwritten, so .env wins over .env.local
// for keys both define.
func LoadEnvFile() error {
	loaded := false
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			loaded = true
		}
	}
	if !loaded {
		return fmt.Errorf("no .env file found")
	}
	return nil
}
