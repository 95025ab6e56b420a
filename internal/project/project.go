// Package project derives the per-invocation project context: where the
// project lives, what it is called, who authors it and which version it is at.
package project

import (
	"context"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/pydevkit/internal/gitx"
	"git.home.luguber.info/inful/pydevkit/internal/logfields"
	"git.home.luguber.info/inful/pydevkit/internal/shell"
)

// DefaultVersion is used when neither installed-package metadata nor the
// project manifest yields a version.
const DefaultVersion = "0.1.0"

// Context describes the project a command operates on. It is computed fresh
// on every invocation and never persisted.
type Context struct {
	Root    string
	Name    string
	Author  string
	Version string
}

// Detect builds the project context for the repository rooted at root.
// The project name defaults to the root directory's base name; python is
// the interpreter used for the installed-package metadata lookup.
func Detect(ctx context.Context, r shell.Runner, root, python string) Context {
	name := filepath.Base(root)
	c := Context{
		Root:    root,
		Name:    name,
		Author:  gitx.AuthorName(root),
		Version: ResolveVersion(ctx, r, root, name, python),
	}
	slog.Debug("Detected project context",
		logfields.Project(c.Name),
		logfields.Version(c.Version),
		logfields.Path(c.Root))
	return c
}
