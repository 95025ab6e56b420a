package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/pydevkit/internal/config"
	"git.home.luguber.info/inful/pydevkit/internal/console"
	"git.home.luguber.info/inful/pydevkit/internal/docs"
	"git.home.luguber.info/inful/pydevkit/internal/gitx"
	"git.home.luguber.info/inful/pydevkit/internal/project"
	"git.home.luguber.info/inful/pydevkit/internal/shell"
)

// DocsCmd groups the documentation subcommands.
type DocsCmd struct {
	Init  DocsInitCmd  `cmd:"" help:"Initialize the docs for your project using Sphinx and a selection of extensions"`
	Build DocsBuildCmd `cmd:"" help:"Build the docs for your project using Sphinx"`
}

// DocsInitCmd implements 'docs init'.
type DocsInitCmd struct{}

func (c *DocsInitCmd) Run(_ *Global, _ *CLI) error {
	ctx := context.Background()
	runner := shell.NewExecRunner()
	out := console.New()

	proj, cfg, err := resolveProject(ctx, runner)
	if err != nil {
		return err
	}

	scaffolder := docs.NewScaffolder(runner, out, scaffoldOptions(cfg.Docs)).
		WithConfirm(stdinConfirm(os.Stdin, os.Stdout))
	return scaffolder.Init(ctx, proj)
}

// DocsBuildCmd implements 'docs build'.
type DocsBuildCmd struct{}

func (c *DocsBuildCmd) Run(_ *Global, _ *CLI) error {
	ctx := context.Background()
	runner := shell.NewExecRunner()
	out := console.New()

	proj, cfg, err := resolveProject(ctx, runner)
	if err != nil {
		return err
	}

	scaffolder := docs.NewScaffolder(runner, out, scaffoldOptions(cfg.Docs))
	if err := scaffolder.Build(ctx, proj); err != nil {
		out.Error("Failed to build docs: %v", err)
		return err
	}
	return nil
}

// resolveProject locates the enclosing repository, loads the optional
// project config and derives the project context. An absent git root is a
// hard abort for every docs subcommand.
func resolveProject(ctx context.Context, runner shell.Runner) (project.Context, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return project.Context{}, nil, fmt.Errorf("determine working directory: %w", err)
	}

	root, err := gitx.FindRoot(cwd)
	if err != nil {
		return project.Context{}, nil, err
	}

	cfg, err := config.Load(filepath.Join(root, config.DefaultFileName))
	if err != nil {
		return project.Context{}, nil, err
	}

	opts := scaffoldOptions(cfg.Docs)
	proj := project.Detect(ctx, runner, root, opts.Python)
	return proj, cfg, nil
}

// scaffoldOptions merges the per-project config over the default variant.
func scaffoldOptions(dc config.DocsConfig) docs.Options {
	opts := docs.DefaultOptions()
	if dc.Theme != "" {
		opts.Theme = dc.Theme
	}
	if dc.MemberOrder != "" {
		opts.MemberOrder = dc.MemberOrder
	}
	if dc.InsertPreamble != nil {
		opts.InsertPreamble = *dc.InsertPreamble
	}
	if dc.Python != "" {
		opts.Python = dc.Python
	}
	return opts
}

// stdinConfirm asks the operator on the terminal. Only an answer beginning
// with "y" (case-insensitive) confirms.
func stdinConfirm(in io.Reader, out io.Writer) docs.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) (bool, error) {
		_, _ = fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return strings.HasPrefix(answer, "y"), nil
	}
}
