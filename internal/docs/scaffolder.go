// Package docs scaffolds and builds Sphinx documentation for a project.
//
// Init creates a docs/ tree by running sphinx-quickstart, rewriting the
// generated conf.py with marker-based insertions, writing the supporting
// template assets and installing the documentation toolchain. Build runs
// `make html` in an existing docs/ tree. Everything is strictly sequential
// and blocking; every external command is invoked synchronously.
package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/pydevkit/internal/console"
	"git.home.luguber.info/inful/pydevkit/internal/logfields"
	"git.home.luguber.info/inful/pydevkit/internal/project"
	"git.home.luguber.info/inful/pydevkit/internal/shell"
)

// ConfirmFunc asks the operator a yes/no question. Implementations return
// true only for an affirmative answer.
type ConfirmFunc func(prompt string) (bool, error)

// Scaffolder orchestrates documentation scaffolding and builds.
type Scaffolder struct {
	runner  shell.Runner
	out     *console.Console
	confirm ConfirmFunc
	opts    Options
}

// NewScaffolder creates a Scaffolder. Without a ConfirmFunc (see
// WithConfirm) an existing docs directory is never overwritten: no
// confirmation channel means an implicit decline.
func NewScaffolder(runner shell.Runner, out *console.Console, opts Options) *Scaffolder {
	return &Scaffolder{runner: runner, out: out, opts: opts}
}

// WithConfirm attaches an interactive confirmation channel (fluent helper).
func (s *Scaffolder) WithConfirm(f ConfirmFunc) *Scaffolder {
	s.confirm = f
	return s
}

// Init scaffolds the documentation tree for the project.
//
// Only a generator failure aborts; install and build failures are reported
// and the operator keeps the partially-scaffolded result to inspect or
// retry manually. There are no retries anywhere.
func (s *Scaffolder) Init(ctx context.Context, proj project.Context) error {
	docsDir := filepath.Join(proj.Root, "docs")

	if _, err := os.Stat(docsDir); err == nil {
		s.out.Warn("You already have a docs/ directory in %s.", proj.Root)
		ok := false
		if s.confirm != nil {
			var err error
			ok, err = s.confirm("Do you want to overwrite its contents? [y/N] ")
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
		}
		if !ok {
			s.out.Log("Keeping existing docs/ directory.")
			return nil
		}
		if err := os.RemoveAll(docsDir); err != nil {
			return fmt.Errorf("remove existing docs directory: %w", err)
		}
	}

	s.out.Log("Initializing docs for %s version %s and author %s", proj.Name, proj.Version, proj.Author)
	if err := os.MkdirAll(docsDir, 0o750); err != nil {
		return fmt.Errorf("create docs directory: %w", err)
	}

	if err := s.ensureSphinx(ctx, proj.Root); err != nil {
		return err
	}

	done := s.out.Status("Running sphinx-quickstart...")
	res, err := s.runner.Run(ctx, "sphinx-quickstart", quickstartArgs(proj), shell.Opts{Dir: proj.Root})
	done()
	if err != nil {
		return fmt.Errorf("run sphinx-quickstart: %w", err)
	}
	if res.ExitCode != 0 {
		return &GeneratorError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	if err := s.rewriteConf(docsDir, proj.Name); err != nil {
		return err
	}
	if err := s.writeAssets(proj.Root, docsDir); err != nil {
		return err
	}

	s.installRequirements(ctx, proj.Root)
	s.buildAdvisory(ctx, proj, docsDir)

	s.out.Log("Run `make html` in the `docs/` folder to build the docs yourself.")
	return nil
}

// Build runs the documentation build in an existing docs/ tree. A failing
// build is returned as *BuildError.
func (s *Scaffolder) Build(ctx context.Context, proj project.Context) error {
	docsDir := filepath.Join(proj.Root, "docs")

	done := s.out.Status(fmt.Sprintf("Running `make html` in %s", docsDir))
	res, err := s.runner.Run(ctx, "make", []string{"html"}, shell.Opts{Dir: docsDir})
	done()
	if err != nil {
		return fmt.Errorf("run make html: %w", err)
	}
	if res.ExitCode != 0 {
		return &BuildError{Dir: docsDir, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	s.out.Success("Successfully built docs. Open %s to see them",
		filepath.Join(docsDir, "_build", "html", "index.html"))
	return nil
}

func quickstartArgs(proj project.Context) []string {
	return []string{
		"-q",
		"-p", proj.Name,
		"-a", proj.Author,
		"-v", proj.Version,
		"--no-sep",
		"--ext-autodoc",
		"--ext-viewcode",
		"--ext-todo",
		"--ext-mathjax",
		"--ext-intersphinx",
		"--makefile",
		"docs/",
	}
}

// ensureSphinx installs sphinx when the quickstart generator is missing from
// PATH. A failure here is fatal: the generator cannot run without it.
func (s *Scaffolder) ensureSphinx(ctx context.Context, root string) error {
	if _, err := s.runner.LookPath("sphinx-quickstart"); err == nil {
		return nil
	}

	done := s.out.Status("Sphinx is not installed. Installing it now...")
	defer done()
	if err := s.pip(ctx, root, "install", "--upgrade", "pip"); err != nil {
		return err
	}
	return s.pip(ctx, root, "install", "sphinx")
}

// rewriteConf applies the marker-based rewrite to the generated conf.py.
func (s *Scaffolder) rewriteConf(docsDir, projectName string) error {
	confPath := filepath.Join(docsDir, "conf.py")
	data, err := os.ReadFile(confPath)
	if err != nil {
		return fmt.Errorf("read generated conf.py: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	rewritten := Rewrite(lines, projectName, s.opts)

	if err := os.WriteFile(confPath, []byte(strings.Join(rewritten, "\n")), 0o644); err != nil {
		return fmt.Errorf("write conf.py: %w", err)
	}
	slog.Debug("Rewrote generated configuration", logfields.File(confPath))
	return nil
}

// writeAssets writes the fixed template files and static directories.
func (s *Scaffolder) writeAssets(root, docsDir string) error {
	files := map[string]string{
		filepath.Join(docsDir, "requirements-docs.txt"): requirementsTxt,
		filepath.Join(root, ".readthedocs.yml"):         readthedocsYML,
		filepath.Join(docsDir, "index.rst"):             indexRST,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	cssDir := filepath.Join(docsDir, "_static", "css")
	imagesDir := filepath.Join(docsDir, "_static", "images")
	for _, dir := range []string{cssDir, imagesDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(cssDir, "custom.css"), nil, 0o644); err != nil {
		return fmt.Errorf("write custom.css: %w", err)
	}
	return nil
}

// installRequirements installs the documentation toolchain. Failures are
// downgraded to warnings so the operator keeps an inspectable result.
func (s *Scaffolder) installRequirements(ctx context.Context, root string) {
	done := s.out.Status("Installing docs dependencies...")
	defer done()

	if err := s.pip(ctx, root, "install", "--upgrade", "pip"); err != nil {
		s.warnInstall(err)
		return
	}
	if err := s.pip(ctx, root, "install", "-r", filepath.Join("docs", "requirements-docs.txt")); err != nil {
		s.warnInstall(err)
	}
}

func (s *Scaffolder) warnInstall(err error) {
	s.out.Warn("Installing docs dependencies failed: %v", err)
	s.out.Warn("Retry manually with `%s -m pip install -r docs/requirements-docs.txt`.", s.opts.Python)
	slog.Warn("Docs dependency installation failed", logfields.Error(err))
}

// pip invokes the package installer through the configured interpreter.
func (s *Scaffolder) pip(ctx context.Context, root string, args ...string) error {
	full := append([]string{"-m", "pip"}, args...)
	res, err := s.runner.Run(ctx, s.opts.Python, full, shell.Opts{Dir: root})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &InstallError{Step: strings.Join(args, " "), ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// buildAdvisory attempts a first build. A failure is advisory: the most
// common cause is a project/directory name mismatch in autoapi_dirs, so the
// diagnostic points there.
func (s *Scaffolder) buildAdvisory(ctx context.Context, proj project.Context, docsDir string) {
	done := s.out.Status("Running `make html` to build the docs")
	res, err := s.runner.Run(ctx, "make", []string{"html"}, shell.Opts{Dir: docsDir})
	done()

	if err != nil || res.ExitCode != 0 {
		s.out.Warn("Docs building error.")
		s.out.Warn("The docs were built assuming your project is called `%s`.", proj.Name)
		s.out.Warn("If your code is in an other folder, this may be why the build failed.")
		s.out.Warn("In that case, update docs/conf.py (line: `autoapi_dirs = `).")
		if err != nil {
			slog.Warn("Initial docs build failed", logfields.Error(err))
		} else {
			slog.Warn("Initial docs build failed", logfields.ExitCode(res.ExitCode))
		}
		return
	}

	s.out.Success("Your docs were built successfully!")
	s.out.Log("See them by opening `docs/_build/html/index.html` in your browser.")
}
