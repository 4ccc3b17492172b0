// Package app implements the multinode operations on top of the core ports.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/adapters/linear"
	"go.trai.ch/multinode/internal/adapters/telemetry"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/multinode/internal/engine/matrix"
	"go.trai.ch/zerr"
)

// Options holds the settings shared by every operation.
type Options struct {
	// Root is the tool root. Empty means the directory of the running executable.
	Root string
	// ConfigPath selects a config file. Empty means multinode.yaml in the root.
	ConfigPath string
	// Verbose enables debug logging and per-pair timing lines.
	Verbose bool
	// JSON switches the logger to structured JSON output.
	JSON bool
	// PTY is one of auto, always or never.
	PTY string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	fetcher      ports.Fetcher
	extractor    ports.Extractor
	toolchain    ports.Toolchain
	project      ports.ProjectReader
	terminal     ports.Terminal
	fs           billy.Filesystem

	stdout     io.Writer
	stderr     io.Writer
	executable func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	fetcher ports.Fetcher,
	extractor ports.Extractor,
	toolchain ports.Toolchain,
	project ports.ProjectReader,
	terminal ports.Terminal,
	fsys billy.Filesystem,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		fetcher:      fetcher,
		extractor:    extractor,
		toolchain:    toolchain,
		project:      project,
		terminal:     terminal,
		fs:           fsys,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		executable:   os.Executable,
	}
}

// WithOutput redirects the streams used for reports and child process output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithExecutable replaces the lookup of the running executable used to derive the root.
func (a *App) WithExecutable(fn func() (string, error)) *App {
	a.executable = fn
	return a
}

// ResolveRoot returns the absolute root directory. An empty flag selects the
// directory of the running executable with symlinks resolved.
func (a *App) ResolveRoot(flag string) (string, error) {
	if flag != "" {
		abs, err := filepath.Abs(flag)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRootResolveFailed.Error()), "path", flag)
		}
		return abs, nil
	}

	exe, err := a.executable()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrRootResolveFailed.Error())
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRootResolveFailed.Error()), "path", exe)
	}
	return filepath.Dir(exe), nil
}

type logSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// load applies the logging options, resolves the root and reads the configuration.
func (a *App) load(opts Options) (*domain.Config, error) {
	if ls, ok := a.logger.(logSettings); ok {
		ls.SetJSON(opts.JSON)
		ls.SetVerbose(opts.Verbose)
	}

	root, err := a.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("root: " + root)

	cfg, err := a.configLoader.Load(root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is the per-operation progress pipeline: spans flow through the
// bridge into the renderer.
type session struct {
	renderer *linear.Renderer
	tracer   *telemetry.OTelTracer
	walker   *matrix.Walker
}

func (a *App) newSession(opts Options) *session {
	renderer := linear.NewRenderer(a.stdout, a.stderr, opts.Verbose)
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName, telemetry.NewBridge(renderer))
	return &session{
		renderer: renderer,
		tracer:   tracer,
		walker:   matrix.NewWalker(tracer),
	}
}

func (s *session) close(ctx context.Context) {
	_ = s.tracer.Shutdown(context.WithoutCancel(ctx))
}

// requireInstalled fails unless both the installation directory and its executable exist.
func (a *App) requireInstalled(inst domain.Installation) error {
	for _, p := range []string{inst.Dir(), inst.Executable()} {
		ok, err := fs.Exists(a.fs, p)
		if err != nil {
			return err
		}
		if !ok {
			err := zerr.With(domain.ErrNotInstalled, "path", p)
			return zerr.With(err, "hint", "run `multinode setup` first")
		}
	}
	return nil
}

// prefix resolves the toolchain installation prefix.
func (a *App) prefix(ctx context.Context, cfg *domain.Config) (string, error) {
	p, err := a.toolchain.Prefix(ctx, cfg.Toolchain.Compiler)
	if err != nil {
		return "", err
	}
	a.logger.Debug("toolchain prefix: " + p)
	return p, nil
}

// artifact resolves the native addon named by the project descriptor.
func (a *App) artifact(cfg *domain.Config) (domain.Artifact, error) {
	entry, err := a.project.EntryPoint(cfg.Project)
	if err != nil {
		return domain.Artifact{}, err
	}
	artifact, err := domain.NewArtifact(entry)
	if err != nil {
		return domain.Artifact{}, zerr.With(err, "path", cfg.Project)
	}
	return artifact, nil
}
