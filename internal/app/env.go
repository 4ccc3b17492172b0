package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

const versionsHint = "run `multinode versions` to list the configured pairs"

// Env starts an interactive shell configured for one installation.
// An empty arch selects the first configured architecture. A non-zero shell
// status is returned as a *domain.ExitError.
func (a *App) Env(ctx context.Context, opts Options, version, arch string) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	if !cfg.HasVersion(version) {
		return zerr.With(zerr.With(domain.ErrUnknownVersion, "version", version), "hint", versionsHint)
	}
	if arch == "" {
		arch = cfg.DefaultArch()
	}
	if !cfg.HasArch(arch) {
		return zerr.With(zerr.With(domain.ErrUnknownArch, "arch", arch), "hint", versionsHint)
	}

	inst := cfg.Installation(domain.Pair{Version: version, Arch: arch})
	if err := a.requireInstalled(inst); err != nil {
		return err
	}

	prefix, err := a.prefix(ctx, cfg)
	if err != nil {
		return err
	}

	rc, err := a.writeRCFile(domain.RCFile(version, arch, domain.RuntimeEnv(cfg, inst, prefix)))
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := a.fs.Remove(rc); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			a.logger.Warn("failed to remove " + rc + ": " + rmErr.Error())
		}
	}()

	if !a.terminal.StdinIsTerminal() {
		a.logger.Warn("stdin is not a terminal, the shell will not be interactive")
	}

	a.logger.Info("entering " + inst.Name() + ", exit the shell to return")
	code, err := a.executor.Attach(ctx, domain.NewCommand("", cfg.Shell, "--rcfile", rc, "-i"))
	if err != nil {
		return err
	}
	if code != 0 {
		return domain.NewExitError(code, nil)
	}
	return nil
}

func (a *App) writeRCFile(content string) (string, error) {
	f, err := a.fs.TempFile(os.TempDir(), domain.RCFilePattern)
	if err != nil {
		return "", zerr.Wrap(err, "failed to create rc file")
	}
	path := f.Name()

	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		_ = a.fs.Remove(path)
		return "", zerr.With(zerr.Wrap(err, "failed to write rc file"), "path", path)
	}
	if err := f.Close(); err != nil {
		_ = a.fs.Remove(path)
		return "", zerr.With(zerr.Wrap(err, "failed to write rc file"), "path", path)
	}
	return path, nil
}
