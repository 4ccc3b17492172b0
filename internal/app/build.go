package app

import (
	"context"

	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

// Build compiles the native addon against every installation and moves it
// into the installation's lib directory. Pairs that already hold the
// artifact are skipped.
func (a *App) Build(ctx context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	artifact, err := a.artifact(cfg)
	if err != nil {
		return err
	}
	built := artifact.PathIn(cfg.Root)

	s := a.newSession(opts)
	defer s.close(ctx)

	return s.walker.Walk(ctx, cfg, func(ctx context.Context, _ domain.Pair, inst domain.Installation) error {
		if err := a.requireInstalled(inst); err != nil {
			return err
		}

		dst := inst.ArtifactPath(artifact)
		exists, err := fs.Exists(a.fs, dst)
		if err != nil {
			return err
		}
		if exists {
			a.logger.Info(dst + " already exists, skipping")
			return nil
		}

		env := domain.BuildEnv(inst)

		a.logger.Info("building " + artifact.Name + " for " + inst.Name())
		if err := a.run(ctx, cfg.Root, cfg.Build.Clean, env); err != nil {
			return err
		}
		present, err := fs.Exists(a.fs, built)
		if err != nil {
			return err
		}
		if present {
			return zerr.With(domain.ErrCleanStepBroken, "path", built)
		}

		if err := a.run(ctx, cfg.Root, cfg.Build.Command, env); err != nil {
			return err
		}
		present, err = fs.Exists(a.fs, built)
		if err != nil {
			return err
		}
		if !present {
			return zerr.With(domain.ErrBuildStepBroken, "path", built)
		}

		if err := fs.Move(a.fs, built, dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "path", dst)
		}
		a.logger.Info("installed " + dst)
		return nil
	})
}

func (a *App) run(ctx context.Context, dir string, args []string, env map[string]string) error {
	cmd := domain.NewCommand(dir, args...).WithEnv(env)
	return a.executor.Execute(ctx, cmd, a.stdout, a.stderr)
}
