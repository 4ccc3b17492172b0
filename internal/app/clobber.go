package app

import (
	"context"

	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/domain"
)

// Clobber removes the relocated artifact from every installation.
// Removal failures are logged and do not stop the loop.
func (a *App) Clobber(ctx context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	artifact, err := a.artifact(cfg)
	if err != nil {
		return err
	}

	s := a.newSession(opts)
	defer s.close(ctx)

	return s.walker.Walk(ctx, cfg, func(_ context.Context, _ domain.Pair, inst domain.Installation) error {
		if err := a.requireInstalled(inst); err != nil {
			return err
		}

		dst := inst.ArtifactPath(artifact)
		exists, err := fs.Exists(a.fs, dst)
		if err != nil {
			a.logger.Warn(err.Error())
			return nil
		}
		if !exists {
			a.logger.Debug("nothing to remove in " + inst.Name())
			return nil
		}

		if err := a.fs.Remove(dst); err != nil {
			a.logger.Warn("failed to remove " + dst + ": " + err.Error())
			return nil
		}
		a.logger.Info("removed " + dst)
		return nil
	})
}
