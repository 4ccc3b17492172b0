package app

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/multinode/internal/adapters/detector"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/engine/matrix"
	"go.trai.ch/zerr"
)

// Test runs the configured test runner against every installation and prints
// a summary. Runner failures are recorded and do not stop the loop; the
// returned report carries the failure count.
func (a *App) Test(ctx context.Context, opts Options) (*domain.RunReport, error) {
	cfg, err := a.load(opts)
	if err != nil {
		return nil, err
	}

	if !fs.IsDir(a.fs, cfg.TargetDir) {
		err := zerr.With(domain.ErrTargetDirMissing, "path", cfg.TargetDir)
		return nil, zerr.With(err, "hint", "run `multinode setup` first")
	}

	files, err := a.testFiles(cfg)
	if err != nil {
		return nil, err
	}
	tty := detector.ResolvePTY(a.terminal.UsePTY(), opts.PTY)

	s := a.newSession(opts)
	defer s.close(ctx)

	report := domain.NewRunReport()
	err = s.walker.Walk(ctx, cfg, func(ctx context.Context, _ domain.Pair, inst domain.Installation) error {
		if err := a.requireInstalled(inst); err != nil {
			return err
		}
		prefix, err := a.prefix(ctx, cfg)
		if err != nil {
			return err
		}

		args := append(slices.Clone(cfg.Test.Command), files...)
		cmd := domain.NewCommand(cfg.Root, args...).WithEnv(domain.RuntimeEnv(cfg, inst, prefix))
		cmd.TTY = tty

		a.logger.Info("testing " + inst.Name())
		start := time.Now()
		runErr := a.executor.Execute(ctx, cmd, a.stdout, a.stderr)

		res := domain.TestResult{
			Version:  inst.Version,
			Platform: inst.Platform,
			Arch:     inst.Arch,
			Outcome:  domain.OutcomeSuccess,
			Duration: time.Since(start),
		}
		if runErr != nil {
			res.Outcome = domain.OutcomeFail
			report.Record(res)
			a.logger.Warn("tests failed on " + inst.Name() + ": " + runErr.Error())
			return matrix.Continue(runErr)
		}
		report.Record(res)
		return nil
	})
	if err != nil {
		return report, err
	}

	if err := s.renderer.Summary(report); err != nil {
		return report, err
	}
	return report, nil
}

// testFiles expands the configured glob relative to the root.
// The literal pattern is returned when nothing matches.
func (a *App) testFiles(cfg *domain.Config) ([]string, error) {
	pattern := cfg.Test.Files
	if pattern == "" {
		return nil, nil
	}

	matches, err := util.Glob(a.fs, filepath.Join(cfg.Root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid test file pattern"), "pattern", pattern)
	}
	if len(matches) == 0 {
		return []string{pattern}, nil
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(cfg.Root, m)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid test file"), "path", m)
		}
		files = append(files, filepath.ToSlash(rel))
	}
	slices.Sort(files)
	return files, nil
}
