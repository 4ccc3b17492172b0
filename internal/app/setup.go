package app

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

// Setup downloads and extracts every configured installation that is not present yet.
func (a *App) Setup(ctx context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	s := a.newSession(opts)
	defer s.close(ctx)

	return s.walker.Walk(ctx, cfg, func(ctx context.Context, _ domain.Pair, inst domain.Installation) error {
		return a.install(ctx, cfg, inst)
	})
}

func (a *App) install(ctx context.Context, cfg *domain.Config, inst domain.Installation) error {
	exists, err := fs.Exists(a.fs, inst.Dir())
	if err != nil {
		return err
	}
	if exists {
		if ok, _ := fs.Exists(a.fs, inst.Executable()); !ok {
			a.logger.Warn(inst.Dir() + " has no " + inst.Executable() + "; remove it and run setup again")
		}
		a.logger.Info(inst.Name() + " already installed, skipping")
		return nil
	}

	if err := a.fs.MkdirAll(cfg.TargetDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", cfg.TargetDir)
	}

	url := inst.URL(cfg.BaseURL)
	archive := filepath.Join(cfg.TargetDir, archiveTempName(url))
	defer func() {
		if rmErr := a.fs.Remove(archive); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			a.logger.Warn("failed to remove " + archive + ": " + rmErr.Error())
		}
	}()

	a.logger.Info("downloading " + url)
	digest, err := a.download(ctx, url, archive, cfg.Verify)
	if err != nil {
		return err
	}

	if cfg.Verify {
		if err := a.verify(ctx, cfg, inst, digest); err != nil {
			return err
		}
	}

	a.logger.Info("extracting " + inst.ArchiveName())
	if err := a.extractor.Extract(ctx, archive, cfg.TargetDir); err != nil {
		a.discard(inst)
		return err
	}

	if err := a.requireInstalled(inst); err != nil {
		a.discard(inst)
		return zerr.With(zerr.With(domain.ErrExtractFailed, "archive", inst.ArchiveName()),
			"hint", "the archive did not contain "+inst.Name()+"/bin/node")
	}
	return nil
}

// discard removes a partially extracted installation so the next setup retries it.
func (a *App) discard(inst domain.Installation) {
	if err := util.RemoveAll(a.fs, inst.Dir()); err != nil {
		a.logger.Warn("failed to remove " + inst.Dir() + ": " + err.Error())
	}
}

// archiveTempName derives a stable hidden file name for the download of url.
func archiveTempName(url string) string {
	return ".download-" + strconv.FormatUint(xxhash.Sum64String(url), 16) + domain.ArchiveExt
}

// download streams url into path and returns its SHA-256 digest when requested.
func (a *App) download(ctx context.Context, url, path string, digest bool) (sum string, err error) {
	f, err := a.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create archive"), "path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to write archive"), "path", path)
		}
	}()

	var w io.Writer = f
	var h hash.Hash
	if digest {
		h = sha256.New()
		w = io.MultiWriter(f, h)
	}

	if err := a.fetcher.Fetch(ctx, url, w); err != nil {
		return "", err
	}
	if h == nil {
		return "", nil
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// verify compares digest with the value published in SHASUMS256.txt.
func (a *App) verify(ctx context.Context, cfg *domain.Config, inst domain.Installation, digest string) error {
	var buf bytes.Buffer
	if err := a.fetcher.Fetch(ctx, inst.ChecksumsURL(cfg.BaseURL), &buf); err != nil {
		return err
	}

	sums, err := domain.ParseChecksums(&buf)
	if err != nil {
		return err
	}
	want, err := sums.Lookup(inst.ArchiveName())
	if err != nil {
		return err
	}

	if want != digest {
		err := zerr.With(domain.ErrChecksumMismatch, "archive", inst.ArchiveName())
		return zerr.With(zerr.With(err, "expected", want), "actual", digest)
	}
	a.logger.Debug("checksum ok: " + inst.ArchiveName())
	return nil
}
