// Package archive implements the Extractor port for gzip compressed tarballs.
package archive

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/klauspost/compress/gzip"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extractor implements ports.Extractor on top of a billy filesystem.
type Extractor struct {
	fs billy.Filesystem
}

// NewExtractor creates a new Extractor.
func NewExtractor(fsys billy.Filesystem) *Extractor {
	return &Extractor{fs: fsys}
}

// Extract unpacks the .tar.gz at archivePath into dest. Entries that would
// land outside dest are rejected.
func (x *Extractor) Extract(ctx context.Context, archivePath, dest string) error {
	f, err := x.fs.Open(archivePath)
	if err != nil {
		return x.fail(err, archivePath)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return x.fail(err, archivePath)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return x.fail(err, archivePath)
		}

		if err := x.extractEntry(tr, hdr, dest); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archivePath)
		}
	}
}

func (x *Extractor) fail(err error, archivePath string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archivePath)
}

func (x *Extractor) extractEntry(r io.Reader, hdr *tar.Header, dest string) error {
	target, err := safeJoin(dest, hdr.Name)
	if err != nil {
		return err
	}
	mode := hdr.FileInfo().Mode().Perm()

	switch hdr.Typeflag {
	case tar.TypeDir:
		return x.fs.MkdirAll(target, mode|0o700)
	case tar.TypeReg:
		return x.writeFile(target, r, mode)
	case tar.TypeSymlink:
		return x.symlink(dest, target, hdr.Linkname)
	case tar.TypeLink:
		source, err := safeJoin(dest, hdr.Linkname)
		if err != nil {
			return err
		}
		return x.copyFile(source, target, mode)
	default:
		return nil
	}
}

func (x *Extractor) writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := x.fs.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}

	out, err := x.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (x *Extractor) copyFile(source, target string, mode os.FileMode) error {
	in, err := x.fs.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	return x.writeFile(target, in, mode)
}

func (x *Extractor) symlink(dest, target, linkname string) error {
	if path.IsAbs(linkname) {
		return zerr.With(domain.ErrUnsafeArchivePath, "link", linkname)
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkname))
	if !within(dest, resolved) {
		return zerr.With(domain.ErrUnsafeArchivePath, "link", linkname)
	}

	if err := x.fs.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}
	if _, err := x.fs.Lstat(target); err == nil {
		if err := x.fs.Remove(target); err != nil {
			return err
		}
	}
	return x.fs.Symlink(linkname, target)
}

// safeJoin resolves an archive entry name below dest.
func safeJoin(dest, name string) (string, error) {
	if path.IsAbs(name) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "entry", name)
	}
	target := filepath.Join(dest, filepath.FromSlash(path.Clean(name)))
	if !within(dest, target) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "entry", name)
	}
	return target, nil
}

func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
