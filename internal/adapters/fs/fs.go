// Package fs provides the filesystem used by every adapter and the app.
package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

// New returns the host filesystem. Paths are used as given, absolute paths included.
func New() billy.Filesystem {
	return osfs.New(string(filepath.Separator))
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(fsys billy.Basic, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, "failed to stat"), "path", path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys billy.Basic, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// Move renames src to dst, creating the parent of dst. When the rename fails
// because the paths are on different devices the file is copied and src removed.
func Move(fsys billy.Filesystem, src, dst string) error {
	if err := fsys.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	if err := fsys.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(fsys, src, dst); err != nil {
		return err
	}
	if err := fsys.Remove(src); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove source"), "path", src)
	}
	return nil
}

func copyFile(fsys billy.Filesystem, src, dst string) (err error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat"), "path", src)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open"), "path", src)
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create"), "path", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to close"), "path", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy"), "path", dst)
	}
	return nil
}
