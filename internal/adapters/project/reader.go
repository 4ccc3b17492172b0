// Package project reads the npm package descriptor of the project under test.
package project

import (
	"encoding/json"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

type descriptor struct {
	Name string `json:"name"`
	Main string `json:"main"`
}

// Reader implements ports.ProjectReader for package.json files.
type Reader struct {
	fs billy.Filesystem
}

// NewReader creates a new Reader.
func NewReader(fsys billy.Filesystem) *Reader {
	return &Reader{fs: fsys}
}

// EntryPoint returns the main field of the descriptor at path.
func (r *Reader) EntryPoint(path string) (string, error) {
	data, err := util.ReadFile(r.fs, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}

	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}

	main := strings.TrimSpace(d.Main)
	if main == "" {
		return "", zerr.With(domain.ErrMissingEntryPoint, "path", path)
	}
	return main, nil
}
