// Package config provides the configuration loader for multinode.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     billy.Filesystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(logger ports.Logger, fsys billy.Filesystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration for root. When path is empty the default
// multinode.yaml in root is used and may be absent; an explicit path must exist.
func (l *Loader) Load(root, path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.ConfigFileName)
	} else if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
		}
		path = abs
	}

	var file File
	err := l.readYAML(path, &file)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		l.Logger.Debug("no " + domain.ConfigFileName + " in " + root + ", using defaults")
	case errors.Is(err, os.ErrNotExist):
		return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
	case err != nil:
		return nil, err
	}

	cfg := apply(domain.DefaultConfig(root), &file)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "hint", "list versions and arches in "+path)
	}
	return cfg, nil
}

func (l *Loader) readYAML(path string, out *File) error {
	data, err := util.ReadFile(l.FS, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

// apply overlays the non-zero values of file onto cfg. Strings are expanded
// with os.ExpandEnv and relative paths are resolved against cfg.Root.
func apply(cfg *domain.Config, file *File) *domain.Config {
	cfg.Versions = expandAll(file.Versions)
	cfg.Arches = expandAll(file.Arches)
	cfg.Verify = file.Verify

	setString(&cfg.Platform, file.Platform)
	setString(&cfg.BaseURL, file.BaseURL)
	setString(&cfg.Shell, file.Shell)
	setString(&cfg.Toolchain.Compiler, file.Toolchain.Compiler)
	setString(&cfg.Toolchain.Lib, file.Toolchain.Lib)
	setString(&cfg.Toolchain.Lib64, file.Toolchain.Lib64)
	setString(&cfg.Test.Files, file.Test.Files)

	if file.TargetDir != "" {
		cfg.TargetDir = resolvePath(cfg.Root, os.ExpandEnv(file.TargetDir))
	}
	if file.Project != "" {
		cfg.Project = resolvePath(cfg.Root, os.ExpandEnv(file.Project))
	}

	setList(&cfg.Test.Command, file.Test.Cmd)
	setList(&cfg.Build.Clean, file.Build.Clean)
	setList(&cfg.Build.Command, file.Build.Cmd)

	return cfg
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = os.ExpandEnv(v)
	}
}

func setList(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = expandAll(v)
	}
}

func expandAll(list []string) []string {
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = os.ExpandEnv(s)
	}
	return out
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
