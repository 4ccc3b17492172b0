package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Default configuration values.
const (
	DefaultPlatform    = "sunos"
	DefaultBaseURL     = "https://nodejs.org/dist"
	DefaultProjectFile = "package.json"
	DefaultShell       = "bash"
	DefaultCompiler    = "gcc"
	DefaultTestFiles   = "test/*.test.js"
)

// DefaultConfig returns the configuration used when no config file exists.
// Versions and Arches are left empty and must be provided by the caller.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:      root,
		Platform:  DefaultPlatform,
		BaseURL:   DefaultBaseURL,
		TargetDir: filepath.Join(root, DefaultTargetDirName),
		Project:   filepath.Join(root, DefaultProjectFile),
		Shell:     DefaultShell,
		Toolchain: Toolchain{
			Compiler: DefaultCompiler,
			Lib:      DefaultLibSubdir,
			Lib64:    DefaultLib64Subdir,
		},
		Test: TestSettings{
			Command: []string{"node_modules/.bin/mocha"},
			Files:   DefaultTestFiles,
		},
		Build: BuildSettings{
			Clean:   []string{"make", "clean"},
			Command: []string{"make"},
		},
	}
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	if len(c.Versions) == 0 {
		return ErrNoVersions
	}
	if len(c.Arches) == 0 {
		return ErrNoArches
	}
	if dup, ok := firstDuplicate(c.Versions); ok {
		return zerr.With(ErrDuplicateVersion, "version", dup)
	}
	if dup, ok := firstDuplicate(c.Arches); ok {
		return zerr.With(ErrDuplicateArch, "arch", dup)
	}
	if c.Platform == "" {
		return ErrMissingPlatform
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}

	commands := []struct {
		key  string
		args []string
	}{
		{"test.cmd", c.Test.Command},
		{"build.clean", c.Build.Clean},
		{"build.cmd", c.Build.Command},
	}
	for _, cmd := range commands {
		if len(cmd.args) == 0 || cmd.args[0] == "" {
			return zerr.With(ErrEmptyCommand, "key", cmd.key)
		}
	}
	if c.Shell == "" {
		return zerr.With(ErrEmptyCommand, "key", "shell")
	}
	if c.Toolchain.Compiler == "" {
		return zerr.With(ErrEmptyCommand, "key", "toolchain.compiler")
	}
	return nil
}

func firstDuplicate(list []string) (string, bool) {
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			return s, true
		}
		seen[s] = struct{}{}
	}
	return "", false
}
