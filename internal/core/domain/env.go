package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Environment variable names written by the overlay.
const (
	EnvPath            = "PATH"
	EnvNodePath        = "NODE_PATH"
	EnvLibraryPath     = "LD_LIBRARY_PATH"
	EnvLibraryPath64   = "LD_LIBRARY_PATH_64"
	DefaultLibSubdir   = "lib"
	DefaultLib64Subdir = "lib/amd64"
)

// rcStartupFiles are sourced, when present, before the overlay is re-exported.
var rcStartupFiles = []string{".bash_profile", ".bashrc"}

// BuildEnv returns the overlay used while compiling against inst.
func BuildEnv(inst Installation) map[string]string {
	return map[string]string{EnvPath: inst.BinDir()}
}

// RuntimeEnv returns the overlay used by the test runner and the interactive shell.
// prefix is the toolchain installation prefix.
func RuntimeEnv(cfg *Config, inst Installation, prefix string) map[string]string {
	lib := cfg.Toolchain.Lib
	if lib == "" {
		lib = DefaultLibSubdir
	}
	lib64 := cfg.Toolchain.Lib64
	if lib64 == "" {
		lib64 = DefaultLib64Subdir
	}

	return map[string]string{
		EnvPath:          inst.BinDir(),
		EnvNodePath:      cfg.Root + string(filepath.ListSeparator) + inst.LibDir(),
		EnvLibraryPath:   filepath.Join(prefix, filepath.FromSlash(lib)),
		EnvLibraryPath64: filepath.Join(prefix, filepath.FromSlash(lib64)),
	}
}

// Prompt returns the interactive prompt for the given pair.
func Prompt(version, arch string) string {
	return "(node v" + version + " " + arch + `) \w \$ `
}

// RCFile renders a bash rc file that sources the user's startup files,
// re-exports env and sets the annotated prompt. Keys are written sorted.
func RCFile(version, arch string, env map[string]string) string {
	var b strings.Builder

	for _, name := range rcStartupFiles {
		p := `"$HOME/` + name + `"`
		b.WriteString("if [ -f " + p + " ]; then . " + p + "; fi\n")
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := shellQuote(env[k])
		if k == EnvPath {
			v += `:"$PATH"`
		}
		b.WriteString("export " + k + "=" + v + "\n")
	}

	b.WriteString("export PS1=" + shellQuote(Prompt(version, arch)) + "\n")
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
