package domain

import "iter"

// Config is the immutable description of every installation the tool manages.
// It is built once per invocation by a ports.ConfigLoader.
type Config struct {
	// Root is the absolute directory the tool operates from.
	Root string
	// Versions lists the runtime versions in the order they are processed.
	Versions []string
	// Arches lists the CPU architectures in the order they are processed.
	Arches []string
	// Platform is the fixed platform identifier used in archive names.
	Platform string
	// BaseURL is the distribution root, e.g. https://nodejs.org/dist.
	BaseURL string
	// TargetDir is the absolute directory holding all installations.
	TargetDir string
	// Verify enables SHA-256 verification of downloaded archives.
	Verify bool
	// Project is the absolute path of the project descriptor (package.json).
	Project string
	// Shell is the interactive shell started by the env command.
	Shell string

	Toolchain Toolchain
	Test      TestSettings
	Build     BuildSettings
}

// Toolchain describes how the system compiler is introspected.
type Toolchain struct {
	Compiler string
	Lib      string
	Lib64    string
}

// TestSettings configures the test runner.
type TestSettings struct {
	Command []string
	Files   string
}

// BuildSettings configures the native addon build.
type BuildSettings struct {
	Clean   []string
	Command []string
}

// Pair is one (version, architecture) combination of the configured cross product.
type Pair struct {
	Version string
	Arch    string
}

// String renders the pair the way the versions command prints it.
func (p Pair) String() string {
	return p.Version + " " + p.Arch
}

// Pairs yields Versions x Arches in configured order, versions outermost.
// The sequence can be ranged over any number of times.
func (c *Config) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, v := range c.Versions {
			for _, a := range c.Arches {
				if !yield(Pair{Version: v, Arch: a}) {
					return
				}
			}
		}
	}
}

// Installation returns the installation addressed by the given pair.
func (c *Config) Installation(p Pair) Installation {
	return Installation{
		Version:   p.Version,
		Platform:  c.Platform,
		Arch:      p.Arch,
		TargetDir: c.TargetDir,
	}
}

// HasVersion reports whether version is configured, by exact match.
func (c *Config) HasVersion(version string) bool {
	return indexOf(c.Versions, version) >= 0
}

// HasArch reports whether arch is configured, by exact match.
func (c *Config) HasArch(arch string) bool {
	return indexOf(c.Arches, arch) >= 0
}

// DefaultArch returns the first configured architecture.
func (c *Config) DefaultArch() string {
	if len(c.Arches) == 0 {
		return ""
	}
	return c.Arches[0]
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}
