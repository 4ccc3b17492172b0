package domain

import (
	"path/filepath"
	"strings"
)

// Installation is one extracted runtime distribution. It is derived, never
// stored: the directory layout under TargetDir is the only registry.
type Installation struct {
	Version   string
	Platform  string
	Arch      string
	TargetDir string
}

// Name returns the distribution name, e.g. node-v0.10.48-sunos-x64.
func (i Installation) Name() string {
	return "node-v" + i.Version + "-" + i.Platform + "-" + i.Arch
}

// ArchiveName returns the file name of the distribution archive.
func (i Installation) ArchiveName() string {
	return i.Name() + ArchiveExt
}

// URL returns the download location of the archive below base.
func (i Installation) URL(base string) string {
	return strings.TrimSuffix(base, "/") + "/v" + i.Version + "/" + i.ArchiveName()
}

// ChecksumsURL returns the location of the SHASUMS256.txt published next to the archive.
func (i Installation) ChecksumsURL(base string) string {
	return strings.TrimSuffix(base, "/") + "/v" + i.Version + "/" + ChecksumsFileName
}

// Dir returns the installation directory.
func (i Installation) Dir() string {
	return filepath.Join(i.TargetDir, i.Name())
}

// BinDir returns the directory holding the runtime executables.
func (i Installation) BinDir() string {
	return filepath.Join(i.Dir(), BinDirName)
}

// LibDir returns the directory native artifacts are relocated into.
func (i Installation) LibDir() string {
	return filepath.Join(i.Dir(), LibDirName)
}

// Executable returns the path of the runtime binary.
func (i Installation) Executable() string {
	return filepath.Join(i.BinDir(), ExecutableName)
}

// ArtifactPath returns where the given artifact lives once relocated.
func (i Installation) ArtifactPath(artifact Artifact) string {
	return filepath.Join(i.LibDir(), artifact.Base())
}
