package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// Artifact is the native addon produced by the build step.
type Artifact struct {
	// Name is the slash separated path relative to the root, e.g. build/addon.node.
	Name string
}

// NewArtifact derives the artifact from a project entry point.
// A leading "./" is dropped and ".node" is appended unless already present.
func NewArtifact(entryPoint string) (Artifact, error) {
	name := strings.TrimSpace(entryPoint)
	name = strings.TrimPrefix(name, "./")
	if name == "" || name == "." {
		return Artifact{}, ErrMissingEntryPoint
	}
	if !strings.HasSuffix(name, AddonExt) {
		name += AddonExt
	}
	return Artifact{Name: path.Clean(name)}, nil
}

// Base returns the file name of the artifact.
func (a Artifact) Base() string {
	return path.Base(a.Name)
}

// PathIn returns the artifact location below root.
func (a Artifact) PathIn(root string) string {
	return filepath.Join(root, filepath.FromSlash(a.Name))
}
