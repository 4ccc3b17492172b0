package ports

// ProjectReader reads the project descriptor.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectReader interface {
	// EntryPoint returns the main field of the descriptor at path.
	EntryPoint(path string) (string, error)
}
