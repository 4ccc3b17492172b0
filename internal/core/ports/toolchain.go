package ports

import "context"

// Toolchain introspects the system compiler.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Prefix returns the installation prefix the compiler was configured with.
	Prefix(ctx context.Context, compiler string) (string, error)
}
