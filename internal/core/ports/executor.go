package ports

import (
	"context"
	"io"

	"go.trai.ch/multinode/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout and stderr.
	//
	// cmd.Env is overlaid on the inherited process environment with PATH
	// prepended. It returns an error carrying the exit code if the command
	// cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error

	// Attach runs cmd in the foreground with the process's own stdio and
	// returns its exit status. An error is returned only when it cannot start.
	Attach(ctx context.Context, cmd *domain.Command) (int, error)
}
