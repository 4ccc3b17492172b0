package ports

import (
	"time"

	"go.trai.ch/multinode/internal/core/domain"
)

// Renderer is the abstraction for progress and report output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPairStart is called when work on one installation begins.
	OnPairStart(spanID, name string, startTime time.Time)

	// OnPairComplete is called when work on one installation ends.
	// err is nil on success.
	OnPairComplete(spanID string, endTime time.Time, err error)

	// Summary prints the outcome table of a test run.
	Summary(report *domain.RunReport) error
}
