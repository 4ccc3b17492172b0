// Package matrix walks the version and architecture cross product one pair at a time.
package matrix

import (
	"context"
	"errors"

	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Span attribute keys.
const (
	AttrVersion  = "multinode.version"
	AttrArch     = "multinode.arch"
	AttrPlatform = "multinode.platform"
)

// Step is the work performed for one pair.
type Step func(ctx context.Context, pair domain.Pair, inst domain.Installation) error

// Walker visits pairs sequentially, each inside its own span.
type Walker struct {
	tracer ports.Tracer
}

// NewWalker creates a new Walker.
func NewWalker(tracer ports.Tracer) *Walker {
	return &Walker{tracer: tracer}
}

// Walk runs step for every pair of cfg in configured order.
// It stops at the first error unless the step wrapped it with Continue.
func (w *Walker) Walk(ctx context.Context, cfg *domain.Config, step Step) error {
	for pair := range cfg.Pairs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.visit(ctx, cfg, pair, step); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) visit(ctx context.Context, cfg *domain.Config, pair domain.Pair, step Step) error {
	inst := cfg.Installation(pair)

	ctx, span := w.tracer.Start(ctx, inst.Name())
	defer span.End()

	span.SetAttribute(AttrVersion, pair.Version)
	span.SetAttribute(AttrArch, pair.Arch)
	span.SetAttribute(AttrPlatform, inst.Platform)

	err := step(ctx, pair, inst)
	if err == nil {
		return nil
	}

	var ce *continueError
	if errors.As(err, &ce) {
		span.RecordError(ce.err)
		return nil
	}

	span.RecordError(err)
	return zerr.With(zerr.With(err, "version", pair.Version), "arch", pair.Arch)
}

// Continue marks err as a failure of the current pair that must not stop the walk.
// The error is recorded on the pair's span and dropped.
func Continue(err error) error {
	if err == nil {
		return nil
	}
	return &continueError{err: err}
}

type continueError struct {
	err error
}

func (e *continueError) Error() string { return e.err.Error() }

func (e *continueError) Unwrap() error { return e.err }
