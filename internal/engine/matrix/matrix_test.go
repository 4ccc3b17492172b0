package matrix_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/multinode/internal/core/ports/mocks"
	"go.trai.ch/multinode/internal/engine/matrix"
	"go.uber.org/mock/gomock"
)

func testConfig() *domain.Config {
	cfg := domain.DefaultConfig("/r")
	cfg.Versions = []string{"0.10.48", "1.0.0"}
	cfg.Arches = []string{"x64", "x86"}
	return cfg
}

type walkerMocks struct {
	tracer *mocks.MockTracer
	span   *mocks.MockSpan
}

func setupWalker(t *testing.T) (*matrix.Walker, walkerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := walkerMocks{
		tracer: mocks.NewMockTracer(ctrl),
		span:   mocks.NewMockSpan(ctrl),
	}

	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	return matrix.NewWalker(m.tracer), m
}

func TestWalker_VisitsPairsInOrder(t *testing.T) {
	w, m := setupWalker(t)
	m.span.EXPECT().End().Times(4)

	var visited []string
	err := w.Walk(context.Background(), testConfig(), func(_ context.Context, p domain.Pair, inst domain.Installation) error {
		visited = append(visited, p.String()+" "+inst.Name())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"0.10.48 x64 node-v0.10.48-sunos-x64",
		"0.10.48 x86 node-v0.10.48-sunos-x86",
		"1.0.0 x64 node-v1.0.0-sunos-x64",
		"1.0.0 x86 node-v1.0.0-sunos-x86",
	}, visited)
}

func TestWalker_StopsAtFirstError(t *testing.T) {
	w, m := setupWalker(t)
	m.span.EXPECT().End().Times(2)
	m.span.EXPECT().RecordError(gomock.Any()).Times(1)

	calls := 0
	err := w.Walk(context.Background(), testConfig(), func(_ context.Context, p domain.Pair, _ domain.Installation) error {
		calls++
		if p.Arch == "x86" {
			return errors.New("download failed")
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.ErrorContains(t, err, "download failed")
}

func TestWalker_ContinueKeepsWalking(t *testing.T) {
	w, m := setupWalker(t)
	m.span.EXPECT().End().Times(4)

	var recorded []error
	m.span.EXPECT().RecordError(gomock.Any()).Do(func(err error) {
		recorded = append(recorded, err)
	}).Times(2)

	calls := 0
	err := w.Walk(context.Background(), testConfig(), func(_ context.Context, p domain.Pair, _ domain.Installation) error {
		calls++
		if p.Arch == "x86" {
			return matrix.Continue(errors.New("runner failed"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	require.Len(t, recorded, 2)
	assert.EqualError(t, recorded[0], "runner failed")
}

func TestWalker_CanceledContext(t *testing.T) {
	w, _ := setupWalker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Walk(ctx, testConfig(), func(context.Context, domain.Pair, domain.Installation) error {
		t.Fatal("step must not run")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestContinue_Nil(t *testing.T) {
	assert.NoError(t, matrix.Continue(nil))
}
