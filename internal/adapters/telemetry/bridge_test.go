package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/multinode/internal/adapters/telemetry"
	"go.trai.ch/multinode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnPairStart(gomock.Any(), "node-v1.0.0-sunos-x64", gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "node-v1.0.0-sunos-x64")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_NilRenderer(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "pair")
	span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
		bridge.OnEnd(rwSpan)
	}
}

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnPairComplete(gomock.Any(), gomock.Any(), nil).Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "pair")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	var got error
	mockRenderer.EXPECT().OnPairComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Time, err error) { got = err }).
		Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "pair")
	span.SetStatus(codes.Error, "runner exited with 1")
	span.End()

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)

	require.Error(t, got)
	assert.Equal(t, "runner exited with 1", got.Error())
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}
