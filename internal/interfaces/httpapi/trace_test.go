package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestTracesHandler(t *testing.T) {
	assert.True(t, tracesHandler("httpapi.Handler.JoinContest"))
	assert.False(t, tracesHandler("httpapi.RequestLogging"))
	assert.False(t, tracesHandler("httpapi.writeJSON"))
}

func TestStartSpan_WithoutParentReturnsSameContext(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.ListMatches")
	span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestStartSpan_SkipsNonHandlerNames(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	got, span := startSpan(ctx, "httpapi.CORS")
	span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())

	_, handlerSpan := startSpan(ctx, "httpapi.Handler.GetMatch")
	defer handlerSpan.End()
	assert.Equal(t, parent.TraceID(), handlerSpan.SpanContext().TraceID())
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "} {
		assert.Falsef(t, shouldTraceRequest(path), "path %q", path)
	}
	for _, path := range []string{"/rpc/matches.list", "/rpc/contests.join", "/", "/oauth/callback"} {
		assert.Truef(t, shouldTraceRequest(path), "path %q", path)
	}
}
