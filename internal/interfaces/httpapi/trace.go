package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("fantasy-cricket/internal/interfaces/httpapi")
	// noopSpan is safe to End without touching the request span.
	noopSpan = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for procedure handlers running under a traced
// request. Middleware and helper names get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !tracesHandler(name) || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func tracesHandler(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}
