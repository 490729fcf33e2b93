package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

const tracerName = "github.com/preston-bernstein/game-catalog-service/internal/http"

// Tracing opens a server span per request, named after the normalized route.
// Catalog spans started from the request context become its children, and the
// request-scoped logger gains the trace id.
func Tracing(tracer trace.Tracer, next http.Handler) http.Handler {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := normalizePath(r.URL.Path)
		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
		}
		if id := RequestIDFromContext(r.Context()); id != "" {
			attrs = append(attrs, attribute.String(logging.FieldRequestID, id))
		}

		ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			if logger := logging.FromContext(ctx, nil); logger != nil {
				ctx = logging.WithLogger(ctx, logger.With(logging.FieldTraceID, sc.TraceID().String()))
			}
		}

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.response.status_code", ww.status))
		if ww.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(ww.status))
		}
	})
}
