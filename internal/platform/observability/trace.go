package observability

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/sorvetes-mauriti/api/internal/platform/observability")

var propagator = propagation.TraceContext{}

// TraceMiddleware extracts incoming W3C trace context and starts a server span
// per request, making the trace id available to error envelopes and logs.
func TraceMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			method := SanitizeMethod(r.Method)
			route := SanitizeRoute(routePattern(r))
			ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", method, route),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", method),
					attribute.String("http.route", route),
				),
			)
			defer span.End()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
