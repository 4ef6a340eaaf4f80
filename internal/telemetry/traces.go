package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cleitonmarx/symbiont-ai-mathsolver"

// ErrorKindKey is the span attribute naming the domain error class of a failure.
const ErrorKindKey = attribute.Key("mathsolver.error.kind")

var (
	tracer = otel.Tracer(instrumentationName)
)

// SpanNameFormatter names HTTP spans after the matched route pattern,
// falling back to method and path for unmatched requests.
func SpanNameFormatter(_ string, r *http.Request) string {
	return getHttpRoute(r)
}

func getHttpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// RecordErrorAndStatus records err on the span, tags it with its ErrorKind and
// sets the status to Error. It reports whether an error was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(ErrorKindKey.String(ErrorKind(err)))
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}

// ErrorKind classifies err by the domain error it carries.
func ErrorKind(err error) string {
	var (
		validationErr    *domain.ValidationErr
		notFoundErr      *domain.NotFoundErr
		configurationErr *domain.ConfigurationErr
		timeoutErr       *domain.UpstreamTimeoutErr
		statusErr        *domain.UpstreamStatusErr
		transportErr     *domain.UpstreamTransportErr
		emptyReplyErr    *domain.EmptyReplyErr
		internalErr      *domain.InternalErr
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &configurationErr):
		return "configuration"
	case errors.As(err, &timeoutErr):
		return "upstream_timeout"
	case errors.As(err, &statusErr):
		return "upstream_status"
	case errors.As(err, &transportErr):
		return "upstream_transport"
	case errors.As(err, &emptyReplyErr):
		return "empty_reply"
	case errors.As(err, &internalErr):
		return "internal"
	}
	return "unknown"
}

// Middleware returns an HTTP middleware that instruments handlers with
// OpenTelemetry. Health probes are not traced.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithFilter(isTraced),
		otelhttp.WithMetricAttributesFn(
			WithHttpMetricAttributes,
		),
	)
}

func isTraced(r *http.Request) bool {
	return r.URL.Path != "/health"
}

// getCallerName returns "package::Func" for the function skip frames up the stack.
func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")

	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
	)
	return tracerProvider, otlpExporter, nil
}
