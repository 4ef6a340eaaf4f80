package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// InitOpenTelemetry sets up OpenTelemetry tracing and metrics. Each signal is
// exported over OTLP HTTP only when its endpoint is configured.
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	ServiceName     string      `config:"OTEL_SERVICE_NAME" default:"mathsolver"`
	ServiceVersion  string      `config:"SERVICE_VERSION" default:"dev"`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	shutdowns       []shutdownStep
}

// shutdownStep is one provider or exporter to stop on Close, in order.
type shutdownStep struct {
	name string
	fn   func(context.Context) error
}

// Initialize sets up OpenTelemetry tracing and exporting.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(newPropagator())

	res, err := newAppResource(ctx, o.ServiceName, o.ServiceVersion)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		tp, se, err := newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(tp)
		o.shutdowns = append(o.shutdowns,
			shutdownStep{name: "tracer provider", fn: tp.Shutdown},
			shutdownStep{name: "span exporter", fn: se.Shutdown},
		)
	}

	if o.MetricsEndpoint != "-" {
		mp, me, err := newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(mp)
		o.shutdowns = append(o.shutdowns,
			shutdownStep{name: "meter provider", fn: mp.Shutdown},
			shutdownStep{name: "metric exporter", fn: me.Shutdown},
		)
	}

	return ctx, nil
}

// Close flushes and shuts down the providers and exporters that were started.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, step := range o.shutdowns {
		if err := step.fn(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down %s: %v", step.name, err)
		}
	}
}

// InitHttpClient initializes the HTTP client used for model calls, instrumented
// with OpenTelemetry and with optional retries (off by default).
type InitHttpClient struct {
	Logger   *log.Logger `resolve:""`
	RetryMax int         `config:"LLM_HTTP_RETRY_MAX" default:"0"`
}

// Initialize registers the instrumented *http.Client.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.RetryMax = i.RetryMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	// keep the last upstream response instead of a "giving up" error
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = i.Logger

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(stdClient)
	return ctx, nil
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, name, version string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// dontRetry500StatusPolicy wraps policy so that a model endpoint answering 500
// is not retried, nor is any request whose context is done.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
