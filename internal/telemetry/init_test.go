package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	tests := map[string]struct {
		tracesEndpoint  string
		metricsEndpoint string
		expectedSteps   []string
	}{
		"exporters-disabled": {
			tracesEndpoint:  "-",
			metricsEndpoint: "-",
		},
		"traces-only": {
			tracesEndpoint:  "http://localhost:4318",
			metricsEndpoint: "-",
			expectedSteps:   []string{"tracer provider", "span exporter"},
		},
		"traces-and-metrics": {
			tracesEndpoint:  "http://localhost:4318",
			metricsEndpoint: "http://localhost:4318",
			expectedSteps:   []string{"tracer provider", "span exporter", "meter provider", "metric exporter"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			init := &InitOpenTelemetry{
				Logger:          log.New(&strings.Builder{}, "", 0),
				ServiceName:     "mathsolver",
				ServiceVersion:  "test",
				TracesEndpoint:  tt.tracesEndpoint,
				MetricsEndpoint: tt.metricsEndpoint,
			}
			ctx, err := init.Initialize(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, ctx)

			var steps []string
			for _, s := range init.shutdowns {
				steps = append(steps, s.name)
			}
			assert.Equal(t, tt.expectedSteps, steps)

			init.Close()
		})
	}
}

func TestInitOpenTelemetry_Close_LogsFailures(t *testing.T) {
	var buf strings.Builder
	init := &InitOpenTelemetry{
		Logger: log.New(&buf, "", 0),
		shutdowns: []shutdownStep{
			{name: "tracer provider", fn: func(context.Context) error { return errors.New("flush failed") }},
			{name: "span exporter", fn: func(context.Context) error { return nil }},
		},
	}

	init.Close()
	assert.Equal(t, "InitOpenTelemetry: error shutting down tracer provider: flush failed\n", buf.String())
}

func TestNewAppResource(t *testing.T) {
	res, err := newAppResource(context.Background(), "mathsolver", "1.2.3")
	require.NoError(t, err)

	name, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "mathsolver", name.AsString())

	version, ok := res.Set().Value(semconv.ServiceVersionKey)
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version.AsString())
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 0}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client.Transport)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx         context.Context
		resp        *http.Response
		err         error
		expectRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"bad-gateway": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusBadGateway},
			expectRetry: true,
		},
		"success": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusOK},
		},
		"transport-error-without-response": {
			ctx:         context.Background(),
			err:         errors.New("connection reset"),
			expectRetry: true,
		},
		"context-canceled": {
			ctx: canceled,
			err: context.Canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.expectRetry, retry)
		})
	}
}
