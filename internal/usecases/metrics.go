package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Solve request outcomes.
const (
	SolveOutcome_Success       = "success"
	SolveOutcome_Invalid       = "invalid_request"
	SolveOutcome_Misconfigured = "misconfigured"
	SolveOutcome_Timeout       = "timeout"
	SolveOutcome_Upstream      = "upstream_error"
	SolveOutcome_EmptyReply    = "empty_reply"
	SolveOutcome_Internal      = "internal_error"
)

var (
	meter                     = otel.Meter("usecases")
	SolveRequests             metric.Int64Counter
	TagClassificationFailures metric.Int64Counter
	ModelCallDuration         metric.Float64Histogram
)

func init() {
	var err error
	SolveRequests, err = meter.Int64Counter(
		"solve_requests_total",
		metric.WithDescription("Total solve requests by outcome"),
	)
	if err != nil {
		panic(err)
	}

	TagClassificationFailures, err = meter.Int64Counter(
		"tag_classification_failures_total",
		metric.WithDescription("Classification calls that degraded to an empty tag list"),
	)
	if err != nil {
		panic(err)
	}

	ModelCallDuration, err = meter.Float64Histogram(
		"model_call_duration_seconds",
		metric.WithDescription("Duration of upstream model calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordSolveRequest records the outcome of a solve request.
func RecordSolveRequest(ctx context.Context, outcome string) {
	SolveRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordTagClassificationFailure records a failed classification call for role.
func RecordTagClassificationFailure(ctx context.Context, role domain.ModelRole) {
	TagClassificationFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", string(role)),
	))
}

// RecordModelCallDuration records how long a model call for role took.
func RecordModelCallDuration(ctx context.Context, role domain.ModelRole, d time.Duration) {
	ModelCallDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("role", string(role)),
	))
}
