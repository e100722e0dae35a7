package calculator

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "jenkins-pipeline-demo/calculator"

// Metric names exported by the calculator.
const (
	MetricOperations = "calculator.operations.total"
	MetricDuration   = "calculator.operation.duration"
	MetricErrors     = "calculator.errors.total"
	MetricLastResult = "calculator.last_result"
)

type instruments struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
	errors     metric.Int64Counter
	lastResult metric.Float64Gauge
}

var inst instruments

// InitMetrics creates the calculator instruments on the global meter provider.
// Call it once at startup, after observability.InitMetrics.
func InitMetrics() error {
	i, err := newInstruments(otel.Meter(instrumentationName))
	if err != nil {
		return err
	}
	inst = i
	return nil
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var (
		i   instruments
		err error
	)

	i.operations, err = meter.Int64Counter(MetricOperations,
		metric.WithDescription("Calculator operations completed successfully"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return i, errors.Wrap(err, "creating operations counter")
	}

	i.duration, err = meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Time spent computing a calculator result"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.05, 0.1, 0.5, 1, 5),
	)
	if err != nil {
		return i, errors.Wrap(err, "creating duration histogram")
	}

	i.errors, err = meter.Int64Counter(MetricErrors,
		metric.WithDescription("Calculator requests rejected with an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return i, errors.Wrap(err, "creating error counter")
	}

	i.lastResult, err = meter.Float64Gauge(MetricLastResult,
		metric.WithDescription("Result of the most recent calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return i, errors.Wrap(err, "creating result gauge")
	}

	return i, nil
}

func (i instruments) recordSuccess(ctx context.Context, op string, elapsedMS, result float64) {
	if i.operations == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", op))
	i.operations.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsedMS, attrs)
	i.lastResult.Record(ctx, result, attrs)
}
