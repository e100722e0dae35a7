package observability

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"jenkins-pipeline-demo/internal/config"
)

// InitTracing installs the global tracer provider. With config.ExporterNone the
// global no-op provider is left in place.
func InitTracing(ctx context.Context, exporter, serviceName string) (func(context.Context) error, error) {
	var (
		spanExporter sdktrace.SpanExporter
		err          error
	)

	switch exporter {
	case config.ExporterOTLP:
		spanExporter, err = otlptracehttp.New(ctx)
	case config.ExporterStdout:
		spanExporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	case config.ExporterNone:
		return noopShutdown, nil
	default:
		return nil, errors.Newf("unknown trace exporter %q", exporter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "create trace exporter")
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "create resource")
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return provider.Shutdown, nil
}
