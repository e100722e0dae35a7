package observability

import (
	"context"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"jenkins-pipeline-demo/internal/config"
)

// InitMetrics installs the global OTel meter provider. With config.ExporterNone the
// global no-op provider is left in place.
func InitMetrics(ctx context.Context, exporter, serviceName string) (func(context.Context) error, error) {
	var (
		metricExporter sdkmetric.Exporter
		err            error
	)

	switch exporter {
	case config.ExporterOTLP:
		metricExporter, err = otlpmetrichttp.New(ctx)
	case config.ExporterStdout:
		metricExporter, err = stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
	case config.ExporterNone:
		return noopShutdown, nil
	default:
		return nil, errors.Newf("unknown metric exporter %q", exporter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "create metric exporter")
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "create resource")
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(metricExporter),
		),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

// PrometheusHandler serves the default Prometheus registry, which holds the
// HTTP request metrics recorded by MetricsMiddleware.
func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
