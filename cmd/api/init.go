package main

import (
	"context"

	"jenkins-pipeline-demo/internal/calculator"
	"jenkins-pipeline-demo/internal/config"
	"jenkins-pipeline-demo/internal/observability"
)

// initMetrics installs the meter provider and then the calculator instruments,
// which must be created against it.
func initMetrics(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, cfg.OTelExporter, cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// initLogging bridges zap to OTLP only when both OTLP export and log export are on.
func initLogging(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTelLogsEnabled || cfg.OTelExporter != config.ExporterOTLP {
		return func(context.Context) error { return nil }, nil
	}
	return observability.InitLogging(ctx, cfg.ServiceName)
}
