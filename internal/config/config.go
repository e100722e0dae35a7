// Package config defines the service configuration and how it is loaded.
package config

import (
	"time"
)

// Supported values for Config.OTelExporter.
const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// ServiceName is reported to OpenTelemetry unless OTEL_SERVICE_NAME is set.
	ServiceName string `koanf:"service_name" validate:"required"`

	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"gte=0"`

	// OTelExporter selects where traces and metrics go: otlp, stdout or none.
	OTelExporter string `koanf:"otel_exporter" validate:"oneof=otlp stdout none"`

	// OTelLogsEnabled tees zap output to the OTLP log exporter.
	// Only honoured when OTelExporter is otlp.
	OTelLogsEnabled bool `koanf:"otel_logs_enabled"`

	// RateLimitRPS is the sustained request rate across all clients; 0 disables limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"gte=0"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		ServiceName:       "jenkins-pipeline-demo",
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		OTelExporter:      ExporterOTLP,
	}
}

// RateLimitEnabled reports whether the request rate limiter should be installed.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
