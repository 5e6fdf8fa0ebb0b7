package config

import (
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider creates the OpenTelemetry tracer provider for the
// process. Spans carry the service name as a resource attribute. With the
// "stdout" exporter finished spans are written to stderr as JSON; with "none"
// spans are recorded but not exported.
// The caller must Shutdown the provider.
func NewTracerProvider(cfg TracingConfig) (*sdktrace.TracerProvider, error) {
	return newTracerProvider(cfg, os.Stderr)
}

func newTracerProvider(cfg TracingConfig, out io.Writer) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracing resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	switch cfg.Exporter {
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	case "none", "":
	default:
		return nil, fmt.Errorf("unknown tracing exporter: %s", cfg.Exporter)
	}

	return sdktrace.NewTracerProvider(opts...), nil
}
