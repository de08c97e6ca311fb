// Package telemetry records how long each slide stays on screen and exports
// the session as OpenTelemetry traces.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"agentdeck/internal/config"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "agentdeck/deck"

// Exporter owns the tracer provider. Without an endpoint it hands out a no-op
// tracer and Shutdown does nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter builds an OTLP/HTTP exporter for cfg.Endpoint.
func NewExporter(ctx context.Context, cfg config.TelemetryConfig) (*Exporter, error) {
	if cfg.Endpoint == "" {
		return &Exporter{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	opts, err := endpointOptions(cfg.Endpoint, cfg.Insecure)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "agentdeck"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporterWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// endpointOptions accepts either host:port or a base URL in the form of
// OTEL_EXPORTER_OTLP_ENDPOINT. A URL keeps its scheme, which decides TLS,
// and gets the traces path appended.
func endpointOptions(endpoint string, insecure bool) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid OTLP endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid OTLP endpoint %q: scheme must be http or https", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/traces"
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

// NewExporterWithProvider wraps an existing provider, e.g. one backed by a
// span recorder.
func NewExporterWithProvider(tp *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: tp,
		tracer:   tp.Tracer(instrumentationName),
	}
}

// Enabled reports whether spans go anywhere.
func (e *Exporter) Enabled() bool {
	return e != nil && e.provider != nil
}

// Tracer returns the tracer for deck spans.
func (e *Exporter) Tracer() oteltrace.Tracer {
	return e.tracer
}

// Shutdown flushes pending spans and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if !e.Enabled() {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
