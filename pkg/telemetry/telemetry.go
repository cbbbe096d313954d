/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package telemetry configures OpenTelemetry tracing for test runs so that
// API calls can be correlated with backend traces.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/petstore-qa/petstore-e2e/pkg/constants"
)

// ShutdownFunc flushes pending spans and releases exporters.
type ShutdownFunc func(context.Context) error

type options struct {
	endpoint string
	insecure bool
	writer   io.Writer
}

// Option configures Init.
type Option func(*options)

// WithOTLPEndpoint exports spans over OTLP/HTTP to host:port. Defaults to
// OTEL_EXPORTER_OTLP_ENDPOINT.
func WithOTLPEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithInsecure disables TLS for the OTLP exporter.
func WithInsecure() Option {
	return func(o *options) {
		o.insecure = true
	}
}

// WithWriter exports spans as JSON to w, typically a log file.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// Init builds a tracer provider. With no exporter configured spans are still
// recorded, so trace IDs are available for logging, but go nowhere.
func Init(ctx context.Context, serviceName string, opts ...Option) (*sdktrace.TracerProvider, ShutdownFunc, error) {
	o := options{
		endpoint: strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		insecure: os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
	}

	for _, fn := range opts {
		fn(&o)
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", constants.Version),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating telemetry resource: %w", err)
	}

	providerOptions := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if o.endpoint != "" {
		exporterOptions := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(o.endpoint),
		}

		if o.insecure {
			exporterOptions = append(exporterOptions, otlptracehttp.WithInsecure())
		}

		exporter, err := otlptracehttp.New(ctx, exporterOptions...)
		if err != nil {
			return nil, nil, fmt.Errorf("creating otlp trace exporter: %w", err)
		}

		providerOptions = append(providerOptions, sdktrace.WithBatcher(exporter))
	}

	if o.writer != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(o.writer))
		if err != nil {
			return nil, nil, fmt.Errorf("creating stdout trace exporter: %w", err)
		}

		providerOptions = append(providerOptions, sdktrace.WithSyncer(exporter))
	}

	provider := sdktrace.NewTracerProvider(providerOptions...)

	return provider, provider.Shutdown, nil
}
