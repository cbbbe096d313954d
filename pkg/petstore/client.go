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

package petstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/petstore-qa/petstore-e2e/pkg/constants"
)

const (
	// RequestTimeout is the hard cap on every request, body read included.
	RequestTimeout = 30 * time.Second

	// bodyPreviewLimit bounds the response body logged at debug level.
	bodyPreviewLimit = 200

	tracerName = "github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// Client wraps the pet endpoints behind a single request path that injects
// the API key, logs every call and surfaces transport failures.
type Client struct {
	baseURL   string
	headers   http.Header
	doer      Doer
	logger    *slog.Logger
	tracer    trace.Tracer
	endpoints *Endpoints
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger         *slog.Logger
	doer           Doer
	tracerProvider trace.TracerProvider
}

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(doer Doer) Option {
	return func(o *clientOptions) {
		o.doer = doer
	}
}

// WithTracerProvider sets the provider used for request spans and trace
// propagation. Defaults to the global provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *clientOptions) {
		o.tracerProvider = provider
	}
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	parsed, err := url.ParseRequestURI(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	var options clientOptions

	for _, fn := range opts {
		if fn != nil {
			fn(&options)
		}
	}

	if options.logger == nil {
		options.logger = slog.New(slog.DiscardHandler)
	}

	if options.tracerProvider == nil {
		options.tracerProvider = otel.GetTracerProvider()
	}

	if options.doer == nil {
		options.doer = &http.Client{
			Timeout: RequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithTracerProvider(options.tracerProvider),
				otelhttp.WithPropagators(propagation.TraceContext{}),
			),
		}
	}

	headers := http.Header{}
	headers.Set(APIKeyHeader, apiKey)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", constants.UserAgent())

	return &Client{
		baseURL:   baseURL,
		headers:   headers,
		doer:      options.doer,
		logger:    options.logger,
		tracer:    options.tracerProvider.Tracer(tracerName),
		endpoints: NewEndpoints(),
	}, nil
}

// BaseURL returns the root every endpoint is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AddPet creates a pet. The server may ignore a supplied ID.
func (c *Client) AddPet(ctx context.Context, pet Pet, opts ...RequestOption) (*Response, error) {
	ctx, span := c.startSpan(ctx, "AddPet", attribute.String("pet.name", pet.Name))
	defer span.End()

	c.logger.InfoContext(ctx, "adding new pet", slog.String("pet.name", pet.Name))

	resp, err := c.do(ctx, http.MethodPost, c.endpoints.AddPet(), pet, opts...)
	endSpan(span, resp, err)

	return resp, err
}

// GetPet retrieves a pet by ID.
func (c *Client) GetPet(ctx context.Context, petID int64, opts ...RequestOption) (*Response, error) {
	ctx, span := c.startSpan(ctx, "GetPet", attribute.Int64("pet.id", petID))
	defer span.End()

	c.logger.InfoContext(ctx, "retrieving pet", slog.Int64("pet.id", petID))

	path, err := c.endpoints.GetPet(petID)
	if err != nil {
		endSpan(span, nil, err)
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, opts...)
	endSpan(span, resp, err)

	return resp, err
}

// UpdatePet replaces an existing pet with the full record supplied.
func (c *Client) UpdatePet(ctx context.Context, pet Pet, opts ...RequestOption) (*Response, error) {
	ctx, span := c.startSpan(ctx, "UpdatePet", attribute.Int64("pet.id", pet.ID), attribute.String("pet.name", pet.Name))
	defer span.End()

	c.logger.InfoContext(ctx, "updating pet", slog.Int64("pet.id", pet.ID), slog.String("pet.name", pet.Name))

	resp, err := c.do(ctx, http.MethodPut, c.endpoints.UpdatePet(), pet, opts...)
	endSpan(span, resp, err)

	return resp, err
}

// DeletePet removes a pet by ID.
func (c *Client) DeletePet(ctx context.Context, petID int64, opts ...RequestOption) (*Response, error) {
	ctx, span := c.startSpan(ctx, "DeletePet", attribute.Int64("pet.id", petID))
	defer span.End()

	c.logger.InfoContext(ctx, "deleting pet", slog.Int64("pet.id", petID))

	path, err := c.endpoints.DeletePet(petID)
	if err != nil {
		endSpan(span, nil, err)
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodDelete, path, nil, opts...)
	endSpan(span, resp, err)

	return resp, err
}

func (c *Client) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "petstore."+operation, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, resp *Response, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return
	}

	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
}

// do performs exactly one request: no retries, and no interpretation of
// the status code.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any, opts ...RequestOption) (*Response, error) {
	var options requestOptions

	for _, fn := range opts {
		if fn != nil {
			fn(&options)
		}
	}

	fullURL := c.baseURL + endpoint

	var body io.Reader

	headers := c.headers

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s %s request body: %w", method, endpoint, err)
		}

		body = bytes.NewReader(data)
		headers = MergeHeaders(headers, http.Header{"Content-Type": []string{"application/json"}})
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = MergeHeaders(headers, options.headers)

	traceID := traceIDFromContext(ctx)

	c.logger.InfoContext(ctx, "making request", slog.String("method", method), slog.String("url", fullURL))

	start := time.Now()
	resp, err := c.doer.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.Duration("duration", duration),
			slog.String("trace_id", traceID),
			slog.String("error", err.Error()),
		)

		return nil, &TransportError{Method: method, URL: fullURL, TraceID: traceID, Err: err}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "reading response body failed",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.Int("status", resp.StatusCode),
			slog.String("trace_id", traceID),
			slog.String("error", err.Error()),
		)

		return nil, &TransportError{Method: method, URL: fullURL, TraceID: traceID, Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.logger.InfoContext(ctx, "response received",
		slog.String("method", method),
		slog.String("url", fullURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
		slog.String("trace_id", traceID),
	)

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		text, truncated := preview(string(respBody), bodyPreviewLimit)
		c.logger.DebugContext(ctx, "response body", slog.String("body", text), slog.Bool("truncated", truncated))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Duration:   duration,
		TraceID:    traceID,
		body:       respBody,
	}, nil
}

func traceIDFromContext(ctx context.Context) string {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.HasTraceID() {
		return ""
	}

	return spanContext.TraceID().String()
}
