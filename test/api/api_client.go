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

package api

import (
	"log/slog"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// NewAPIClientWithConfig returns a fresh client for the configured backend.
func NewAPIClientWithConfig(config *TestConfig, logger *slog.Logger, opts ...petstore.Option) (*petstore.Client, error) {
	return newAPIClientWithConfig(config, config.BaseURL, logger, opts...)
}

// NewAPIClientForURL returns a client for an explicit base URL, e.g. an
// in-process backend, with the rest of the configuration unchanged.
func NewAPIClientForURL(config *TestConfig, baseURL string, logger *slog.Logger, opts ...petstore.Option) (*petstore.Client, error) {
	return newAPIClientWithConfig(config, baseURL, logger, opts...)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, logger *slog.Logger, opts ...petstore.Option) (*petstore.Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.Info("initializing pet store client", slog.String("base_url", baseURL))

	options := append([]petstore.Option{petstore.WithLogger(logger)}, opts...)

	client, err := petstore.NewClient(baseURL, config.APIKey, options...)
	if err != nil {
		return nil, err
	}

	logger.Info("pet store client ready")

	return client, nil
}
