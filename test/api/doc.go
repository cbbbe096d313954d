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

// Package api provides end-to-end test utilities for the pet store API.
//
// # Separate Client Implementation
//
// The suites drive the API through petstore.Client, a small hand-written
// client, rather than one generated from the OpenAPI document. Responses are
// instead checked against that document by pkg/openapi, so the client and the
// published contract triangulate each other: a legitimate change to the API
// needs a compensating change in one of them.
//
// The client is deliberately thin:
//   - W3C trace context propagation for request correlation
//   - Structured request and response logging with trace IDs
//   - A fixed per-request timeout and no retries
//   - Direct access to HTTP status codes and response bodies
//
// Status codes are never interpreted by the client. Each spec states which
// codes it expects and which it tolerates from the shared demo backend, see
// StatusExpectation.
//
// # Backends
//
// By default the suites run against the configured base URL. Setting
// PETSTORE_STUB=true starts an in-process backend from pkg/server instead,
// which makes the suites hermetic.
package api
