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
	"net/http"
)

// APIKeyHeader carries the API key on every request.
const APIKeyHeader = "api_key"

// MergeHeaders returns a new header set starting from base with overrides
// applied on top. A key present in overrides replaces all of its values in
// base. Neither input is modified.
func MergeHeaders(base, overrides http.Header) http.Header {
	merged := base.Clone()
	if merged == nil {
		merged = http.Header{}
	}

	for key, values := range overrides {
		merged.Del(key)

		for _, value := range values {
			merged.Add(key, value)
		}
	}

	return merged
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers http.Header
}

// WithHeader sets a header on the request, replacing any client default.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}

		o.headers.Set(key, value)
	}
}

// WithHeaders applies a set of headers on top of the client defaults.
func WithHeaders(headers http.Header) RequestOption {
	return func(o *requestOptions) {
		o.headers = MergeHeaders(o.headers, headers)
	}
}
