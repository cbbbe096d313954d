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
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response is the unmodified outcome of a single request. The client never
// interprets the status code; that is left to the caller.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Duration is the wall clock time spent on the request.
	Duration time.Duration
	// TraceID identifies the request in backend logs, when tracing is enabled.
	TraceID string

	body []byte
}

// NewResponse wraps an already received response.
func NewResponse(statusCode int, header http.Header, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Header:     header,
		body:       body,
	}
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.body
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decoding response body (status %d): %w", r.StatusCode, err)
	}

	return nil
}

// Pet decodes the response body as a pet record.
func (r *Response) Pet() (*Pet, error) {
	var pet Pet
	if err := r.JSON(&pet); err != nil {
		return nil, err
	}

	return &pet, nil
}

// Fields decodes the response body as a generic object. Numbers are kept as
// json.Number so integer and floating point values can be told apart.
func (r *Response) Fields() (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(r.body))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decoding response fields (status %d): %w", r.StatusCode, err)
	}

	return fields, nil
}

// preview returns at most limit characters of s, and whether anything was cut.
func preview(s string, limit int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}

	return string(runes[:limit]), true
}
