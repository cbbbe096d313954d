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
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrEmptyBaseURL   = errors.New("petstore base URL is required")
	ErrInvalidBaseURL = errors.New("petstore base URL must be an absolute http(s) URL")
)

// TransportError is returned when no valid HTTP response was received:
// connection refused, DNS failure, timeout or a truncated body.
type TransportError struct {
	Method  string
	URL     string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: http request failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was the request deadline expiring.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
