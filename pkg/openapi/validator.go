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

package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

var ErrResponseInvalid = errors.New("response does not match api schema")

// ResponseValidator checks responses against the embedded API description.
type ResponseValidator struct {
	router routers.Router
}

// NewResponseValidator loads the API description and builds a router for it.
func NewResponseValidator(ctx context.Context) (*ResponseValidator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &ResponseValidator{
		router: router,
	}, nil
}

// ValidateResponse checks the status, headers and body of a response to the
// request method and endpoint path e.g. GET /pet/42. Status codes the
// operation does not declare are rejected.
func (v *ResponseValidator) ValidateResponse(ctx context.Context, method, endpoint string, response *petstore.Response) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating validation request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrResponseInvalid, method, endpoint, err)
	}

	header := response.Header
	if header == nil {
		header = http.Header{}
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: response.StatusCode,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(response.Body())),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s returned %d: %w", ErrResponseInvalid, method, endpoint, response.StatusCode, err)
	}

	return nil
}
