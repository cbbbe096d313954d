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

// Package openapi holds the pet store API description and validates live
// responses against it.
package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	//go:embed petstore.yaml
	document []byte

	ErrDocument = errors.New("openapi document invalid")
)

// Document returns the raw embedded API description.
func Document() []byte {
	return document
}

// Load parses and validates the embedded API description.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	return doc, nil
}
