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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/json"

	. "github.com/onsi/gomega"

	"github.com/petstore-qa/petstore-e2e/pkg/openapi"
	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// ExpectValidPetStructure checks the response is a pet with a positive
// integer ID and a non-empty name, and returns it decoded.
func ExpectValidPetStructure(response *petstore.Response) *petstore.Pet {
	fields, err := response.Fields()
	Expect(err).NotTo(HaveOccurred(), "response body is not a JSON object: %s", response.Text())

	Expect(fields).To(HaveKey("id"), "response missing required field: id")
	Expect(fields).To(HaveKey("name"), "response missing required field: name")

	id, ok := fields["id"].(json.Number)
	Expect(ok).To(BeTrue(), "pet ID must be a number, got %T", fields["id"])

	value, err := id.Int64()
	Expect(err).NotTo(HaveOccurred(), "pet ID must be an integer, got %s", id)
	Expect(value).To(BeNumerically(">", 0), "pet ID must be positive")

	name, ok := fields["name"].(string)
	Expect(ok).To(BeTrue(), "pet name must be a string, got %T", fields["name"])
	Expect(name).NotTo(BeEmpty(), "pet name cannot be empty")

	pet, err := response.Pet()
	Expect(err).NotTo(HaveOccurred())

	return pet
}

// ExpectConformsToSchema checks the response against the published API
// description. A nil validator disables the check.
func ExpectConformsToSchema(ctx context.Context, validator *openapi.ResponseValidator, method, endpoint string, response *petstore.Response) {
	if validator == nil {
		return
	}

	Expect(validator.ValidateResponse(ctx, method, endpoint, response)).To(Succeed())
}
