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
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// AddPet returns the path for creating a pet.
func (e *Endpoints) AddPet() string {
	return "/pet"
}

// UpdatePet returns the path for replacing a pet.
func (e *Endpoints) UpdatePet() string {
	return "/pet"
}

// GetPet returns the path for reading a pet by id.
func (e *Endpoints) GetPet(petID int64) (string, error) {
	return e.pet(petID)
}

// DeletePet returns the path for deleting a pet by id.
func (e *Endpoints) DeletePet(petID int64) (string, error) {
	return e.pet(petID)
}

// pet encodes the petId path parameter the same way generated clients do.
func (e *Endpoints) pet(petID int64) (string, error) {
	param, err := runtime.StyleParamWithLocation("simple", false, "petId", runtime.ParamLocationPath, petID)
	if err != nil {
		return "", fmt.Errorf("encoding petId parameter: %w", err)
	}

	return "/pet/" + param, nil
}
