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
	"github.com/google/uuid"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// UniqueName appends a short random suffix to prefix so names do not
// collide across concurrent runs against a shared backend.
func UniqueName(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet petstore.Pet
}

// NewPetPayload creates a new pet payload builder seeded with random data.
func NewPetPayload() *PetPayloadBuilder {
	return NewPetPayloadWith(petstore.GenerateOptions{})
}

// NewPetPayloadWith creates a new pet payload builder from generator options.
func NewPetPayloadWith(opts petstore.GenerateOptions) *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: petstore.GeneratePet(opts),
	}
}

// FromPet starts a builder from an existing record, typically one returned
// by the API, to derive an update payload.
func FromPet(pet petstore.Pet) *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: pet,
	}
}

// WithID sets the pet ID.
func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.pet.ID = id
	return b
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

// WithStatus sets the pet status, which need not be valid.
func (b *PetPayloadBuilder) WithStatus(status petstore.Status) *PetPayloadBuilder {
	b.pet.Status = status
	return b
}

// WithPhotoURLs replaces the photo URLs.
func (b *PetPayloadBuilder) WithPhotoURLs(urls ...string) *PetPayloadBuilder {
	b.pet.PhotoURLs = append([]string{}, urls...)
	return b
}

// WithoutCategory omits the category.
func (b *PetPayloadBuilder) WithoutCategory() *PetPayloadBuilder {
	b.pet.Category = nil
	return b
}

// WithoutTags omits the tags.
func (b *PetPayloadBuilder) WithoutTags() *PetPayloadBuilder {
	b.pet.Tags = nil
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() petstore.Pet {
	return b.pet
}

// MinimalPetPayload returns a pet carrying only the required fields.
func MinimalPetPayload() petstore.Pet {
	return petstore.Pet{
		Name:      UniqueName("MinimalPet"),
		PhotoURLs: []string{},
	}
}

// InvalidPetPayload returns a pet a validating backend must reject.
func InvalidPetPayload() petstore.Pet {
	return petstore.Pet{
		Name:      "",
		PhotoURLs: []string{},
		Status:    "invalid_status",
	}
}
