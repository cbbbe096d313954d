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
	"encoding/json"
	"slices"
)

// Status is the lifecycle state of a pet in the store catalog.
//
// The type is deliberately open: a caller can send any string so that the
// server's validation of the enumeration can be exercised.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// Statuses returns every status the API documents.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusPending, StatusSold}
}

// Valid reports whether the status is one the API documents.
func (s Status) Valid() bool {
	return slices.Contains(Statuses(), s)
}

// Category groups pets in the catalog.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Tag is a lightweight marker attached to pets.
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Pet is the record exchanged with the /pet endpoints.
//
// A zero ID is omitted from the wire so the server assigns one on create.
type Pet struct {
	ID        int64     `json:"id,omitempty"`
	Category  *Category `json:"category,omitempty"`
	Name      string    `json:"name"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    Status    `json:"status,omitempty"`
}

// MarshalJSON always emits photoUrls, as an empty array when unset.
func (p Pet) MarshalJSON() ([]byte, error) {
	type pet Pet

	out := pet(p)
	if out.PhotoURLs == nil {
		out.PhotoURLs = []string{}
	}

	return json.Marshal(out)
}
