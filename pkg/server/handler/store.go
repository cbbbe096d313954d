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

package handler

import (
	"slices"
	"sync"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// Store is an in-memory pet catalog.
type Store struct {
	lock   sync.Mutex
	pets   map[int64]petstore.Pet
	nextID int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		pets:   map[int64]petstore.Pet{},
		nextID: 1,
	}
}

// Create stores a copy of pet under a freshly assigned ID, ignoring any ID
// the caller supplied.
func (s *Store) Create(pet petstore.Pet) petstore.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet.ID = s.nextID
	s.nextID++

	s.pets[pet.ID] = clonePet(pet)

	return clonePet(pet)
}

// Replace overwrites an existing pet, returning false if the ID is unknown.
func (s *Store) Replace(pet petstore.Pet) (petstore.Pet, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.pets[pet.ID]; !ok {
		return petstore.Pet{}, false
	}

	s.pets[pet.ID] = clonePet(pet)

	return clonePet(pet), true
}

// Get returns a copy of the pet with the given ID.
func (s *Store) Get(id int64) (petstore.Pet, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet, ok := s.pets[id]
	if !ok {
		return petstore.Pet{}, false
	}

	return clonePet(pet), true
}

// Delete removes the pet with the given ID, returning false if it is unknown.
func (s *Store) Delete(id int64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.pets[id]; !ok {
		return false
	}

	delete(s.pets, id)

	return true
}

// Len returns the number of stored pets.
func (s *Store) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.pets)
}

func clonePet(pet petstore.Pet) petstore.Pet {
	if pet.Category != nil {
		category := *pet.Category
		pet.Category = &category
	}

	pet.PhotoURLs = slices.Clone(pet.PhotoURLs)
	pet.Tags = slices.Clone(pet.Tags)

	return pet
}
