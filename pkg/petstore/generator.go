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
	"math/rand/v2"
	"strings"
	"sync"

	"k8s.io/utils/ptr"
)

// Bounds of the randomly generated identifiers.
const (
	MinGeneratedPetID = 100000
	MaxGeneratedPetID = 999999

	MinGeneratedCategoryID = 1
	MaxGeneratedCategoryID = 10

	MinGeneratedTagID = 1
	MaxGeneratedTagID = 20

	maxTagSuffix = 100
)

//nolint:gochecknoglobals
var (
	// PetNames are the candidates used when no name is requested.
	PetNames = []string{
		"Srecko", "Miki", "Pas", "Rex", "Mica",
		"Snoopy", "Micko", "Predrag", "Frndalo", "Bomboncic",
	}

	// CategoryNames are the candidates used when no category is requested.
	CategoryNames = []string{"Dogs", "Cats", "Birds", "Fish", "Rabbits", "Hamsters"}

	defaultGenerator = &Generator{}
)

// GenerateOptions selects the non-random parts of a generated pet. Unset
// pointers, or pointers to an empty string, mean "pick one at random".
type GenerateOptions struct {
	Name     *string
	Status   Status
	Category *string
}

// Generator produces randomized, schema conformant pet records.
type Generator struct {
	lock sync.Mutex
	rng  *rand.Rand
}

// NewGenerator returns a generator drawing from src, which makes output
// reproducible for a fixed seed.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng: rand.New(src),
	}
}

// GeneratePet returns a pet from the shared, randomly seeded generator.
func GeneratePet(opts GenerateOptions) Pet {
	return defaultGenerator.Pet(opts)
}

// Pet builds a pet record. The ID is advisory; servers may reassign it.
func (g *Generator) Pet(opts GenerateOptions) Pet {
	name := ptr.Deref(opts.Name, "")
	if name == "" {
		name = g.pick(PetNames)
	}

	category := ptr.Deref(opts.Category, "")
	if category == "" {
		category = g.pick(CategoryNames)
	}

	status := opts.Status
	if status == "" {
		status = StatusAvailable
	}

	lower := strings.ToLower(name)

	return Pet{
		ID:   g.between(MinGeneratedPetID, MaxGeneratedPetID),
		Name: name,
		Category: &Category{
			ID:   g.between(MinGeneratedCategoryID, MaxGeneratedCategoryID),
			Name: category,
		},
		PhotoURLs: []string{
			fmt.Sprintf("https://example.com/photos/%s_1.jpg", lower),
			fmt.Sprintf("https://example.com/photos/%s_2.jpg", lower),
		},
		Tags: []Tag{
			{
				ID:   g.between(MinGeneratedTagID, MaxGeneratedTagID),
				Name: fmt.Sprintf("tag_%d", g.between(1, maxTagSuffix)),
			},
		},
		Status: status,
	}
}

// between returns a uniformly distributed integer in [lo, hi].
func (g *Generator) between(lo, hi int64) int64 {
	return lo + g.int64N(hi-lo+1)
}

func (g *Generator) pick(candidates []string) string {
	return candidates[g.int64N(int64(len(candidates)))]
}

func (g *Generator) int64N(n int64) int64 {
	if g.rng == nil {
		return rand.Int64N(n)
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	return g.rng.Int64N(n)
}
