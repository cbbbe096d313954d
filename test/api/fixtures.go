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
	"log/slog"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// CreatePet creates a pet, requiring the backend to accept it, and returns
// the record the backend stored.
func CreatePet(ctx context.Context, client *petstore.Client, logger *slog.Logger, pet petstore.Pet) *petstore.Pet {
	response, err := client.AddPet(ctx, pet)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.StatusCode).To(Equal(http.StatusOK), "failed to create test pet: %s", response.Text())

	created := ExpectValidPetStructure(response)

	logger.Info("created test pet", slog.Int64("pet.id", created.ID), slog.String("pet.name", created.Name))

	return created
}

// CreatePetWithCleanup creates a pet and, when cleanup is enabled, schedules
// its deletion whether the spec passes or fails. Otherwise the record is left
// on the backend.
func CreatePetWithCleanup(ctx context.Context, client *petstore.Client, logger *slog.Logger, config *TestConfig, pet petstore.Pet) *petstore.Pet {
	created := CreatePet(ctx, client, logger, pet)

	ScheduleCleanup(client, logger, config, created.ID)

	return created
}

// ScheduleCleanup deletes the pet once the spec completes, when cleanup is
// enabled.
func ScheduleCleanup(client *petstore.Client, logger *slog.Logger, config *TestConfig, petID int64) {
	if !config.CleanupPets {
		return
	}

	DeferCleanup(func(ctx SpecContext) {
		logger.Info("cleaning up pet", slog.Int64("pet.id", petID))

		response, err := client.DeletePet(ctx, petID)
		if err != nil {
			logger.Warn("failed to delete pet", slog.Int64("pet.id", petID), slog.String("error", err.Error()))
			return
		}

		// The demo backend may already have dropped the record.
		if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNotFound {
			logger.Warn("unexpected status deleting pet", slog.Int64("pet.id", petID), slog.Int("status", response.StatusCode))
		}
	})
}

// WaitForPropagation pauses so that a write is visible to subsequent reads
// on an eventually consistent backend.
func WaitForPropagation(config *TestConfig, logger *slog.Logger) {
	if config.PropagationDelay <= 0 {
		return
	}

	logger.Info("waiting for propagation", slog.Duration("delay", config.PropagationDelay))
	time.Sleep(config.PropagationDelay)
}
