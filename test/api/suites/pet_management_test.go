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
package suites

import (
	"log/slog"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
	"github.com/petstore-qa/petstore-e2e/test/api"
)

var _ = Describe("Pet Management", func() {
	Context("When adding a new pet", func() {
		Describe("Given a valid status", Label("smoke"), func() {
			DescribeTable("should create the pet with that status",
				func(status petstore.Status) {
					payload := api.NewPetPayloadWith(petstore.GenerateOptions{Status: status}).Build()
					logger.Info("generated pet data", slog.Any("pet", payload))

					response, err := client.AddPet(ctx, payload)
					Expect(err).NotTo(HaveOccurred())
					Expect(response.StatusCode).To(Equal(http.StatusOK), "expected 200, got %d", response.StatusCode)

					api.ExpectConformsToSchema(ctx, validator, http.MethodPost, "/pet", response)

					created := api.ExpectValidPetStructure(response)
					api.ScheduleCleanup(client, logger, config, created.ID)

					Expect(created.Name).To(Equal(payload.Name), "pet name mismatch")
					Expect(created.Status).To(Equal(status), "status mismatch: expected %s", status)

					logger.Info("created pet",
						slog.Int64("pet.id", created.ID),
						slog.String("pet.name", created.Name),
						slog.String("pet.status", string(created.Status)),
					)
				},
				Entry("available", petstore.StatusAvailable),
				Entry("pending", petstore.StatusPending),
				Entry("sold", petstore.StatusSold),
			)
		})

		Describe("Given only the required fields", Label("smoke"), func() {
			It("should create the pet and echo its name", func() {
				payload := api.MinimalPetPayload()
				logger.Info("minimal pet data", slog.Any("pet", payload))

				response, err := client.AddPet(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK), "expected 200, got %d", response.StatusCode)

				api.ExpectConformsToSchema(ctx, validator, http.MethodPost, "/pet", response)

				created := api.ExpectValidPetStructure(response)
				api.ScheduleCleanup(client, logger, config, created.ID)

				Expect(created.Name).To(Equal(payload.Name), "pet name mismatch")
			})
		})

		Describe("Given invalid pet data", Label("negative"), func() {
			It("should reject the pet", func() {
				response, err := client.AddPet(ctx, api.InvalidPetPayload())
				Expect(err).NotTo(HaveOccurred())

				outcome, err := api.ExpectStatus(http.StatusBadRequest, http.StatusUnprocessableEntity).
					OrTolerate("demo backend accepted invalid data, a real API should validate input", http.StatusOK).
					Check(logger, "add invalid pet", response)
				Expect(err).NotTo(HaveOccurred())

				if outcome == api.OutcomeTolerated {
					if pet, err := response.Pet(); err == nil && pet.ID > 0 {
						api.ScheduleCleanup(client, logger, config, pet.ID)
					}
				}
			})
		})
	})

	Context("When retrieving a pet", func() {
		Describe("Given the pet exists", Label("smoke"), func() {
			It("should return the stored pet", func() {
				payload := api.NewPetPayload().Build()
				created := api.CreatePetWithCleanup(ctx, client, logger, config, payload)

				api.WaitForPropagation(config, logger)

				response, err := client.GetPet(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())

				outcome, err := api.ExpectStatus(http.StatusOK).
					OrTolerate("pet not found, acceptable for the demo environment", http.StatusNotFound).
					Check(logger, "get pet", response)
				Expect(err).NotTo(HaveOccurred())

				if outcome != api.OutcomeExpected {
					return
				}

				path, err := petstore.NewEndpoints().GetPet(created.ID)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectConformsToSchema(ctx, validator, http.MethodGet, path, response)

				fetched := api.ExpectValidPetStructure(response)
				Expect(fetched.ID).To(Equal(created.ID), "pet ID mismatch")
				Expect(fetched.Name).To(Equal(payload.Name), "pet name mismatch")
			})
		})

		Describe("Given the pet does not exist", Label("negative"), func() {
			It("should return not found", func() {
				response, err := client.GetPet(ctx, config.NonexistentPetID)
				Expect(err).NotTo(HaveOccurred())

				outcome, err := api.ExpectStatus(http.StatusNotFound).
					OrTolerate("demo backend returned a pet for an unassigned ID", http.StatusOK).
					Check(logger, "get nonexistent pet", response)
				Expect(err).NotTo(HaveOccurred())

				if outcome == api.OutcomeExpected {
					path, err := petstore.NewEndpoints().GetPet(config.NonexistentPetID)
					Expect(err).NotTo(HaveOccurred())

					api.ExpectConformsToSchema(ctx, validator, http.MethodGet, path, response)
				}
			})
		})
	})

	Context("When updating a pet", func() {
		Describe("Given the pet exists", Label("regression"), func() {
			It("should change name and status while preserving the ID", func() {
				created := api.CreatePetWithCleanup(ctx, client, logger, config, api.NewPetPayload().Build())

				update := api.FromPet(petstore.Pet{}).
					WithID(created.ID).
					WithName("UpdatedPetName").
					WithStatus(petstore.StatusSold).
					WithPhotoURLs().
					Build()

				response, err := client.UpdatePet(ctx, update)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK), "expected 200, got %d", response.StatusCode)

				api.ExpectConformsToSchema(ctx, validator, http.MethodPut, "/pet", response)

				updated := api.ExpectValidPetStructure(response)
				Expect(updated.ID).To(Equal(created.ID), "pet ID should remain unchanged")
				Expect(updated.Name).To(Equal(update.Name), "pet name not updated")
				Expect(updated.Status).To(Equal(update.Status), "pet status not updated")
			})
		})

		Describe("Given the pet does not exist", Label("negative"), func() {
			It("should return not found", func() {
				update := api.FromPet(petstore.Pet{}).
					WithID(config.NonexistentPetID).
					WithName("NonExistentPet").
					WithStatus(petstore.StatusAvailable).
					WithPhotoURLs().
					Build()

				response, err := client.UpdatePet(ctx, update)
				Expect(err).NotTo(HaveOccurred())

				outcome, err := api.ExpectStatus(http.StatusNotFound).
					OrTolerate("demo backend created a new pet instead of returning 404", http.StatusOK).
					Check(logger, "update nonexistent pet", response)
				Expect(err).NotTo(HaveOccurred())

				if outcome == api.OutcomeTolerated {
					api.ScheduleCleanup(client, logger, config, config.NonexistentPetID)
				}
			})
		})
	})
})
