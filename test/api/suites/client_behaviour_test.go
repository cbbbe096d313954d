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
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
	"github.com/petstore-qa/petstore-e2e/test/api"
)

var _ = Describe("Client Behaviour", func() {
	Context("When the backend is unreachable", func() {
		Describe("Given a closed listener", Label("negative"), func() {
			It("should surface a transport error without a response", func() {
				unreachable := httptest.NewServer(http.NotFoundHandler())
				unreachable.Close()

				unreachableClient, err := api.NewAPIClientForURL(config, unreachable.URL, logger)
				Expect(err).NotTo(HaveOccurred())

				response, err := unreachableClient.GetPet(ctx, 1)
				Expect(response).To(BeNil())

				var transportErr *petstore.TransportError
				Expect(errors.As(err, &transportErr)).To(BeTrue(), "expected a transport error, got %v", err)
				Expect(transportErr.Method).To(Equal(http.MethodGet))
			})
		})
	})

	Context("When a request carries its own headers", func() {
		Describe("Given an overriding API key", Label("regression"), func() {
			It("should send the caller's key in place of the configured one", func() {
				received := make(chan string, 1)

				echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					received <- r.Header.Get(petstore.APIKeyHeader)

					w.WriteHeader(http.StatusNotFound)
				}))
				DeferCleanup(echo.Close)

				echoClient, err := api.NewAPIClientForURL(config, echo.URL, logger)
				Expect(err).NotTo(HaveOccurred())

				response, err := echoClient.GetPet(ctx, 1, petstore.WithHeader(petstore.APIKeyHeader, "override"))
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusNotFound))
				Expect(<-received).To(Equal("override"))
			})
		})
	})
})
