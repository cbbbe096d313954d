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

// Package server provides an in-process pet store backend for hermetic
// test runs.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
	"github.com/petstore-qa/petstore-e2e/pkg/server/handler"
)

// Options configures the backend.
type Options struct {
	// APIKey, when set, must be presented in the api_key header.
	APIKey string

	// BasePath mounts the API under a prefix e.g. /v2.
	BasePath string

	// Logger records rejected requests.
	Logger *slog.Logger

	// Store overrides the backing store, useful for inspection in tests.
	Store *handler.Store
}

// New returns the backend HTTP handler.
func New(options Options) http.Handler {
	store := options.Store
	if store == nil {
		store = handler.NewStore()
	}

	h := handler.New(store, options.Logger)

	api := chi.NewRouter()
	api.Use(middleware.Recoverer)

	if options.APIKey != "" {
		api.Use(requireAPIKey(options.APIKey, h))
	}

	api.Post("/pet", h.AddPet)
	api.Put("/pet", h.UpdatePet)
	api.Get("/pet/{petId}", h.GetPet)
	api.Delete("/pet/{petId}", h.DeletePet)

	if options.BasePath == "" || options.BasePath == "/" {
		return api
	}

	router := chi.NewRouter()
	router.Mount(options.BasePath, api)

	return router
}

func requireAPIKey(key string, h *handler.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(petstore.APIKeyHeader) != key {
				h.Unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
