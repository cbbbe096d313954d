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

//nolint:revive
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

var (
	errEmptyName     = errors.New("pet name is required")
	errInvalidStatus = errors.New("pet status must be one of available, pending or sold")
	errMissingID     = errors.New("pet id is required")
)

// APIResponse is the error body the pet store returns.
type APIResponse struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Handler struct {
	// store holds every pet created through the handler.
	store *Store

	// logger records rejected requests.
	logger *slog.Logger
}

func New(store *Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	h.setUncacheable(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.logger.Info("request rejected",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("reason", message),
	)

	h.writeJSON(w, status, APIResponse{Code: status, Type: "error", Message: message})
}

// AddPet handles POST /pet.
func (h *Handler) AddPet(w http.ResponseWriter, r *http.Request) {
	pet, err := decodePet(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.store.Create(pet))
}

// UpdatePet handles PUT /pet.
func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	pet, err := decodePet(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if pet.ID <= 0 {
		h.writeError(w, r, http.StatusBadRequest, errMissingID.Error())
		return
	}

	updated, ok := h.store.Replace(pet)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Pet not found")
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

// GetPet handles GET /pet/{petId}.
func (h *Handler) GetPet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.petID(w, r)
	if !ok {
		return
	}

	pet, ok := h.store.Get(id)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Pet not found")
		return
	}

	h.writeJSON(w, http.StatusOK, pet)
}

// DeletePet handles DELETE /pet/{petId}.
func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.petID(w, r)
	if !ok {
		return
	}

	if !h.store.Delete(id) {
		h.writeError(w, r, http.StatusNotFound, "Pet not found")
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Code: http.StatusOK, Type: "unknown", Message: strconv.FormatInt(id, 10)})
}

func (h *Handler) petID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "petId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid pet id %q", raw))
		return 0, false
	}

	return id, true
}

func decodePet(r *http.Request) (petstore.Pet, error) {
	var pet petstore.Pet

	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		return petstore.Pet{}, fmt.Errorf("malformed pet body: %w", err)
	}

	if strings.TrimSpace(pet.Name) == "" {
		return petstore.Pet{}, errEmptyName
	}

	if pet.Status != "" && !pet.Status.Valid() {
		return petstore.Pet{}, errInvalidStatus
	}

	if pet.PhotoURLs == nil {
		pet.PhotoURLs = []string{}
	}

	return pet, nil
}

// Unauthorized rejects a request that lacks a valid API key.
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusUnauthorized, "missing or invalid api key")
}
