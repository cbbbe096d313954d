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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/petstore-qa/petstore-e2e/pkg/constants"
	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
	"github.com/petstore-qa/petstore-e2e/pkg/server"
)

// options control a probe run.
type options struct {
	baseURL   string
	apiKey    string
	missingID int64
	probeIDs  []int64
	logLevel  string
	stub      bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", "https://petstore.swagger.io/v2", "Pet store API base URL.")
	f.StringVar(&o.apiKey, "api-key", envOrDefault("API_KEY", "test_api_key"), "API key sent in the api_key header.")
	f.Int64Var(&o.missingID, "missing-id", 9999999999, "An ID the backend is not expected to hold.")
	f.Int64SliceVar(&o.probeIDs, "probe-ids", []int64{1, 2, 3, 10, 100}, "IDs to look up.")
	f.StringVar(&o.logLevel, "log-level", "warn", "Log level, one of debug, info, warn or error.")
	f.BoolVar(&o.stub, "stub", false, "Probe an in-process stub backend instead of base-url.")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("probe starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &o, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run observes how the backend treats a fresh pet, a missing pet and a set
// of well known IDs. Only transport failures are errors; every status is
// reported as seen.
func run(ctx context.Context, o *options, logger *slog.Logger, out io.Writer) error {
	baseURL := o.baseURL

	if o.stub {
		backend := httptest.NewServer(server.New(server.Options{Logger: logger}))
		defer backend.Close()

		baseURL = backend.URL
	}

	client, err := petstore.NewClient(baseURL, o.apiKey, petstore.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=== Testing Pet Creation and Retrieval ===")

	if err := probeCreate(ctx, client, out); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Testing Non-existent Pet ===")

	response, err := client.GetPet(ctx, o.missingID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Get missing pet %d response: %d\n", o.missingID, response.StatusCode)
	fmt.Fprintf(out, "Body: %s\n", response.Text())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Testing IDs that may exist ===")

	for _, id := range o.probeIDs {
		response, err := client.GetPet(ctx, id)
		if err != nil {
			return err
		}

		if response.StatusCode != http.StatusOK {
			fmt.Fprintf(out, "ID %d does not exist (status: %d)\n", id, response.StatusCode)
			continue
		}

		fmt.Fprintf(out, "ID %d exists: %s\n", id, nameOf(response))
	}

	return nil
}

func probeCreate(ctx context.Context, client *petstore.Client, out io.Writer) error {
	pet := petstore.Pet{
		Name:      "DebugTestPet",
		PhotoURLs: []string{},
		Status:    petstore.StatusAvailable,
	}

	response, err := client.AddPet(ctx, pet)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Create response: %d\n", response.StatusCode)

	if response.StatusCode != http.StatusOK {
		return nil
	}

	created, err := response.Pet()
	if err != nil {
		return fmt.Errorf("%w: %w", errUnexpectedBody, err)
	}

	fmt.Fprintf(out, "Created pet ID: %d\n", created.ID)
	fmt.Fprintf(out, "Created pet name: %s\n", created.Name)

	// Read back immediately, without a propagation delay.
	response, err = client.GetPet(ctx, created.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Get response (immediate): %d\n", response.StatusCode)

	if response.StatusCode != http.StatusOK {
		fmt.Fprintf(out, "Get failed: %s\n", response.Text())
		return nil
	}

	fmt.Fprintf(out, "Retrieved pet name: %s\n", nameOf(response))

	return nil
}

var errUnexpectedBody = errors.New("create response is not a pet")

func nameOf(response *petstore.Response) string {
	pet, err := response.Pet()
	if err != nil || pet.Name == "" {
		return "N/A"
	}

	return pet.Name
}
