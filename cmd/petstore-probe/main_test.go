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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

func TestRunStub(t *testing.T) {
	t.Parallel()

	o := &options{
		apiKey:    "test_api_key",
		missingID: 9999999999,
		probeIDs:  []int64{1, 100},
		stub:      true,
	}

	out := &bytes.Buffer{}

	require.NoError(t, run(t.Context(), o, slog.New(slog.DiscardHandler), out))

	text := out.String()
	require.Contains(t, text, "Create response: 200")
	require.Contains(t, text, "Created pet ID: 1")
	require.Contains(t, text, "Get response (immediate): 200")
	require.Contains(t, text, "Retrieved pet name: DebugTestPet")
	require.Contains(t, text, "Get missing pet 9999999999 response: 404")
	require.Contains(t, text, "ID 1 exists: DebugTestPet")
	require.Contains(t, text, "ID 100 does not exist (status: 404)")
}

func TestRunUnreachable(t *testing.T) {
	t.Parallel()

	o := &options{
		baseURL: "http://127.0.0.1:1",
		apiKey:  "test_api_key",
	}

	err := run(t.Context(), o, slog.New(slog.DiscardHandler), &bytes.Buffer{})

	var transportErr *petstore.TransportError
	require.ErrorAs(t, err, &transportErr)
}
