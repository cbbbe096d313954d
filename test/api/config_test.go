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

package api_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/petstore-qa/petstore-e2e/test/api"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"API_BASE_URL", "API_KEY", "LOG_LEVEL", "LOG_FILE", "PROPAGATION_DELAY", "NONEXISTENT_PET_ID", "PETSTORE_STUB", "CLEANUP_PETS", "SKIP_INTEGRATION", "VALIDATE_SCHEMA"} {
		t.Setenv(key, "")
	}
}

// TestLoadTestConfigFile tests values are read from the config file with
// defaults filling the gaps.
func TestLoadTestConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSTORE_CONFIG", writeConfig(t, "base_url: https://petstore.example.com/v2/\n"))

	config, err := api.LoadTestConfig()
	require.NoError(t, err)

	require.Equal(t, "https://petstore.example.com/v2", config.BaseURL)
	require.Equal(t, api.DefaultAPIKey, config.APIKey)
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, "test_execution.log", config.LogFile)
	require.Equal(t, time.Second, config.PropagationDelay)
	require.Equal(t, int64(api.DefaultNonexistentPetID), config.NonexistentPetID)
	require.False(t, config.StubBackend)
	require.False(t, config.CleanupPets)
	require.True(t, config.ValidateSchema)
	require.NotEmpty(t, config.ConfigFile)
}

// TestLoadTestConfigEnvironment tests the environment overrides the file.
func TestLoadTestConfigEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSTORE_CONFIG", writeConfig(t, "base_url: https://petstore.example.com/v2\n"))
	t.Setenv("API_BASE_URL", "http://localhost:8080")
	t.Setenv("API_KEY", "special-key")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PROPAGATION_DELAY", "250ms")
	t.Setenv("NONEXISTENT_PET_ID", "123456789")
	t.Setenv("PETSTORE_STUB", "true")

	config, err := api.LoadTestConfig()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080", config.BaseURL)
	require.Equal(t, "special-key", config.APIKey)
	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, 250*time.Millisecond, config.PropagationDelay)
	require.Equal(t, int64(123456789), config.NonexistentPetID)
	require.True(t, config.StubBackend)
}

// TestLoadTestConfigInvalid tests bad values are rejected.
func TestLoadTestConfigInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSTORE_CONFIG", writeConfig(t, "base_url: not a url\n"))

	_, err := api.LoadTestConfig()
	require.ErrorIs(t, err, api.ErrInvalidConfig)

	t.Setenv("API_BASE_URL", "https://petstore.swagger.io/v2")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err = api.LoadTestConfig()
	require.ErrorIs(t, err, api.ErrInvalidConfig)
}

// TestLoadTestConfigMissingFile tests an explicit but absent file is an error.
func TestLoadTestConfigMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSTORE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := api.LoadTestConfig()
	require.Error(t, err)
}
