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

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultAPIKey is used when API_KEY is unset; the demo backend accepts any key.
	DefaultAPIKey = "test_api_key"

	// DefaultNonexistentPetID is an ID the demo backend is not expected to hold.
	DefaultNonexistentPetID = 9018568855
)

var ErrInvalidConfig = errors.New("invalid test configuration")

type TestConfig struct {
	// ConfigFile is the configuration file that was read, if any.
	ConfigFile string `mapstructure:"-"`

	BaseURL          string        `mapstructure:"base_url" validate:"required,url"`
	APIKey           string        `mapstructure:"api_key"`
	LogLevel         string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFile          string        `mapstructure:"log_file" validate:"required"`
	PropagationDelay time.Duration `mapstructure:"propagation_delay" validate:"gte=0"`
	NonexistentPetID int64         `mapstructure:"nonexistent_pet_id" validate:"gt=0"`
	StubBackend      bool          `mapstructure:"stub_backend"`
	CleanupPets      bool          `mapstructure:"cleanup_pets"`
	SkipIntegration  bool          `mapstructure:"skip_integration"`
	ValidateSchema   bool          `mapstructure:"validate_schema"`
}

// LoadTestConfig loads configuration from config.yaml, .env files and the
// environment, in increasing order of precedence.
// Returns an error if the result does not validate.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigType("yaml")

	if path := os.Getenv("PETSTORE_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")

		// From the repository root and from test/api/suites.
		for _, path := range []string{".", "./config", "../../config", "../../../config"} {
			v.AddConfigPath(path)
		}
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config TestConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	config.ConfigFile = v.ConfigFileUsed()
	config.BaseURL = strings.TrimSuffix(strings.TrimSpace(config.BaseURL), "/")
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))

	if config.APIKey == "" {
		config.APIKey = DefaultAPIKey
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration is usable.
func (c *TestConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://petstore.swagger.io/v2")
	v.SetDefault("api_key", DefaultAPIKey)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "test_execution.log")
	v.SetDefault("propagation_delay", time.Second)
	v.SetDefault("nonexistent_pet_id", DefaultNonexistentPetID)
	v.SetDefault("stub_backend", false)
	v.SetDefault("cleanup_pets", false)
	v.SetDefault("skip_integration", false)
	v.SetDefault("validate_schema", true)
}

//nolint:errcheck // BindEnv only fails without a key
func bindEnv(v *viper.Viper) {
	v.BindEnv("base_url", "API_BASE_URL")
	v.BindEnv("api_key", "API_KEY")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_file", "LOG_FILE")
	v.BindEnv("propagation_delay", "PROPAGATION_DELAY")
	v.BindEnv("nonexistent_pet_id", "NONEXISTENT_PET_ID")
	v.BindEnv("stub_backend", "PETSTORE_STUB")
	v.BindEnv("cleanup_pets", "CLEANUP_PETS")
	v.BindEnv("skip_integration", "SKIP_INTEGRATION")
	v.BindEnv("validate_schema", "VALIDATE_SCHEMA")
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"../../../test/.env", // From test/api/suites directory
		"../../../.env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
