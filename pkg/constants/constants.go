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

package constants

import (
	"fmt"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = "petstore-e2e"

	// Version is the application version set at build time via -ldflags.
	//nolint:gochecknoglobals
	Version = "0.0.0"

	// Revision is the git revision set at build time via -ldflags.
	//nolint:gochecknoglobals
	Revision = "unknown"
)

// UserAgent returns the user agent sent with every API request.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}
