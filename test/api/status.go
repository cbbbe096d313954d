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
	"fmt"
	"log/slog"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petstore-qa/petstore-e2e/pkg/petstore"
)

// Outcome classifies an observed status code.
type Outcome int

const (
	OutcomeUnexpected Outcome = iota
	OutcomeExpected
	OutcomeTolerated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpected:
		return "expected"
	case OutcomeTolerated:
		return "tolerated"
	default:
		return "unexpected"
	}
}

// StatusExpectation describes which status codes a spec accepts. Tolerated
// codes cover known quirks of the shared demo backend and pass with a warning.
type StatusExpectation struct {
	Expected  set.Set[int]
	Tolerated set.Set[int]
	// Reason explains why tolerated codes are accepted.
	Reason string
}

// ExpectStatus accepts only the given codes.
func ExpectStatus(codes ...int) StatusExpectation {
	return StatusExpectation{
		Expected:  set.New[int](codes...),
		Tolerated: set.New[int](),
	}
}

// OrTolerate additionally accepts codes, with a warning citing reason.
func (e StatusExpectation) OrTolerate(reason string, codes ...int) StatusExpectation {
	e.Tolerated = set.New[int](codes...)
	e.Reason = reason

	return e
}

// Classify reports how code relates to the expectation. Expected wins over
// tolerated when a code is in both.
func (e StatusExpectation) Classify(code int) Outcome {
	switch {
	case e.Expected.Contains(code):
		return OutcomeExpected
	case e.Tolerated.Contains(code):
		return OutcomeTolerated
	default:
		return OutcomeUnexpected
	}
}

// Check classifies the response status, logging tolerated outcomes as a
// warning. Unexpected codes return an error naming both sets.
func (e StatusExpectation) Check(logger *slog.Logger, operation string, response *petstore.Response) (Outcome, error) {
	outcome := e.Classify(response.StatusCode)

	switch outcome {
	case OutcomeExpected:
		logger.Info("received expected status", slog.String("operation", operation), slog.Int("status", response.StatusCode))
	case OutcomeTolerated:
		logger.Warn("received tolerated status", slog.String("operation", operation), slog.Int("status", response.StatusCode), slog.String("reason", e.Reason))
	default:
		return outcome, fmt.Errorf("%s: unexpected status code %d, expected one of %v or tolerated %v, body: %s",
			operation, response.StatusCode, sorted(e.Expected), sorted(e.Tolerated), response.Text())
	}

	return outcome, nil
}

func sorted(s set.Set[int]) []int {
	return slices.Sorted(s.All())
}
