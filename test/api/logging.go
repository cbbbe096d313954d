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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/ginkgo/v2/types"
)

const banner = "================================================================================"

// ParseLogLevel maps a level name onto a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFilePath returns the log file used by a ginkgo process. Process 1 keeps
// the configured name, parallel processes get their own file so they do not
// truncate each other's output.
func LogFilePath(path string, process int) string {
	if process <= 1 {
		return path
	}

	ext := filepath.Ext(path)

	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(path, ext), process, ext)
}

// NewLogger returns a logger writing to the ginkgo console and to the
// configured log file, which is truncated so it only covers this run.
// The returned function closes the file.
func NewLogger(config *TestConfig) (*slog.Logger, func() error, error) {
	file, err := os.OpenFile(LogFilePath(config.LogFile, ginkgo.GinkgoParallelProcess()), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := newLogger(io.MultiWriter(ginkgo.GinkgoWriter, file), ParseLogLevel(config.LogLevel))

	return logger, file.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogSpecSetup records the start of a spec.
func LogSpecSetup(logger *slog.Logger, report types.SpecReport) {
	logger.Info(banner)
	logger.Info("SETUP: starting spec", slog.String("spec", report.FullText()))
	logger.Info("spec location", slog.String("file", report.LeafNodeLocation.String()))
	logger.Info("spec labels", slog.Any("labels", report.Labels()))
	logger.Info(banner)
}

// LogSpecTeardown records the end of a spec and its outcome.
func LogSpecTeardown(logger *slog.Logger, report types.SpecReport) {
	logger.Info(banner)
	logger.Info("TEARDOWN: completed spec", slog.String("spec", report.FullText()))
	logger.Info("spec outcome", slog.String("outcome", strings.ToUpper(report.State.String())), slog.Duration("duration", report.RunTime))
	logger.Info(banner)
}
