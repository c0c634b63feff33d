// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable that sets the default log level.
	EnvVarLogLevel = "LOG_LEVEL"

	keyModule  = "module"
	keyVersion = "version"
)

// ParseLogLevel converts a level name to a slog.Level.
// Unknown or empty values resolve to slog.LevelInfo.
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

// levelFromEnv returns the level configured in LOG_LEVEL.
func levelFromEnv() string {
	return os.Getenv(EnvVarLogLevel)
}

// NewStructuredLogger returns a JSON logger writing to stderr with module and
// version attributes. Debug level adds source locations.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return NewStructuredLoggerWithWriter(os.Stderr, module, version, level)
}

// NewStructuredLoggerWithWriter is NewStructuredLogger with a custom destination.
// The terminal browser uses it to keep log lines off the screen it draws on.
func NewStructuredLoggerWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl := ParseLogLevel(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})

	return slog.New(handler).With(
		slog.String(keyModule, module),
		slog.String(keyVersion, version),
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog default,
// taking its level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, levelFromEnv())
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger with an
// explicit level as the slog default.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger adapts the current default slog handler to a standard library
// *log.Logger for packages that only accept one (e.g. http.Server.ErrorLog).
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	l := slog.NewLogLogger(slog.Default().Handler(), level)
	if withSource {
		l.SetFlags(log.Lshortfile)
	}
	return l
}
