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

// Package logging configures the slog default logger for recipebook binaries.
//
// Logs are JSON lines tagged with the binary name (module) and its build
// version. The level comes from an explicit flag value or from LOG_LEVEL and
// accepts debug, info, warn (or warning) and error; anything else means info.
// Debug level also records the source location of each call.
//
//	logging.SetDefaultStructuredLogger("recipebookd", version)
//	slog.Info("server starting", "port", 8080)
//
// The CLI passes its --log-level flag instead:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipebook", version, "debug")
//
// The terminal browser draws on the alternate screen, so it sends its log
// lines to a file with NewStructuredLoggerWithWriter. NewLogLogger bridges
// the default handler to a *log.Logger for http.Server.ErrorLog.
//
// A typical line:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"recipe created","module":"recipebookd","version":"v1.2.0","id":7}
package logging
