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

package server

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/serializer"
)

// ErrorResponse is the body of every error returned by the server.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError keeps
// its code, message and context; any other error is reported as INTERNAL
// with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extra map[string]any) {
	code := errors.ErrCodeInternal
	message := fallbackMessage
	details := map[string]any{}

	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		code = se.Code
		message = se.Message
		for k, v := range se.Context {
			details[k] = v
		}
	}
	for k, v := range extra {
		details[k] = v
	}
	if len(details) == 0 {
		details = nil
	}

	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", RequestID(r.Context()),
			"path", r.URL.Path,
			"code", code,
			"error", err)
	} else {
		slog.Debug("request rejected",
			"requestID", RequestID(r.Context()),
			"path", r.URL.Path,
			"code", code,
			"error", err)
	}

	WriteError(w, r, status, code, message, errors.IsRetryable(code), details)
}
