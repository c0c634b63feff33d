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

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	rberrors "github.com/kitchenware/recipebook/pkg/errors"
)

// apiError is the error body returned by the recipe API. Detail is either a
// string or a list of validation errors.
type apiError struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// detailMessage extracts a human-readable message from an error body.
// For a validation list it returns "<last loc>: <msg>" of the first entry.
func detailMessage(body []byte) (string, bool) {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil || len(e.Detail) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s, s != ""
	}

	var list []validationDetail
	if err := json.Unmarshal(e.Detail, &list); err == nil {
		if len(list) == 0 {
			return "Validation failed", true
		}
		first := list[0]
		if len(first.Loc) == 0 {
			return first.Msg, true
		}
		return fmt.Sprintf("%v: %s", first.Loc[len(first.Loc)-1], first.Msg), true
	}

	return "", false
}

// statusError converts a non-2xx response into a StructuredError.
func statusError(op string, status int, body []byte) error {
	code := rberrors.CodeFromStatus(status)

	msg, ok := detailMessage(body)
	if !ok {
		switch {
		case status == http.StatusUnprocessableEntity:
			msg = "Validation failed"
		default:
			msg = fmt.Sprintf("%s failed: %s", op, http.StatusText(status))
		}
	}

	return rberrors.NewWithContext(code, msg, map[string]any{
		"operation": op,
		"status":    status,
	})
}

// transportError classifies an error returned by the HTTP client.
func transportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return rberrors.WrapWithContext(rberrors.ErrCodeTimeout,
			fmt.Sprintf("%s timed out", op), err, map[string]any{"operation": op})
	}
	if errors.Is(err, context.Canceled) {
		return rberrors.WrapWithContext(rberrors.ErrCodeUnavailable,
			fmt.Sprintf("%s cancelled", op), err, map[string]any{"operation": op})
	}
	return rberrors.WrapWithContext(rberrors.ErrCodeUnavailable,
		fmt.Sprintf("%s: recipe API unreachable", op), err, map[string]any{"operation": op})
}
