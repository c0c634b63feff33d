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

package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPStatus returns the HTTP status code that corresponds to the error code.
// Unknown codes map to 500.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromStatus classifies an HTTP status code returned by an upstream service.
func CodeFromStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrCodeUnauthorized
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case status == http.StatusTooManyRequests:
		return ErrCodeRateLimitExceeded
	case status == http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrCodeTimeout
	case status >= 500:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// IsRetryable reports whether a caller may reasonably retry an operation that
// failed with the given code.
func IsRetryable(code ErrorCode) bool {
	switch code {
	case ErrCodeTimeout, ErrCodeUnavailable, ErrCodeRateLimitExceeded, ErrCodeInternal:
		return true
	default:
		return false
	}
}

// CodeOf extracts the code from the first StructuredError in err's chain.
// Returns ErrCodeInternal when err carries no structured information.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
