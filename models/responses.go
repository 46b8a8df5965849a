// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the uniform JSON body sent for every failed request.
// The message is intentionally generic: internal diagnostic detail (handler
// name, original error, stack) is only ever emitted to server-side logs.
type ErrorResponse struct {
	// Error is the human-readable classification of the failure,
	// e.g. "Not Found" or "Internal Server Error".
	Error string `json:"error"`
}
