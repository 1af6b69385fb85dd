// SPDX-License-Identifier: Apache-2.0

package client

import "errors"

// Sentinel errors mapped from API response statuses. Callers should use
// [errors.Is] to match against these values; the wrapped message carries the
// server's human-readable explanation.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
