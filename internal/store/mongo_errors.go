package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorClassification is the result type returned by [ClassifyMongoError].
// It indicates whether a failed database operation could succeed on a later
// attempt or should be abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be
	// retried. This is the default classification for unrecognised errors,
	// write errors, and constraint (duplicate key) violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if
	// attempted again (e.g. after a transient network failure or a
	// server-side timeout).
	Retryable
)

// String implements [fmt.Stringer] so a classification reads naturally in
// log output and wrapped error messages.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// isDuplicateKey reports whether err is a MongoDB duplicate key error
// (unique index violation, server code 11000). Repositories map it to the
// appropriate domain sentinel (e.g. [ErrUserAlreadyExists]).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// isNoDocuments reports whether err signals an empty single-document result.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// ClassifyMongoError maps a driver error to an [ErrorClassification].
//
// Retryable:
//   - network errors (connection reset, broken pipe, server unreachable)
//   - timeouts, including context.DeadlineExceeded surfaced by the driver
//
// NonRetryable:
//   - duplicate key violations
//   - everything else (command errors, decode errors, cancelled contexts)
func ClassifyMongoError(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if isDuplicateKey(err) {
		return NonRetryable
	}

	if mongo.IsNetworkError(err) {
		return Retryable
	}

	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return Retryable
	}

	return NonRetryable
}
