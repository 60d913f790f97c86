// Package common defines the sentinel errors shared by the service and both
// protocol adapters. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Input rejected before any storage work happened.
	ErrorValidation = errors.New("validation error")

	// Storage connectivity or constraint failure.
	ErrorStorage = errors.New("storage error")

	// A multi-insert sequence failed after at least one insert succeeded and
	// the rollback did not complete, so orphan rows may be visible.
	ErrorPartialWrite = errors.New("partial write")
)
