// Package service enforces the business rules for accounts and messages
// and orchestrates persistence through the storage gateway. Services hold
// no state of their own beyond the injected gateway.
package service

import (
	"errors"

	"github.com/johndosdos/micropost/internal/storage"
)

// Domain outcomes. The HTTP layer maps these onto the status contract;
// any other error is a store failure and surfaces as a 5xx.
var (
	// ErrRejected is a validation-based refusal to persist.
	ErrRejected = errors.New("service: rejected")

	// ErrUnauthenticated is a failed credential match on login.
	ErrUnauthenticated = errors.New("service: unauthenticated")

	// ErrNotFound re-exports the storage sentinel. Absence is an expected
	// outcome for lookups and deletes, not a failure.
	ErrNotFound = storage.ErrNotFound
)
