package domain

import (
	"github.com/allisson/apikeys/internal/errors"
)

// Application and API key domain errors.
var (
	// ErrApplicationNotFound indicates an application with the specified ID was not found.
	ErrApplicationNotFound = errors.Wrap(errors.ErrNotFound, "application not found")

	// ErrAPIKeyNotFound indicates an API key with the specified ID was not found
	// under the given application.
	ErrAPIKeyNotFound = errors.Wrap(errors.ErrNotFound, "api key not found")

	// ErrInvalidAPIKey indicates a verification failure. It deliberately carries a
	// single undifferentiated meaning: unknown, revoked, and expired keys all
	// surface as this error so external callers cannot distinguish the cause.
	ErrInvalidAPIKey = errors.Wrap(errors.ErrUnauthorized, "invalid or expired api key")

	// ErrDuplicateKeyHash indicates a fingerprint collision on insert. With 256 bits
	// of key entropy this only happens when the same key is issued twice.
	ErrDuplicateKeyHash = errors.Wrap(errors.ErrConflict, "api key fingerprint already exists")
)
