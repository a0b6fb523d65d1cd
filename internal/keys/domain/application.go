// Package domain defines the application and API key domain models.
//
// Applications are the owning entities under which API keys are issued. An API key
// is an opaque bearer secret: the plaintext exists only transiently at issuance time
// and only its SHA-256 fingerprint is ever persisted.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application represents a registered application that owns zero or more API keys.
// Ownership is exclusive and cascades on delete: removing an application removes
// all keys issued under it as one atomic unit.
type Application struct {
	ID          uuid.UUID // Unique identifier (UUIDv7)
	Name        string    // Human-readable name (1-255 characters)
	Description string    // Optional free-text description
	CreatedAt   time.Time
	UpdatedAt   time.Time // Touched only by mutations of the application itself, not of its keys
}

// CreateApplicationInput contains the parameters for registering a new application.
type CreateApplicationInput struct {
	Name        string // Required, 1-255 characters
	Description string // Optional
}

// UpdateApplicationInput contains the mutable fields for updating an existing
// application. The application ID and creation timestamp cannot be modified.
type UpdateApplicationInput struct {
	Name        string
	Description string
}
