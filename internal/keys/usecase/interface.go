// Package usecase defines business logic interfaces for application and API key management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// ApplicationRepository defines persistence operations for applications.
// Implementations must support transaction-aware operations via context propagation.
type ApplicationRepository interface {
	// Create stores a new application in the repository.
	Create(ctx context.Context, application *keysDomain.Application) error

	// Update modifies an existing application in the repository.
	Update(ctx context.Context, application *keysDomain.Application) error

	// Get retrieves an application by ID. Returns ErrApplicationNotFound if not found.
	Get(ctx context.Context, appID uuid.UUID) (*keysDomain.Application, error)

	// List retrieves applications ordered by ID with pagination support.
	List(ctx context.Context, offset, limit int) ([]*keysDomain.Application, error)

	// Delete removes an application row. Returns ErrApplicationNotFound if not found.
	// Callers are responsible for deleting owned API keys in the same transaction.
	Delete(ctx context.Context, appID uuid.UUID) error
}

// APIKeyRepository defines persistence operations for API keys.
// Implementations must support transaction-aware operations via context propagation
// and enforce global uniqueness on the key fingerprint.
type APIKeyRepository interface {
	// Create stores a new API key in the repository.
	Create(ctx context.Context, key *keysDomain.APIKey) error

	// Get retrieves an API key by ID. Returns ErrAPIKeyNotFound if not found.
	Get(ctx context.Context, keyID uuid.UUID) (*keysDomain.APIKey, error)

	// GetByKeyHash retrieves an API key by fingerprint. Returns ErrAPIKeyNotFound
	// if no key matches. The store does not interpret active or expiry state;
	// that is the verifier's job.
	GetByKeyHash(ctx context.Context, keyHash string) (*keysDomain.APIKey, error)

	// ListForApplication retrieves all keys owned by an application.
	ListForApplication(ctx context.Context, appID uuid.UUID) ([]*keysDomain.APIKey, error)

	// UpdateLastUsed sets the last-used timestamp for a key. Best-effort:
	// a lost update under concurrent verifications is acceptable, but the
	// update must never touch other fields.
	UpdateLastUsed(ctx context.Context, keyID uuid.UUID, usedAt time.Time) error

	// Revoke sets the key's active flag to false. Idempotent: revoking an
	// already-revoked key is not an error.
	Revoke(ctx context.Context, keyID uuid.UUID) error

	// DeleteForApplication removes all keys owned by an application.
	DeleteForApplication(ctx context.Context, appID uuid.UUID) error
}

// ApplicationUseCase defines business logic operations for the application registry.
type ApplicationUseCase interface {
	// Create registers a new application. Name validation (1-255, non-blank)
	// happens at the transport layer; Create assigns identity and timestamps.
	Create(
		ctx context.Context,
		createApplicationInput *keysDomain.CreateApplicationInput,
	) (*keysDomain.Application, error)

	// Get retrieves an application by ID.
	// Returns ErrApplicationNotFound if the application doesn't exist.
	Get(ctx context.Context, appID uuid.UUID) (*keysDomain.Application, error)

	// List retrieves applications with pagination support.
	List(ctx context.Context, offset, limit int) ([]*keysDomain.Application, error)

	// Update modifies an application's name and description and touches the
	// last-modified timestamp. Returns ErrApplicationNotFound if missing.
	Update(
		ctx context.Context,
		appID uuid.UUID,
		updateApplicationInput *keysDomain.UpdateApplicationInput,
	) error

	// Delete removes the application and all its API keys as one atomic unit.
	// After Delete returns, no orphaned key exists and none of the deleted keys
	// will ever verify again. Returns ErrApplicationNotFound if missing.
	Delete(ctx context.Context, appID uuid.UUID) error
}

// APIKeyUseCase defines business logic operations for issuing, listing, revoking,
// and verifying API keys.
type APIKeyUseCase interface {
	// Issue generates a new API key for an application and persists its
	// fingerprint. The returned output carries the plaintext exactly once;
	// it is never stored and cannot be retrieved again.
	//
	// Returns ErrApplicationNotFound if the application doesn't exist.
	Issue(
		ctx context.Context,
		appID uuid.UUID,
		issueAPIKeyInput *keysDomain.IssueAPIKeyInput,
	) (*keysDomain.IssueAPIKeyOutput, error)

	// List retrieves the metadata of all keys owned by an application.
	// Returns ErrApplicationNotFound if the application doesn't exist.
	List(ctx context.Context, appID uuid.UUID) ([]*keysDomain.APIKey, error)

	// Revoke permanently deactivates a key. Idempotent. Returns ErrAPIKeyNotFound
	// if the key doesn't exist or is owned by a different application.
	Revoke(ctx context.Context, appID uuid.UUID, keyID uuid.UUID) error

	// Verify checks a presented plaintext key and returns the matching key
	// metadata (including the owning application ID) when valid. Unknown,
	// revoked, and expired keys all return ErrInvalidAPIKey: callers can never
	// distinguish the cause. On success the key's last-used timestamp is
	// updated best-effort.
	Verify(ctx context.Context, plainKey string) (*keysDomain.APIKey, error)
}
