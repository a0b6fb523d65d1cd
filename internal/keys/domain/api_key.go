package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKey represents an issued credential owned by exactly one application.
//
// The struct intentionally has no plaintext field: the plaintext secret is only
// ever available as the return value of issuance (IssueAPIKeyOutput.PlainKey),
// which makes later disclosure structurally impossible rather than a runtime
// discipline.
type APIKey struct {
	ID         uuid.UUID  // Unique identifier, distinct from the secret itself (UUIDv7)
	AppID      uuid.UUID  // Owning application
	KeyHash    string     // SHA-256 hex fingerprint of the plaintext, globally unique
	Name       string     // Display name; defaults to one derived from the application
	IsActive   bool       // Starts true; flipped false by revocation, never back
	ExpiresAt  *time.Time // Optional; evaluated lazily at verification time
	LastUsedAt *time.Time // Set on first successful verification
	CreatedAt  time.Time
}

// IsExpired reports whether the key is expired at the given instant.
// A key with no expiration never expires. Expiration is not a state transition:
// it is evaluated against the verification time, never against creation time.
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}

// IssueAPIKeyInput contains the parameters for issuing a new API key.
type IssueAPIKeyInput struct {
	Name      string     // Optional; defaults to "API Key for <application name>"
	ExpiresAt *time.Time // Optional expiration timestamp
}

// IssueAPIKeyOutput contains the result of issuing an API key.
// SECURITY: PlainKey is only returned once at issuance and can never be
// retrieved again; only its fingerprint is stored.
type IssueAPIKeyOutput struct {
	Key      *APIKey
	PlainKey string // Plain text API key (transmit securely, never log)
}
