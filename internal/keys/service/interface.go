// Package service provides key generation and fingerprinting for API keys.
//
// API keys are full-entropy random secrets, so a fast wide digest (SHA-256) is the
// right storage transform: there is no low-entropy input to brute-force, and the
// fingerprint doubles as the lookup index. This is deliberately not a
// password-hashing problem.
package service

// KeyService defines operations for API key generation and hashing.
// Implementations must use a cryptographically secure random source and a
// collision-resistant digest of adequate output width.
type KeyService interface {
	// GenerateKey creates a new cryptographically secure random API key.
	// Returns both the plain text key (to be shared with the caller exactly once)
	// and its fingerprint (to be stored in the database).
	GenerateKey() (plainKey string, keyHash string, error error)

	// HashKey computes the fingerprint of a plain text key using SHA-256.
	// Deterministic: the same plaintext always yields the same fingerprint,
	// which is what makes fingerprint-based lookup possible.
	HashKey(plainKey string) string
}
