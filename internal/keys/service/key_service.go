package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/allisson/apikeys/internal/errors"
)

// keyPrefix is a cosmetic tag that makes issued keys recognizable to operators
// (e.g. in config files or support tickets). It carries no security property.
const keyPrefix = "sk_"

// keyService implements KeyService using SHA-256 for key fingerprinting.
type keyService struct{}

// GenerateKey creates a new API key from 32 bytes (256 bits) of cryptographically
// secure randomness, encoded as URL-safe base64 and prefixed with "sk_".
// Returns the plain key and its SHA-256 fingerprint. The only failure mode is an
// unavailable secure-random source, which is a fatal environment error.
func (k *keyService) GenerateKey() (plainKey string, keyHash string, error error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random api key")
	}

	// URL-safe, copy-paste-safe text representation
	plainKey = keyPrefix + base64.RawURLEncoding.EncodeToString(randomBytes)

	// Fingerprint for storage and lookup
	keyHash = k.HashKey(plainKey)

	return plainKey, keyHash, nil
}

// HashKey hashes a plain text key using SHA-256.
// Returns the fingerprint as a hexadecimal string.
func (k *keyService) HashKey(plainKey string) string {
	hash := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(hash[:])
}

// NewKeyService creates a new KeyService instance using SHA-256 for key fingerprinting.
func NewKeyService() KeyService {
	return &keyService{}
}
