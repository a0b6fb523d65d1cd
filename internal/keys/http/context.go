package http

import (
	"context"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// apiKeyKey is a context key type for storing verified API keys.
type apiKeyKey struct{}

// WithAPIKey stores a verified API key in the context.
// This is typically called by RequireAPIKey after successful verification.
func WithAPIKey(ctx context.Context, key *keysDomain.APIKey) context.Context {
	return context.WithValue(ctx, apiKeyKey{}, key)
}

// GetAPIKey retrieves a verified API key from the context.
// Returns (key, true) if a key is present, or (nil, false) if no key was set.
func GetAPIKey(ctx context.Context) (*keysDomain.APIKey, bool) {
	key, ok := ctx.Value(apiKeyKey{}).(*keysDomain.APIKey)
	return key, ok
}
