package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/apikeys/internal/errors"
)

func TestAPIKey_IsExpired(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  bool
	}{
		{
			name:      "no expiration never expires",
			expiresAt: nil,
			expected:  false,
		},
		{
			name:      "future expiration is not expired",
			expiresAt: timePtr(now.Add(time.Hour)),
			expected:  false,
		},
		{
			name:      "past expiration is expired",
			expiresAt: timePtr(now.Add(-time.Second)),
			expected:  true,
		},
		{
			name:      "expiration exactly now is expired",
			expiresAt: timePtr(now),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := &APIKey{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, key.IsExpired(now))
		})
	}
}

func TestAPIKey_IsExpired_IndependentOfActiveFlag(t *testing.T) {
	// Expiration is evaluated on its own; an active flag must not mask it.
	now := time.Now().UTC()
	key := &APIKey{IsActive: true, ExpiresAt: timePtr(now.Add(-time.Minute))}

	assert.True(t, key.IsExpired(now))
}

func TestDomainErrors(t *testing.T) {
	assert.True(t, apperrors.Is(ErrApplicationNotFound, apperrors.ErrNotFound))
	assert.True(t, apperrors.Is(ErrAPIKeyNotFound, apperrors.ErrNotFound))
	assert.True(t, apperrors.Is(ErrInvalidAPIKey, apperrors.ErrUnauthorized))

	// The verification error must not be a kind of not-found: a 404 on the verify
	// path would leak whether a key exists.
	assert.False(t, apperrors.Is(ErrInvalidAPIKey, apperrors.ErrNotFound))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
