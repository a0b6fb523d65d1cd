package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/database"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	keysService "github.com/allisson/apikeys/internal/keys/service"
)

// apiKeyUseCase implements APIKeyUseCase interface for managing API key lifecycle.
type apiKeyUseCase struct {
	txManager  database.TxManager
	appRepo    ApplicationRepository
	apiKeyRepo APIKeyRepository
	keyService keysService.KeyService
	logger     *slog.Logger
}

// Issue generates a new API key for an application.
//
// This method:
// 1. Generates a high-entropy key and its fingerprint
// 2. Confirms the application exists and persists the key in one transaction
// 3. Returns the plaintext key to the caller (only shown once)
//
// The plaintext is never persisted. Once the output is consumed, the key
// cannot be recovered; a lost key means issuing a new one.
//
// Returns ErrApplicationNotFound if the application doesn't exist.
func (a *apiKeyUseCase) Issue(
	ctx context.Context,
	appID uuid.UUID,
	issueAPIKeyInput *keysDomain.IssueAPIKeyInput,
) (*keysDomain.IssueAPIKeyOutput, error) {
	// Generate a secure random key
	plainKey, keyHash, err := a.keyService.GenerateKey()
	if err != nil {
		return nil, err
	}

	key := &keysDomain.APIKey{
		ID:        uuid.Must(uuid.NewV7()),
		KeyHash:   keyHash,
		Name:      issueAPIKeyInput.Name,
		IsActive:  true,
		ExpiresAt: issueAPIKeyInput.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	}

	// Check the owner and persist the key atomically so a concurrent
	// application delete can never leave an orphaned key behind.
	err = a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		application, err := a.appRepo.Get(txCtx, appID)
		if err != nil {
			return err
		}

		key.AppID = application.ID
		if key.Name == "" {
			key.Name = fmt.Sprintf("API Key for %s", application.Name)
		}

		return a.apiKeyRepo.Create(txCtx, key)
	})
	if err != nil {
		return nil, err
	}

	// Return the key metadata and plain key
	return &keysDomain.IssueAPIKeyOutput{
		Key:      key,
		PlainKey: plainKey,
	}, nil
}

// List retrieves the metadata of all keys owned by an application.
// Returns ErrApplicationNotFound if the application doesn't exist.
func (a *apiKeyUseCase) List(ctx context.Context, appID uuid.UUID) ([]*keysDomain.APIKey, error) {
	// Confirm the application exists
	if _, err := a.appRepo.Get(ctx, appID); err != nil {
		return nil, err
	}

	return a.apiKeyRepo.ListForApplication(ctx, appID)
}

// Revoke permanently deactivates a key owned by the given application.
//
// Revocation is idempotent: revoking an already-revoked key succeeds without
// effect. A key belonging to a different application is reported as not found
// so key IDs can't be probed across application boundaries.
func (a *apiKeyUseCase) Revoke(ctx context.Context, appID uuid.UUID, keyID uuid.UUID) error {
	// Get the key and confirm ownership
	key, err := a.apiKeyRepo.Get(ctx, keyID)
	if err != nil {
		return err
	}
	if key.AppID != appID {
		return keysDomain.ErrAPIKeyNotFound
	}

	return a.apiKeyRepo.Revoke(ctx, keyID)
}

// Verify validates a presented plaintext key and returns the matching key metadata.
//
// This method:
// 1. Computes the fingerprint of the presented key
// 2. Looks up the key by fingerprint
// 3. Validates the key is active and not expired
// 4. Updates the last-used timestamp (best-effort)
//
// Security Notes:
//   - Returns ErrInvalidAPIKey for unknown, revoked, and expired keys alike,
//     so callers can't probe which fingerprints exist or their state
//   - Expiry is evaluated lazily against the current wall clock; no background
//     sweeper flips state, so a key past its deadline is rejected on the very
//     next verification
//   - A failed last-used update is logged and swallowed; usage tracking never
//     blocks a valid verification
func (a *apiKeyUseCase) Verify(ctx context.Context, plainKey string) (*keysDomain.APIKey, error) {
	// Get the key by fingerprint
	key, err := a.apiKeyRepo.GetByKeyHash(ctx, a.keyService.HashKey(plainKey))
	if err != nil {
		// If key not found, return generic error to prevent enumeration
		if errors.Is(err, keysDomain.ErrAPIKeyNotFound) {
			return nil, keysDomain.ErrInvalidAPIKey
		}
		return nil, err
	}

	// Check if key is revoked
	if !key.IsActive {
		return nil, keysDomain.ErrInvalidAPIKey
	}

	// Check if key is expired
	now := time.Now().UTC()
	if key.IsExpired(now) {
		return nil, keysDomain.ErrInvalidAPIKey
	}

	// Record usage best-effort
	if err := a.apiKeyRepo.UpdateLastUsed(ctx, key.ID, now); err != nil {
		a.logger.Warn(
			"failed to update api key last used timestamp",
			"key_id", key.ID.String(),
			"error", err,
		)
	} else {
		key.LastUsedAt = &now
	}

	return key, nil
}

// NewAPIKeyUseCase creates a new APIKeyUseCase with the provided dependencies.
func NewAPIKeyUseCase(
	txManager database.TxManager,
	appRepo ApplicationRepository,
	apiKeyRepo APIKeyRepository,
	keyService keysService.KeyService,
	logger *slog.Logger,
) APIKeyUseCase {
	return &apiKeyUseCase{
		txManager:  txManager,
		appRepo:    appRepo,
		apiKeyRepo: apiKeyRepo,
		keyService: keyService,
		logger:     logger,
	}
}
