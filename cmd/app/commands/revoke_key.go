package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// RunRevokeKey permanently deactivates an API key.
// The operation is idempotent: revoking an already revoked key succeeds.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeKey(
	ctx context.Context,
	apiKeyUseCase keysUseCase.APIKeyUseCase,
	logger *slog.Logger,
	appIDStr string,
	keyIDStr string,
	writer io.Writer,
) error {
	appID, err := uuid.Parse(appIDStr)
	if err != nil {
		return fmt.Errorf("invalid application ID: %w", err)
	}

	keyID, err := uuid.Parse(keyIDStr)
	if err != nil {
		return fmt.Errorf("invalid key ID: %w", err)
	}

	logger.Info("revoking api key",
		slog.String("key_id", keyID.String()),
		slog.String("app_id", appID.String()),
	)

	if err := apiKeyUseCase.Revoke(ctx, appID, keyID); err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "API key %s revoked.\n", keyID)

	logger.Info("api key revoked successfully",
		slog.String("key_id", keyID.String()),
		slog.String("app_id", appID.String()),
	)

	return nil
}
