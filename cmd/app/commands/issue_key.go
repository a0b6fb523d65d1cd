package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// RunIssueKey issues a new API key for an application and prints the plaintext.
// The plaintext is shown exactly once; only its fingerprint is stored, so losing
// the output means issuing a new key.
//
// Requirements: Database must be migrated and accessible.
func RunIssueKey(
	ctx context.Context,
	apiKeyUseCase keysUseCase.APIKeyUseCase,
	logger *slog.Logger,
	appIDStr string,
	name string,
	expiresIn time.Duration,
	format string,
	writer io.Writer,
) error {
	appID, err := uuid.Parse(appIDStr)
	if err != nil {
		return fmt.Errorf("invalid application ID: %w", err)
	}

	logger.Info("issuing api key", slog.String("app_id", appID.String()))

	input := &keysDomain.IssueAPIKeyInput{
		Name: name,
	}
	if expiresIn > 0 {
		expiresAt := time.Now().UTC().Add(expiresIn)
		input.ExpiresAt = &expiresAt
	}

	output, err := apiKeyUseCase.Issue(ctx, appID, input)
	if err != nil {
		return fmt.Errorf("failed to issue api key: %w", err)
	}

	if format == "json" {
		result := map[string]any{
			"id":     output.Key.ID.String(),
			"app_id": output.Key.AppID.String(),
			"name":   output.Key.Name,
			"key":    output.PlainKey,
		}
		if output.Key.ExpiresAt != nil {
			result["expires_at"] = output.Key.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(result)
	} else {
		_, _ = fmt.Fprintln(writer, "API key issued successfully!")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "ID:      %s\n", output.Key.ID)
		_, _ = fmt.Fprintf(writer, "App ID:  %s\n", output.Key.AppID)
		_, _ = fmt.Fprintf(writer, "Name:    %s\n", output.Key.Name)
		if output.Key.ExpiresAt != nil {
			_, _ = fmt.Fprintf(writer, "Expires: %s\n", output.Key.ExpiresAt.Format(time.RFC3339))
		}
		_, _ = fmt.Fprintf(writer, "Key:     %s\n", output.PlainKey)
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "Store this key securely. It cannot be retrieved again.")
	}

	// The plaintext key never goes through the logger.
	logger.Info("api key issued successfully",
		slog.String("key_id", output.Key.ID.String()),
		slog.String("app_id", appID.String()),
	)

	return nil
}
