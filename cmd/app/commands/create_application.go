package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// RunCreateApplication registers a new application and prints its identity.
// Outputs the application ID in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateApplication(
	ctx context.Context,
	applicationUseCase keysUseCase.ApplicationUseCase,
	logger *slog.Logger,
	name string,
	description string,
	format string,
	writer io.Writer,
) error {
	logger.Info("creating new application", slog.String("name", name))

	if name == "" {
		return fmt.Errorf("application name is required")
	}

	input := &keysDomain.CreateApplicationInput{
		Name:        name,
		Description: description,
	}

	application, err := applicationUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]string{
			"id":          application.ID.String(),
			"name":        application.Name,
			"description": application.Description,
			"created_at":  application.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	} else {
		_, _ = fmt.Fprintln(writer, "Application created successfully!")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "ID:          %s\n", application.ID)
		_, _ = fmt.Fprintf(writer, "Name:        %s\n", application.Name)
		if application.Description != "" {
			_, _ = fmt.Fprintf(writer, "Description: %s\n", application.Description)
		}
	}

	logger.Info("application created successfully",
		slog.String("app_id", application.ID.String()),
		slog.String("name", name),
	)

	return nil
}
