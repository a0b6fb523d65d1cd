package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeys/cmd/app/commands"
	"github.com/allisson/apikeys/internal/app"
	"github.com/allisson/apikeys/internal/config"
)

func getKeysCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-application",
			Usage: "Register a new application",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Human-readable application name",
				},
				&cli.StringFlag{
					Name:    "description",
					Aliases: []string{"d"},
					Usage:   "Optional application description",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				applicationUseCase, err := container.ApplicationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateApplication(
					ctx,
					applicationUseCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("description"),
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "issue-key",
			Usage: "Issue a new API key for an application",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "app-id",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Application ID (UUID)",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Key name (defaults to one derived from the application name)",
				},
				&cli.DurationFlag{
					Name:    "expires-in",
					Aliases: []string{"e"},
					Usage:   "Key lifetime (e.g., 720h); omit for a non-expiring key",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				apiKeyUseCase, err := container.APIKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunIssueKey(
					ctx,
					apiKeyUseCase,
					container.Logger(),
					cmd.String("app-id"),
					cmd.String("name"),
					cmd.Duration("expires-in"),
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "revoke-key",
			Usage: "Revoke an API key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "app-id",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Application ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "key-id",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "API key ID (UUID)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				apiKeyUseCase, err := container.APIKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunRevokeKey(
					ctx,
					apiKeyUseCase,
					container.Logger(),
					cmd.String("app-id"),
					cmd.String("key-id"),
					commands.DefaultIO().Writer,
				)
			},
		},
	}
}
