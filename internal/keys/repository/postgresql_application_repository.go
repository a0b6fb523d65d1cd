// Package repository provides data persistence implementations for applications and API keys.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/database"
	apperrors "github.com/allisson/apikeys/internal/errors"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// PostgreSQLApplicationRepository implements Application persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLApplicationRepository struct {
	db *sql.DB
}

// Create inserts a new Application into the PostgreSQL database. Uses transaction
// support via database.GetTx(). Returns an error if database insertion fails.
func (p *PostgreSQLApplicationRepository) Create(
	ctx context.Context,
	application *keysDomain.Application,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO applications (id, name, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		application.ID,
		application.Name,
		application.Description,
		application.CreatedAt,
		application.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create application")
	}
	return nil
}

// Update modifies an existing Application in the PostgreSQL database. Uses transaction
// support via database.GetTx(). Returns an error if database update fails.
func (p *PostgreSQLApplicationRepository) Update(
	ctx context.Context,
	application *keysDomain.Application,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE applications
			  SET name = $1,
			  	  description = $2,
				  updated_at = $3
			  WHERE id = $4`

	_, err := querier.ExecContext(
		ctx,
		query,
		application.Name,
		application.Description,
		application.UpdatedAt,
		application.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update application")
	}

	return nil
}

// Get retrieves an Application by ID from the PostgreSQL database. Uses transaction
// support via database.GetTx(). Returns ErrApplicationNotFound if the application
// doesn't exist, or an error if database query fails.
func (p *PostgreSQLApplicationRepository) Get(
	ctx context.Context,
	appID uuid.UUID,
) (*keysDomain.Application, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, created_at, updated_at
			  FROM applications WHERE id = $1`

	var application keysDomain.Application

	err := querier.QueryRowContext(ctx, query, appID).Scan(
		&application.ID,
		&application.Name,
		&application.Description,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, keysDomain.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get application")
	}

	return &application, nil
}

// List retrieves Applications ordered by ID with pagination support. Returns an
// empty slice if no applications exist in the requested range.
func (p *PostgreSQLApplicationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*keysDomain.Application, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, created_at, updated_at
			  FROM applications ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list applications")
	}
	defer func() { _ = rows.Close() }()

	applications := []*keysDomain.Application{}
	for rows.Next() {
		var application keysDomain.Application
		if err := rows.Scan(
			&application.ID,
			&application.Name,
			&application.Description,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan application")
		}
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate applications")
	}

	return applications, nil
}

// Delete removes an Application by ID from the PostgreSQL database. Uses transaction
// support via database.GetTx(). Returns ErrApplicationNotFound if no row was deleted.
// Owned API keys must be removed in the same transaction by the caller.
func (p *PostgreSQLApplicationRepository) Delete(ctx context.Context, appID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM applications WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, appID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete application")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return keysDomain.ErrApplicationNotFound
	}

	return nil
}

// NewPostgreSQLApplicationRepository creates a new PostgreSQL Application repository.
func NewPostgreSQLApplicationRepository(db *sql.DB) *PostgreSQLApplicationRepository {
	return &PostgreSQLApplicationRepository{db: db}
}
