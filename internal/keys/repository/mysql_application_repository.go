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

// MySQLApplicationRepository implements Application persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLApplicationRepository struct {
	db *sql.DB
}

// Create inserts a new Application into the MySQL database using BINARY(16) for UUIDs.
// Uses transaction support via database.GetTx(). Returns an error if UUID marshaling
// or database insertion fails.
func (m *MySQLApplicationRepository) Create(
	ctx context.Context,
	application *keysDomain.Application,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO applications (id, name, description, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := application.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal application id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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

// Update modifies an existing Application in the MySQL database using BINARY(16) for UUIDs.
// Uses transaction support via database.GetTx(). Returns an error if UUID marshaling
// or database update fails.
func (m *MySQLApplicationRepository) Update(
	ctx context.Context,
	application *keysDomain.Application,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE applications
			  SET name = ?,
			  	  description = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := application.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal application id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		application.Name,
		application.Description,
		application.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update application")
	}

	return nil
}

// Get retrieves an Application by ID from the MySQL database. Uses transaction support
// via database.GetTx(). Returns ErrApplicationNotFound if the application doesn't exist,
// or an error if database query fails.
func (m *MySQLApplicationRepository) Get(
	ctx context.Context,
	appID uuid.UUID,
) (*keysDomain.Application, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, created_at, updated_at
			  FROM applications WHERE id = ?`

	id, err := appID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal application id")
	}

	var application keysDomain.Application
	var idBytes []byte

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
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

	// Convert bytes back to UUID
	if err := application.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &application, nil
}

// List retrieves Applications ordered by ID with pagination support. Returns an
// empty slice if no applications exist in the requested range.
func (m *MySQLApplicationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*keysDomain.Application, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, created_at, updated_at
			  FROM applications ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list applications")
	}
	defer func() { _ = rows.Close() }()

	applications := []*keysDomain.Application{}
	for rows.Next() {
		var application keysDomain.Application
		var idBytes []byte
		if err := rows.Scan(
			&idBytes,
			&application.Name,
			&application.Description,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan application")
		}
		if err := application.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate applications")
	}

	return applications, nil
}

// Delete removes an Application by ID from the MySQL database. Uses transaction
// support via database.GetTx(). Returns ErrApplicationNotFound if no row was deleted.
// Owned API keys must be removed in the same transaction by the caller.
func (m *MySQLApplicationRepository) Delete(ctx context.Context, appID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM applications WHERE id = ?`

	id, err := appID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal application id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// NewMySQLApplicationRepository creates a new MySQL Application repository.
func NewMySQLApplicationRepository(db *sql.DB) *MySQLApplicationRepository {
	return &MySQLApplicationRepository{db: db}
}
