package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/database"
	apperrors "github.com/allisson/apikeys/internal/errors"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// PostgreSQLAPIKeyRepository implements APIKey persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLAPIKeyRepository struct {
	db *sql.DB
}

// Create inserts a new APIKey into the PostgreSQL database. Uses transaction support
// via database.GetTx(). Returns ErrDuplicateKeyHash if the fingerprint is already
// stored, or an error if database insertion fails.
func (p *PostgreSQLAPIKeyRepository) Create(ctx context.Context, key *keysDomain.APIKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO api_keys (id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		key.ID,
		key.AppID,
		key.KeyHash,
		key.Name,
		key.IsActive,
		key.ExpiresAt,
		key.LastUsedAt,
		key.CreatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return keysDomain.ErrDuplicateKeyHash
		}
		return apperrors.Wrap(err, "failed to create api key")
	}
	return nil
}

// Get retrieves an APIKey by ID from the PostgreSQL database. Uses transaction support
// via database.GetTx(). Returns ErrAPIKeyNotFound if the key doesn't exist, or an error
// if database query fails.
func (p *PostgreSQLAPIKeyRepository) Get(
	ctx context.Context,
	keyID uuid.UUID,
) (*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE id = $1`

	return p.scanKey(querier.QueryRowContext(ctx, query, keyID))
}

// GetByKeyHash retrieves an APIKey by fingerprint from the PostgreSQL database.
// Returns ErrAPIKeyNotFound if no key matches. Active and expiry state are returned
// as stored; interpreting them is the caller's job.
func (p *PostgreSQLAPIKeyRepository) GetByKeyHash(
	ctx context.Context,
	keyHash string,
) (*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE key_hash = $1`

	return p.scanKey(querier.QueryRowContext(ctx, query, keyHash))
}

// ListForApplication retrieves all APIKeys owned by an application, ordered by ID.
// Returns an empty slice if the application owns no keys.
func (p *PostgreSQLAPIKeyRepository) ListForApplication(
	ctx context.Context,
	appID uuid.UUID,
) ([]*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE app_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, appID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer func() { _ = rows.Close() }()

	keys := []*keysDomain.APIKey{}
	for rows.Next() {
		var key keysDomain.APIKey
		if err := rows.Scan(
			&key.ID,
			&key.AppID,
			&key.KeyHash,
			&key.Name,
			&key.IsActive,
			&key.ExpiresAt,
			&key.LastUsedAt,
			&key.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan api key")
		}
		keys = append(keys, &key)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate api keys")
	}

	return keys, nil
}

// UpdateLastUsed sets the last-used timestamp for a key. The update touches only
// last_used_at so concurrent verifications can't clobber other fields.
func (p *PostgreSQLAPIKeyRepository) UpdateLastUsed(
	ctx context.Context,
	keyID uuid.UUID,
	usedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, usedAt, keyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update api key last used")
	}
	return nil
}

// Revoke sets the key's active flag to false. Idempotent: revoking an already-revoked
// key affects zero rows and succeeds.
func (p *PostgreSQLAPIKeyRepository) Revoke(ctx context.Context, keyID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE api_keys SET is_active = FALSE WHERE id = $1`

	_, err := querier.ExecContext(ctx, query, keyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke api key")
	}
	return nil
}

// DeleteForApplication removes all APIKeys owned by an application. Uses transaction
// support via database.GetTx() so it can run atomically with the application delete.
func (p *PostgreSQLAPIKeyRepository) DeleteForApplication(
	ctx context.Context,
	appID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM api_keys WHERE app_id = $1`

	_, err := querier.ExecContext(ctx, query, appID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api keys for application")
	}
	return nil
}

// scanKey scans a single APIKey row, mapping sql.ErrNoRows to ErrAPIKeyNotFound.
func (p *PostgreSQLAPIKeyRepository) scanKey(row *sql.Row) (*keysDomain.APIKey, error) {
	var key keysDomain.APIKey

	err := row.Scan(
		&key.ID,
		&key.AppID,
		&key.KeyHash,
		&key.Name,
		&key.IsActive,
		&key.ExpiresAt,
		&key.LastUsedAt,
		&key.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, keysDomain.ErrAPIKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get api key")
	}

	return &key, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLAPIKeyRepository creates a new PostgreSQL APIKey repository.
func NewPostgreSQLAPIKeyRepository(db *sql.DB) *PostgreSQLAPIKeyRepository {
	return &PostgreSQLAPIKeyRepository{db: db}
}
