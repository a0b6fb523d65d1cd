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

// MySQLAPIKeyRepository implements APIKey persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLAPIKeyRepository struct {
	db *sql.DB
}

// Create inserts a new APIKey into the MySQL database using BINARY(16) for UUIDs.
// Uses transaction support via database.GetTx(). Returns ErrDuplicateKeyHash if the
// fingerprint is already stored, or an error if database insertion fails.
func (m *MySQLAPIKeyRepository) Create(ctx context.Context, key *keysDomain.APIKey) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO api_keys (id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := key.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal api key id")
	}

	appID, err := key.AppID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal application id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		appID,
		key.KeyHash,
		key.Name,
		key.IsActive,
		key.ExpiresAt,
		key.LastUsedAt,
		key.CreatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return keysDomain.ErrDuplicateKeyHash
		}
		return apperrors.Wrap(err, "failed to create api key")
	}
	return nil
}

// Get retrieves an APIKey by ID from the MySQL database. Uses transaction support
// via database.GetTx(). Returns ErrAPIKeyNotFound if the key doesn't exist, or an
// error if database query fails.
func (m *MySQLAPIKeyRepository) Get(
	ctx context.Context,
	keyID uuid.UUID,
) (*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE id = ?`

	id, err := keyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal api key id")
	}

	return m.scanKey(querier.QueryRowContext(ctx, query, id))
}

// GetByKeyHash retrieves an APIKey by fingerprint from the MySQL database.
// Returns ErrAPIKeyNotFound if no key matches. Active and expiry state are returned
// as stored; interpreting them is the caller's job.
func (m *MySQLAPIKeyRepository) GetByKeyHash(
	ctx context.Context,
	keyHash string,
) (*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE key_hash = ?`

	return m.scanKey(querier.QueryRowContext(ctx, query, keyHash))
}

// ListForApplication retrieves all APIKeys owned by an application, ordered by ID.
// Returns an empty slice if the application owns no keys.
func (m *MySQLAPIKeyRepository) ListForApplication(
	ctx context.Context,
	appID uuid.UUID,
) ([]*keysDomain.APIKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, app_id, key_hash, name, is_active, expires_at, last_used_at, created_at
			  FROM api_keys WHERE app_id = ? ORDER BY id`

	id, err := appID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal application id")
	}

	rows, err := querier.QueryContext(ctx, query, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer func() { _ = rows.Close() }()

	keys := []*keysDomain.APIKey{}
	for rows.Next() {
		var key keysDomain.APIKey
		var idBytes, appIDBytes []byte
		if err := rows.Scan(
			&idBytes,
			&appIDBytes,
			&key.KeyHash,
			&key.Name,
			&key.IsActive,
			&key.ExpiresAt,
			&key.LastUsedAt,
			&key.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan api key")
		}
		if err := key.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := key.AppID.UnmarshalBinary(appIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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
func (m *MySQLAPIKeyRepository) UpdateLastUsed(
	ctx context.Context,
	keyID uuid.UUID,
	usedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE api_keys SET last_used_at = ? WHERE id = ?`

	id, err := keyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal api key id")
	}

	_, err = querier.ExecContext(ctx, query, usedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update api key last used")
	}
	return nil
}

// Revoke sets the key's active flag to false. Idempotent: revoking an already-revoked
// key affects zero rows and succeeds.
func (m *MySQLAPIKeyRepository) Revoke(ctx context.Context, keyID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE api_keys SET is_active = FALSE WHERE id = ?`

	id, err := keyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal api key id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke api key")
	}
	return nil
}

// DeleteForApplication removes all APIKeys owned by an application. Uses transaction
// support via database.GetTx() so it can run atomically with the application delete.
func (m *MySQLAPIKeyRepository) DeleteForApplication(ctx context.Context, appID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM api_keys WHERE app_id = ?`

	id, err := appID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal application id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api keys for application")
	}
	return nil
}

// scanKey scans a single APIKey row, mapping sql.ErrNoRows to ErrAPIKeyNotFound.
func (m *MySQLAPIKeyRepository) scanKey(row *sql.Row) (*keysDomain.APIKey, error) {
	var key keysDomain.APIKey
	var idBytes, appIDBytes []byte

	err := row.Scan(
		&idBytes,
		&appIDBytes,
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

	// Convert bytes back to UUIDs
	if err := key.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := key.AppID.UnmarshalBinary(appIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &key, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLAPIKeyRepository creates a new MySQL APIKey repository.
func NewMySQLAPIKeyRepository(db *sql.DB) *MySQLAPIKeyRepository {
	return &MySQLAPIKeyRepository{db: db}
}
