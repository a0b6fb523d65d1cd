package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/testutil"
)

func TestNewMySQLAPIKeyRepository(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewMySQLAPIKeyRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLAPIKeyRepository{}, repo)
}

func TestMySQLAPIKeyRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	repo := NewMySQLAPIKeyRepository(db)

	expiresAt := time.Now().UTC().Add(24 * time.Hour)
	key := newTestAPIKey(appID, "hash-mysql-create")
	key.ExpiresAt = &expiresAt

	err := repo.Create(ctx, key)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, key.ID)
	require.NoError(t, err)

	assert.Equal(t, key.ID, retrieved.ID)
	assert.Equal(t, appID, retrieved.AppID)
	assert.Equal(t, key.KeyHash, retrieved.KeyHash)
	assert.True(t, retrieved.IsActive)
	require.NotNil(t, retrieved.ExpiresAt)
	assert.WithinDuration(t, expiresAt, *retrieved.ExpiresAt, time.Second)
	assert.Nil(t, retrieved.LastUsedAt)
}

func TestMySQLAPIKeyRepository_Create_DuplicateKeyHash(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	repo := NewMySQLAPIKeyRepository(db)

	require.NoError(t, repo.Create(ctx, newTestAPIKey(appID, "hash-mysql-duplicate")))

	err := repo.Create(ctx, newTestAPIKey(appID, "hash-mysql-duplicate"))
	assert.ErrorIs(t, err, keysDomain.ErrDuplicateKeyHash)
}

func TestMySQLAPIKeyRepository_GetByKeyHash(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	repo := NewMySQLAPIKeyRepository(db)

	key := newTestAPIKey(appID, "hash-mysql-lookup")
	require.NoError(t, repo.Create(ctx, key))

	retrieved, err := repo.GetByKeyHash(ctx, "hash-mysql-lookup")
	require.NoError(t, err)
	assert.Equal(t, key.ID, retrieved.ID)
	assert.Equal(t, appID, retrieved.AppID)

	_, err = repo.GetByKeyHash(ctx, "hash-mysql-missing")
	assert.ErrorIs(t, err, keysDomain.ErrAPIKeyNotFound)
}

func TestMySQLAPIKeyRepository_ListForApplication(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	otherAppID := testutil.CreateTestApplication(t, db, "mysql", "other-owner")
	repo := NewMySQLAPIKeyRepository(db)

	require.NoError(t, repo.Create(ctx, newTestAPIKey(appID, "hash-mysql-list-1")))
	require.NoError(t, repo.Create(ctx, newTestAPIKey(appID, "hash-mysql-list-2")))
	require.NoError(t, repo.Create(ctx, newTestAPIKey(otherAppID, "hash-mysql-list-3")))

	keys, err := repo.ListForApplication(ctx, appID)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
	for _, key := range keys {
		assert.Equal(t, appID, key.AppID)
	}
}

func TestMySQLAPIKeyRepository_UpdateLastUsed(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	repo := NewMySQLAPIKeyRepository(db)

	key := newTestAPIKey(appID, "hash-mysql-last-used")
	require.NoError(t, repo.Create(ctx, key))

	usedAt := time.Now().UTC()
	require.NoError(t, repo.UpdateLastUsed(ctx, key.ID, usedAt))

	retrieved, err := repo.Get(ctx, key.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastUsedAt)
	assert.WithinDuration(t, usedAt, *retrieved.LastUsedAt, time.Second)
}

func TestMySQLAPIKeyRepository_Revoke(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	repo := NewMySQLAPIKeyRepository(db)

	key := newTestAPIKey(appID, "hash-mysql-revoke")
	require.NoError(t, repo.Create(ctx, key))

	require.NoError(t, repo.Revoke(ctx, key.ID))

	retrieved, err := repo.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.False(t, retrieved.IsActive)

	// Revoking again is a no-op
	require.NoError(t, repo.Revoke(ctx, key.ID))
}

func TestMySQLAPIKeyRepository_DeleteForApplication(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	appID := testutil.CreateTestApplication(t, db, "mysql", "key-owner")
	otherAppID := testutil.CreateTestApplication(t, db, "mysql", "other-owner")
	repo := NewMySQLAPIKeyRepository(db)

	require.NoError(t, repo.Create(ctx, newTestAPIKey(appID, "hash-mysql-del-1")))
	otherKey := newTestAPIKey(otherAppID, "hash-mysql-del-2")
	require.NoError(t, repo.Create(ctx, otherKey))

	require.NoError(t, repo.DeleteForApplication(ctx, appID))

	keys, err := repo.ListForApplication(ctx, appID)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = repo.Get(ctx, otherKey.ID)
	assert.NoError(t, err)
}

func TestMySQLAPIKeyRepository_Get_NotFound(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewMySQLAPIKeyRepository(db)

	_, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, keysDomain.ErrAPIKeyNotFound)
}
