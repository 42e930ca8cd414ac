package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelo/internal/errors"
	"parcelo/internal/testutil"
)

// Unit Tests

func TestNewMySQLDeliverymanRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLDeliverymanRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestDeliverymanRepository_CreateAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	dm, err := repo.Create(context.Background(), "John Doe", "john@example.com", nil)
	require.NoError(t, err)
	assert.NotZero(t, dm.ID)
	assert.Equal(t, "John Doe", dm.Name)
	assert.Equal(t, "john@example.com", dm.Email)
	assert.Nil(t, dm.AvatarID)

	found, err := repo.FindByID(context.Background(), dm.ID)
	require.NoError(t, err)
	assert.Equal(t, dm.ID, found.ID)
}

func TestDeliverymanRepository_FindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	_, err := repo.Create(context.Background(), "John Doe", "john@example.com", nil)
	require.NoError(t, err)

	found, err := repo.FindByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.Name)

	_, err = repo.FindByEmail(context.Background(), "ghost@example.com")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestDeliverymanRepository_FindAll_JoinsAvatar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	res, err := db.Exec(`INSERT INTO Files (name, path) VALUES ('avatar.png', 'abc123.png')`)
	require.NoError(t, err)
	fid, err := res.LastInsertId()
	require.NoError(t, err)
	avatarID := uint(fid)

	withAvatar, err := repo.Create(context.Background(), "John Doe", "john@example.com", &avatarID)
	require.NoError(t, err)

	plain, err := repo.Create(context.Background(), "Jane Roe", "jane@example.com", nil)
	require.NoError(t, err)

	deliverymen, avatars, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, deliverymen, 2)

	avatar, ok := avatars[withAvatar.ID]
	require.True(t, ok)
	assert.Equal(t, "avatar.png", avatar.Name)
	assert.Equal(t, "abc123.png", avatar.Path)

	_, ok = avatars[plain.ID]
	assert.False(t, ok)
}

func TestDeliverymanRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	dm, err := repo.Create(context.Background(), "John Doe", "john@example.com", nil)
	require.NoError(t, err)

	err = repo.Update(context.Background(), dm.ID, "Johnny Doe", "johnny@example.com", nil)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), dm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", found.Name)
	assert.Equal(t, "johnny@example.com", found.Email)
}

func TestDeliverymanRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	dm, err := repo.Create(context.Background(), "John Doe", "john@example.com", nil)
	require.NoError(t, err)

	err = repo.Delete(context.Background(), dm.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), dm.ID)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestDeliverymanRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDeliverymanRepository(db)

	err := repo.Delete(context.Background(), uint(9999))
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
