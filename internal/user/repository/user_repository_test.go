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

func TestNewMySQLUserRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := db.Exec(`
		INSERT INTO Users (name, email, passwordHash)
		VALUES ('Admin', 'admin@parcelo.dev', '$2a$04$fakehashfakehashfakehash')
	`)
	require.NoError(t, err)

	user, err := repo.FindByEmail(context.Background(), "admin@parcelo.dev")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "ghost@parcelo.dev")
	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}
