package store

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
	"bistro/internal/infra/persistence/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(dbtest.New(t))
	ctx := context.Background()

	account := &entity.Account{Email: "a@b.com", PasswordHash: "$2a$04$hash"}
	require.NoError(t, repo.Create(ctx, account))
	assert.False(t, account.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", found.Email)
	assert.Equal(t, "$2a$04$hash", found.PasswordHash)
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewAccountRepository(dbtest.New(t))

	found, err := repo.FindByEmail(context.Background(), "nobody@b.com")
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_FindByEmail_IsExact(t *testing.T) {
	repo := NewAccountRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Email: "a@b.com", PasswordHash: "h"}))

	_, err := repo.FindByEmail(ctx, "a@b.co")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_Create_Duplicate(t *testing.T) {
	repo := NewAccountRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Email: "a@b.com", PasswordHash: "h1"}))

	err := repo.Create(ctx, &entity.Account{Email: "a@b.com", PasswordHash: "h2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))

	// The first registration wins.
	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", found.PasswordHash)
}

func TestAccountRepository_Create_StorageFailureIsNotDuplicate(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Exec("DROP TABLE clients").Error)

	err := NewAccountRepository(db).Create(context.Background(), &entity.Account{Email: "a@b.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}
