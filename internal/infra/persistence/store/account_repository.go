// Package store contains the gorm implementation of the persistence layer.
package store

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
	"bistro/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository binds the repository to db, which may be a transaction.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its identifier.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create inserts a new account row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		Email:        data.Email,
		PasswordHash: data.HashedPassword,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		Email:          data.Email,
		HashedPassword: data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
