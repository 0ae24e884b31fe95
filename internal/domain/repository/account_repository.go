// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// ErrAccountNotFound is returned when no account matches the identifier.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store.
type AccountRepository interface {
	// FindByEmail retrieves an account by its identifier.
	// It returns ErrAccountNotFound when the account does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts a new account. A duplicate identifier fails with
	// domainerrors.ErrAccountAlreadyExists; every other failure is a
	// domainerrors.DatabaseExecuteError.
	Create(ctx context.Context, account *entity.Account) error
}
