package store

import (
	"context"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"

	"gorm.io/gorm"
)

// gormSessionManager implements repository.SessionManager with one GORM
// transaction per Execute call.
type gormSessionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// AccountRepo returns an account repository bound to the transaction.
func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// NewSessionManager is the fx provider for the session manager.
func NewSessionManager(db *gorm.DB) repository.SessionManager {
	return &gormSessionManager{db: db}
}

// Execute acquires a transaction, runs fn against it and always releases it:
// commit when fn succeeds, rollback when it fails or panics.
func (sm *gormSessionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) (err error) {
	tx := sm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(errors.Join(domainerrors.ErrSessionFailed, tx.Error), "begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		// Runs on error and on panic; the panic keeps unwinding afterwards.
		if rbErr := tx.Rollback().Error; rbErr != nil && err != nil {
			err = errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		return err
	}

	commitErr := tx.Commit().Error
	committed = true
	if commitErr != nil {
		return errors.Wrap(errors.Join(domainerrors.ErrSessionFailed, commitErr), "commit transaction")
	}

	return nil
}
