package repository

import "context"

// SessionManager scopes persistence work to a single database session.
// The session is acquired before fn runs and released unconditionally when it
// returns: committed on success, rolled back on error or panic.
type SessionManager interface {
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current session.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
}
