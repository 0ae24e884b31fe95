// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the session token issued after a successful login.
// The token is the account email; it is stored in the session cookie as is.
type LoginOutput struct {
	SessionToken string
	Account      *entity.Account
}

// AuthUsecase defines the account registration and login operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Logout ends the session identified by the token. It never fails for
	// unknown or empty tokens.
	Logout(ctx context.Context, sessionToken string) error
}
