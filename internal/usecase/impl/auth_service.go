// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/errors"
	"bistro/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	sessions repository.SessionManager
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Sessions repository.SessionManager
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		sessions: params.Sessions,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hashing is slow; keep it outside the database session.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return nil, err
		}

		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = srv.sessions.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.AccountRepo().Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, account exists", slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Failed to store account", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", account.Email))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies the credentials and issues the session token.
// An unknown email and a wrong password are reported identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var account *entity.Account
	err := srv.sessions.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AccountRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		account = found

		return nil
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login failed, unknown account", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account not found")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("email", account.Email))

	return &usecase.LoginOutput{
		SessionToken: account.Email,
		Account:      account,
	}, nil
}

// Logout has no server-side state to release; the caller clears the cookie.
func (srv *authService) Logout(ctx context.Context, sessionToken string) error {
	srv.log(ctx).Info("Logout", slog.String("email", sessionToken))

	return nil
}
