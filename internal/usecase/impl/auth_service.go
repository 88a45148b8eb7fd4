package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// Authenticate looks up the account by username and verifies the password
// against its stored digest. An unknown username short-circuits to false
// without a hash comparison; a wrong password is also false. Neither case is
// an error, so callers cannot tell the two apart from the result shape.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (bool, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, nil
		}

		srv.logger.Error("Failed to load account for authentication",
			slog.String("username", input.Username), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to load account for authentication")
	}

	return srv.hasher.Check(input.Password, account.PasswordHash), nil
}
