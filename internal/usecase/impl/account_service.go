// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create orchestrates the complete registration process: validation in a fixed
// order, credential hashing, and persistence. Validation and the insert share
// one transaction so the uniqueness read-then-act sequence commits atomically;
// the table's unique indexes settle any race the pre-check cannot see.
func (srv *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Starting account registration", slog.String("username", input.Username))

	var created *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := validateNewAccount(ctx, accountRepo, input); err != nil {
			srv.log(ctx).Warn("Registration validation failed",
				slog.String("username", input.Username), slog.Any("error", err))

			return err
		}

		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(err, "failed to hash password during registration")
		}

		newAccount := &entity.Account{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: passwordHash,
		}

		if err := accountRepo.Save(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to persist account during registration")
		}

		created = newAccount

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", created.ID))

	return created, nil
}

// GetAll returns every persisted account.
func (srv *accountService) GetAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetByID returns the account with the given id, or a not-found error.
func (srv *accountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.AccountNotFoundError(id.String())
		}

		srv.log(ctx).Error("Failed to find account by id", slog.Any("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// GetByUsername returns the account with the given username. Absence is
// (nil, nil), not an error; this is a lookup, not an assertion of existence.
func (srv *accountService) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}

		srv.log(ctx).Error("Failed to find account by username", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return account, nil
}

// Delete permanently removes the account with the given id. The existence
// check and the delete share one transaction.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("accountID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		exists, err := accountRepo.ExistsByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check account existence")
		}
		if !exists {
			return domainerrors.AccountNotFoundError(id.String())
		}

		return accountRepo.DeleteByID(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}
