package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func TestAccountService_Create_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abcdef1!",
	}
	assignedID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)

			txAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			txAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			txAccountRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = assignedID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	account, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, assignedID, account.ID)
	assert.Equal(t, input.Username, account.Username)
	assert.Equal(t, input.Email, account.Email)
	assert.Equal(t, "hashed_password", account.PasswordHash)
}

func TestAccountService_Create_UsernameConflict(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abcdef1!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)
			txAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(true, nil)

			return fn(mockFactory)
		})

	account, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAccountService_Create_EmptyUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Email:    "alice@example.com",
		Password: "Abcdef1!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)

			return fn(mockFactory)
		})

	account, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyField)
}

func TestAccountService_Create_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abcdef1!",
	}
	hashErr := errors.New("cost out of range")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)
			txAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			txAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
			fx.hasher.EXPECT().Hash(input.Password).Return("", hashErr)

			return fn(mockFactory)
		})

	account, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, hashErr)
}

func TestAccountService_GetAll_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := []*entity.Account{
		{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
	}

	fx.accountRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	accounts, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, accounts)
}

func TestAccountService_GetAll_Empty(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindAll(ctx).Return([]*entity.Account{}, nil)

	accounts, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountService_GetByID_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Account{ID: id, Username: "alice", Email: "alice@example.com"}

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)

	account, err := fx.service.GetByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, stored, account)
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetByID(ctx, id)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, id.String(), appErr.Details())
}

func TestAccountService_GetByUsername_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)

	account, err := fx.service.GetByUsername(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, stored, account)
}

// Absence of an account under a username is not an error for this lookup.
func TestAccountService_GetByUsername_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetByUsername(ctx, "ghost")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)
			txAccountRepo.EXPECT().ExistsByID(ctx, id).Return(true, nil)
			txAccountRepo.EXPECT().DeleteByID(ctx, id).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, id)

	require.NoError(t, err)
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(txAccountRepo)
			txAccountRepo.EXPECT().ExistsByID(ctx, id).Return(false, nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
