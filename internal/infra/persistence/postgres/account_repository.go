package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// ExistsByUsername reports whether any account holds the given username.
func (repo *accountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether any account holds the given email.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// ExistsByID reports whether an account with the given id exists.
func (repo *accountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check account existence")
	}

	return count > 0, nil
}

// FindAll retrieves every persisted account. Ordering is store-defined.
func (repo *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	if err := repo.db.WithContext(ctx).Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves a single account by username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// Save persists a new account entity to the database. The id and creation
// timestamp assigned by PostgreSQL are written back into the entity.
// A unique-index violation (the losing side of a concurrent registration)
// is mapped back to the domain conflict error with the offending column.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return mapAccountWriteError(err)
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// DeleteByID permanently removes the account with the given id. Deleting a
// nonexistent id is not an error at this layer; existence is the caller's check.
func (repo *accountRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// toAccountDomain maps the persistence model back to a pure domain entity.
func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           accountM.ID,
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		CreatedAt:    accountM.CreatedAt,
	}
}

// fromAccountDomain maps a pure domain entity to a GORM persistence model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}
