// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountUsecase defines the interface for account-management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Create registers a new account: validation runs in a fixed order and the
	// first failing rule determines the returned error; on success the
	// persisted account (with store-assigned id and creation time) is returned.
	Create(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// GetAll returns every persisted account.
	GetAll(ctx context.Context) ([]*entity.Account, error)

	// GetByID returns the account with the given id, or a not-found error.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// GetByUsername returns the account with the given username, or (nil, nil)
	// when no account matches. Absence is not an error for this lookup.
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Delete permanently removes the account with the given id, or returns a
	// not-found error when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
