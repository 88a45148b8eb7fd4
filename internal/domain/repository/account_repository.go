// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// ExistsByUsername reports whether any account holds the given username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether any account holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByID reports whether an account with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindAll retrieves every persisted account. Ordering is store-defined.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	// Returns ErrAccountNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by username.
	// Returns ErrAccountNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Save persists a new account. The store assigns the id and creation
	// timestamp and writes them back into the entity.
	Save(ctx context.Context, account *entity.Account) error

	// DeleteByID permanently removes the account with the given id.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
