package usecase

import "context"

// LoginInput defines the data required to authenticate an account.
type LoginInput struct {
	Username string
	Password string
}

// AuthUsecase decides whether a username/password pair identifies a valid account.
type AuthUsecase interface {
	// Authenticate returns true iff the username exists and the password
	// verifies against its stored digest. An unknown username and a wrong
	// password both yield (false, nil); the error is reserved for store faults.
	Authenticate(ctx context.Context, input *LoginInput) (bool, error)
}
