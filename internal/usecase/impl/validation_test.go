package impl

import (
	"context"
	"testing"

	domainerrors "accounts/internal/domain/errors"
	mockRepo "accounts/internal/mocks/repository"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistrationInput() *usecase.CreateAccountInput {
	return &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Abcdef1!",
	}
}

func TestValidateNewAccount_Success(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	input := validRegistrationInput()

	accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	accountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

	err := validateNewAccount(ctx, accountRepo, input)

	require.NoError(t, err)
}

func TestValidateNewAccount_EmptyFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.CreateAccountInput)
		details string
	}{
		{
			name:    "empty username",
			mutate:  func(in *usecase.CreateAccountInput) { in.Username = "" },
			details: "username",
		},
		{
			name:    "empty email",
			mutate:  func(in *usecase.CreateAccountInput) { in.Email = "" },
			details: "email",
		},
		{
			name:    "empty password",
			mutate:  func(in *usecase.CreateAccountInput) { in.Password = "" },
			details: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			accountRepo := mockRepo.NewMockAccountRepository(t)
			input := validRegistrationInput()
			tt.mutate(input)

			err := validateNewAccount(ctx, accountRepo, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrEmptyField)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

// The emptiness checks run in a fixed order, so when several fields are
// blank the username is reported first.
func TestValidateNewAccount_EmptyFieldOrder(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)

	err := validateNewAccount(ctx, accountRepo, &usecase.CreateAccountInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyField)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "username", appErr.Details())
}

func TestValidateNewAccount_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	input := validRegistrationInput()

	accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(true, nil)

	err := validateNewAccount(ctx, accountRepo, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "username", appErr.Details())
}

func TestValidateNewAccount_EmailTaken(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	input := validRegistrationInput()

	accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	accountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	err := validateNewAccount(ctx, accountRepo, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email", appErr.Details())
}

func TestValidateNewAccount_UniquenessCheckFails(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	input := validRegistrationInput()
	storeErr := errors.New("connection refused")

	accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, storeErr)

	err := validateNewAccount(ctx, accountRepo, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestValidateNewAccount_EmailFormat(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "standard address", email: "user@example.com", valid: true},
		{name: "minimal address", email: "a@b.c", valid: true},
		{name: "plus and dots in local part", email: "first.last+tag@example.co", valid: true},
		{name: "missing at sign", email: "not-an-email", valid: false},
		{name: "missing domain", email: "user@", valid: false},
		{name: "missing local part", email: "@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			accountRepo := mockRepo.NewMockAccountRepository(t)
			input := validRegistrationInput()
			input.Email = tt.email

			accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			accountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			err := validateNewAccount(ctx, accountRepo, input)

			if tt.valid {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidFormat)
		})
	}
}

func TestValidateNewAccount_WeakPassword(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	input := validRegistrationInput()
	input.Password = "abc123"

	accountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	accountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

	err := validateNewAccount(ctx, accountRepo, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFormat)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "minimum 8 characters")
	assert.Contains(t, appErr.Details(), "at least 1 uppercase letter")
	assert.Contains(t, appErr.Details(), "at least 1 special character (@$!%*?&)")
	assert.NotContains(t, appErr.Details(), "lowercase")
	assert.NotContains(t, appErr.Details(), "number")
}

func TestPasswordComplexityIssues(t *testing.T) {
	tests := []struct {
		name     string
		password string
		issues   []string
	}{
		{
			name:     "meets every requirement",
			password: "Abcdef1!",
			issues:   nil,
		},
		{
			name:     "extra characters beyond the required classes",
			password: "Abcdef1!#",
			issues:   nil,
		},
		{
			name:     "too short but otherwise complete",
			password: "Ab1@",
			issues:   []string{"minimum 8 characters"},
		},
		{
			name:     "no uppercase",
			password: "abcdef1@",
			issues:   []string{"at least 1 uppercase letter"},
		},
		{
			name:     "no lowercase",
			password: "ABCDEF1@",
			issues:   []string{"at least 1 lowercase letter"},
		},
		{
			name:     "no digit",
			password: "Abcdefg@",
			issues:   []string{"at least 1 number"},
		},
		{
			name:     "special character outside the allowed set",
			password: "Abcdefg1#",
			issues:   []string{"at least 1 special character (@$!%*?&)"},
		},
		{
			name:     "fails everything",
			password: "",
			issues: []string{
				"minimum 8 characters",
				"at least 1 lowercase letter",
				"at least 1 uppercase letter",
				"at least 1 number",
				"at least 1 special character (@$!%*?&)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.issues, passwordComplexityIssues(tt.password))
		})
	}
}
