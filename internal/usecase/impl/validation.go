package impl

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/usecase"
)

const (
	passwordMinLength    = 8
	passwordSpecialChars = "@$!%*?&"
)

// emailPattern is the structural address check: one or more of
// letters/digits/+_.-, an @, then anything non-empty.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)

// validateNewAccount runs the registration rules in a fixed order; the first
// failing rule determines the returned error. The uniqueness rules read
// through the given repository, the rest are pure string checks.
func validateNewAccount(ctx context.Context, accountRepo repository.AccountRepository, input *usecase.CreateAccountInput) error {
	if input.Username == "" {
		return domainerrors.EmptyFieldError("username")
	}
	if input.Email == "" {
		return domainerrors.EmptyFieldError("email")
	}
	if input.Password == "" {
		return domainerrors.EmptyFieldError("password")
	}

	usernameTaken, err := accountRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return errors.Wrap(err, "failed to check username uniqueness")
	}
	if usernameTaken {
		return domainerrors.ConflictError("username")
	}

	emailTaken, err := accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if emailTaken {
		return domainerrors.ConflictError("email")
	}

	if !emailPattern.MatchString(input.Email) {
		return domainerrors.InvalidFormatError("email", "email must look like name@domain")
	}

	if issues := passwordComplexityIssues(input.Password); len(issues) > 0 {
		return domainerrors.InvalidFormatError("password", "password must have: "+strings.Join(issues, "; "))
	}

	return nil
}

// passwordComplexityIssues returns every unmet password requirement, so the
// caller can report them all at once.
func passwordComplexityIssues(password string) []string {
	var issues []string

	if utf8.RuneCountInString(password) < passwordMinLength {
		issues = append(issues, "minimum 8 characters")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		issues = append(issues, "at least 1 lowercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		issues = append(issues, "at least 1 uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		issues = append(issues, "at least 1 number")
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		issues = append(issues, "at least 1 special character ("+passwordSpecialChars+")")
	}

	return issues
}
