package postgres

import (
	"strings"

	domainerrors "accounts/internal/domain/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mapAccountWriteError converts a failed account insert into the domain error
// the registry reports. A unique-index violation (the losing side of a
// concurrent registration) becomes the conflict error for the violated
// column; everything else is a generic database failure.
func mapAccountWriteError(err error) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ConflictError(uniqueViolationField(err))
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
}

// isUniqueConstraintViolation reports whether err is a duplicate-key failure.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// uniqueViolationField resolves which account column a unique violation hit,
// based on the violated constraint name. Falls back to "username" when the
// driver did not surface the constraint.
func uniqueViolationField(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return "email"
		}
	}

	return "username"
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.NotNullViolation
	}

	return false
}
