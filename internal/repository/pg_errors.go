package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wellness/internal/error_values"
)

const (
	codeUniqueViolation      = "23505"
	codeFKViolation          = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isRetryable reports errors another attempt of the same transaction may not hit.
func isRetryable(err error) bool {
	switch pgErrorCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}

func conflictOr(err error, prefix string) error {
	if isRetryable(err) {
		return errorvalues.ErrConflict
	}
	return errors.New(prefix + err.Error())
}
