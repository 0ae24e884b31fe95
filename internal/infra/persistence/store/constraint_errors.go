package store

import (
	"strings"

	"bistro/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports whether err is a duplicate-key failure,
// whichever driver produced it. Anything else must not be treated as a duplicate.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Dialectors with TranslateError enabled map their own codes onto this.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// SQLite reports both PRIMARY KEY and UNIQUE conflicts with this text.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
