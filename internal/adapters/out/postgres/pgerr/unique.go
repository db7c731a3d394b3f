// Package pgerr classifies PostgreSQL errors surfaced through gorm.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolationCode is the SQLSTATE of a unique constraint violation.
const UniqueViolationCode = "23505"

// IsUniqueViolation recognises both the raw pgx error and gorm's translated
// gorm.ErrDuplicatedKey (gorm.Config{TranslateError: true}).
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode
}
