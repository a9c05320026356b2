package postgres

import (
	"strings"

	"gorm.io/gorm"

	"musea/internal/errors"
)

// isUniqueConstraintViolation reports whether err stems from a unique index.
// GORM translates the PostgreSQL error when its error translator is enabled;
// the message check covers drivers that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") // PostgreSQL unique_violation error code
}
