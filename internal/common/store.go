package common

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories care about beyond what gorm translates itself.
const (
	pgExclusionViolation = "23P01"
	pgCheckViolation     = "23514"
)

// TranslateDBError maps store errors onto the error taxonomy. The gorm.DB must be
// opened with TranslateError enabled for duplicate-key and foreign-key errors to be
// recognised. Unknown errors are returned wrapped but otherwise unchanged.
func TranslateDBError(err error, what string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", what, ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s references a missing record: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%s: %w", what, ErrInvalidArgument)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return fmt.Errorf("%s overlaps an existing record: %w", what, ErrConflict)
		case pgCheckViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.Message, ErrInvalidArgument)
		}
	}

	return fmt.Errorf("%s: %w", what, err)
}
