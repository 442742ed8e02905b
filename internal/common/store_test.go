package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, ErrConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrNotFound},
		{"check constraint", gorm.ErrCheckConstraintViolated, ErrInvalidArgument},
		{"exclusion violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}), ErrConflict},
		{"check violation sqlstate", &pgconn.PgError{Code: "23514", Message: "violates check"}, ErrInvalidArgument},
		{"passthrough", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateDBError(tt.err, "time slot")
			if !errors.Is(got, tt.target) {
				t.Errorf("TranslateDBError(%v) = %v, want wrapping %v", tt.err, got, tt.target)
			}
		})
	}

	if TranslateDBError(nil, "x") != nil {
		t.Error("TranslateDBError(nil) != nil")
	}
}
