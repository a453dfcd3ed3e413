package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorClassification(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert failed")
	}

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "unique from pg", err: wrapped(pgUniqueViolation), check: isUniqueConstraintViolation},
		{name: "unique from gorm", err: gorm.ErrDuplicatedKey, check: isUniqueConstraintViolation},
		{name: "foreign key", err: wrapped(pgForeignKeyViolation), check: isForeignKeyConstraintViolation},
		{name: "not null", err: wrapped(pgNotNullViolation), check: isNotNullConstraintViolation},
		{name: "check", err: wrapped(pgCheckViolation), check: isCheckConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}

	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
	assert.False(t, isCheckConstraintViolation(wrapped(pgUniqueViolation)))
}
