package store

import (
	"testing"

	"bistro/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "sqlite primary key", err: errors.New("constraint failed: UNIQUE constraint failed: clients.email (1555)"), want: true},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), want: false},
		{name: "missing table", err: errors.New("no such table: clients"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}
