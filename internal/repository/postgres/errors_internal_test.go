package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"missing row", gorm.ErrRecordNotFound, domain.ErrChampionNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, domain.ErrNotFound},
		{"check constraint", gorm.ErrCheckConstraintViolated, domain.ErrInvalidArgument},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, domain.ErrConflict},
		{"serialization failure", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}), domain.ErrConflict},
		{"other postgres error", &pgconn.PgError{Code: "53300"}, boom},
		{"other error", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, domain.ErrChampionNotFound)
			if tt.want == boom {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.NoError(t, translateError(nil, domain.ErrChampionNotFound))
}
