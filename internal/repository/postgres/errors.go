package postgres

import (
	"errors"
	"fmt"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL aborts one side of a write race with these codes.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// translateError maps gorm's errors onto the domain error kinds. notFound is
// returned for missing rows so callers get an entity-specific message.
func translateError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	case isWriteRace(err):
		return fmt.Errorf("%w: concurrent write: %v", domain.ErrConflict, err)
	default:
		return err
	}
}

func isWriteRace(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
}
