// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// PostgreSQL integrity constraint violation classes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translateError maps driver and gorm errors onto the domain error kinds.
// Domain errors pass through untouched.
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrIntegrity) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &domain.NotFoundError{Entity: entity}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.Integrity(entity, "foreign key violated")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.Integrity(entity, "duplicate key")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domain.Integrity(entity, "foreign key %s violated", pgErr.ConstraintName)
		case pgUniqueViolation:
			return domain.Integrity(entity, "duplicate key %s", pgErr.ConstraintName)
		case pgCheckViolation:
			return domain.Integrity(entity, "check %s violated", pgErr.ConstraintName)
		}
	}
	return err
}

// wrap translates err and adds the operation to anything that is not a
// domain error.
func wrap(op, entity string, err error) error {
	err = translateError(entity, err)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrIntegrity) {
		return err
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}
