package sqlstore

import (
	"context"
	"errors"

	"weatherbot/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// inTx runs fn in a transaction that is committed only when fn succeeds.
// Any error, including a failed commit, comes back as a StorageError.
func inTx(ctx context.Context, db *sqlx.DB, op string, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return wrap(op, err)
	}

	if err := tx.Commit(); err != nil {
		return wrap(op, err)
	}

	return nil
}

// wrap converts a driver error into a StorageError, keeping existing ones
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *repository.StorageError
	if errors.As(err, &se) {
		return se
	}
	return repository.NewStorageError(op, classify(err), err)
}

// notFound builds the error returned when a mutation matched no rows
func notFound(op string) error {
	return repository.NewStorageError(op, repository.CategoryNotFound, nil)
}

// classify maps driver error codes to storage categories
func classify(err error) repository.Category {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return repository.CategoryUnique
		case "23503": // foreign_key_violation
			return repository.CategoryForeignKey
		}
		return repository.CategoryOther
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return repository.CategoryUnique
		case sqlite3.ErrConstraintForeignKey:
			return repository.CategoryForeignKey
		}
	}

	return repository.CategoryOther
}
