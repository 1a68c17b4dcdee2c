package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"weatherbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, phone, created_at, updated_at`

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a user and reads the stored row back
func (r *UserRepo) CreateUser(ctx context.Context, userID int64, phone string) (*domain.User, error) {
	var user domain.User
	err := inTx(ctx, r.db, "create user", func(tx *sqlx.Tx) error {
		insert := tx.Rebind(`INSERT INTO users (id, phone) VALUES (?, ?)`)
		if _, err := tx.ExecContext(ctx, insert, userID, phone); err != nil {
			return err
		}

		query := tx.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
		return tx.GetContext(ctx, &user, query, userID)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser returns the user or nil if it does not exist
func (r *UserRepo) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	err := r.db.GetContext(ctx, &user, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get user", err)
	}

	return &user, nil
}

// DeleteUser removes the user; the schema cascades the delete to places
func (r *UserRepo) DeleteUser(ctx context.Context, userID int64) error {
	return inTx(ctx, r.db, "delete user", func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM users WHERE id = ?`), userID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return notFound("delete user")
		}
		return nil
	})
}
