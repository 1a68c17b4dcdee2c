package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"weatherbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

const placeColumns = `id, name, lat, lon, user_id, created_at, updated_at`

// PlaceRepo implements repository.PlaceRepository
type PlaceRepo struct {
	db *sqlx.DB
}

// NewPlaceRepo creates a new place repository
func NewPlaceRepo(db *sqlx.DB) *PlaceRepo {
	return &PlaceRepo{db: db}
}

// CreatePlace inserts a place and reads the stored row back
func (r *PlaceRepo) CreatePlace(ctx context.Context, name string, lat, lon float64, userID int64) (*domain.Place, error) {
	var place domain.Place
	err := inTx(ctx, r.db, "create place", func(tx *sqlx.Tx) error {
		var id int64
		insert := tx.Rebind(`
			INSERT INTO places (name, lat, lon, user_id)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`)
		if err := tx.QueryRowxContext(ctx, insert, name, lat, lon, userID).Scan(&id); err != nil {
			return err
		}

		query := tx.Rebind(`SELECT ` + placeColumns + ` FROM places WHERE id = ?`)
		return tx.GetContext(ctx, &place, query, id)
	})
	if err != nil {
		return nil, err
	}

	return &place, nil
}

// GetPlace returns the user's place by id or nil
func (r *PlaceRepo) GetPlace(ctx context.Context, placeID, userID int64) (*domain.Place, error) {
	return r.getOne(ctx, "get place",
		`SELECT `+placeColumns+` FROM places WHERE id = ? AND user_id = ?`,
		placeID, userID,
	)
}

// GetPlaceByCoordinates returns the user's place at exactly these coordinates or nil
func (r *PlaceRepo) GetPlaceByCoordinates(ctx context.Context, userID int64, lat, lon float64) (*domain.Place, error) {
	return r.getOne(ctx, "get place by coordinates",
		`SELECT `+placeColumns+` FROM places WHERE user_id = ? AND lat = ? AND lon = ? ORDER BY id LIMIT 1`,
		userID, lat, lon,
	)
}

// GetPlaceByName returns the user's place with this name or nil
func (r *PlaceRepo) GetPlaceByName(ctx context.Context, name string, userID int64) (*domain.Place, error) {
	return r.getOne(ctx, "get place by name",
		`SELECT `+placeColumns+` FROM places WHERE user_id = ? AND name = ?`,
		userID, name,
	)
}

// GetUserPlaces returns all places of the user ordered by name
func (r *PlaceRepo) GetUserPlaces(ctx context.Context, userID int64) ([]domain.Place, error) {
	var places []domain.Place
	query := r.db.Rebind(`SELECT ` + placeColumns + ` FROM places WHERE user_id = ? ORDER BY name`)
	if err := r.db.SelectContext(ctx, &places, query, userID); err != nil {
		return nil, wrap("get user places", err)
	}

	return places, nil
}

// UpdatePlaceName renames the user's place. A missing place is a NotFound error.
func (r *PlaceRepo) UpdatePlaceName(ctx context.Context, placeID, userID int64, name string) (*domain.Place, error) {
	var place domain.Place
	err := inTx(ctx, r.db, "update place name", func(tx *sqlx.Tx) error {
		update := tx.Rebind(`
			UPDATE places
			SET name = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND user_id = ?
		`)
		res, err := tx.ExecContext(ctx, update, name, placeID, userID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return notFound("update place name")
		}

		query := tx.Rebind(`SELECT ` + placeColumns + ` FROM places WHERE id = ?`)
		return tx.GetContext(ctx, &place, query, placeID)
	})
	if err != nil {
		return nil, err
	}

	return &place, nil
}

// DeletePlace removes the user's place. A missing place is a NotFound error.
func (r *PlaceRepo) DeletePlace(ctx context.Context, placeID, userID int64) error {
	return inTx(ctx, r.db, "delete place", func(tx *sqlx.Tx) error {
		query := tx.Rebind(`DELETE FROM places WHERE id = ? AND user_id = ?`)
		res, err := tx.ExecContext(ctx, query, placeID, userID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return notFound("delete place")
		}
		return nil
	})
}

func (r *PlaceRepo) getOne(ctx context.Context, op, query string, args ...interface{}) (*domain.Place, error) {
	var place domain.Place
	err := r.db.GetContext(ctx, &place, r.db.Rebind(query), args...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(op, err)
	}

	return &place, nil
}
