package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"weatherbot/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeCols = []string{"id", "name", "lat", "lon", "user_id", "created_at", "updated_at"}

func placeRow(id int64, name string, lat, lon float64, userID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(placeCols).AddRow(id, name, lat, lon, userID, now, now)
}

func TestPlaceRepo_CreatePlace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO places \\(name, lat, lon, user_id\\)").
		WithArgs("Home", 40.7128, -74.006, int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT id, name, lat, lon, user_id, created_at, updated_at FROM places WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(placeRow(7, "Home", 40.7128, -74.006, 123))
	mock.ExpectCommit()

	place, err := repo.CreatePlace(context.Background(), "Home", 40.7128, -74.006, 123)

	require.NoError(t, err)
	assert.Equal(t, int64(7), place.ID)
	assert.Equal(t, "Home", place.Name)
	assert.Equal(t, 40.7128, place.Lat)
	assert.Equal(t, -74.006, place.Lon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepo_CreatePlace_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category repository.Category
	}{
		{
			name:     "duplicate name",
			err:      &pq.Error{Code: "23505", Constraint: "places_name_user_id_key"},
			category: repository.CategoryUnique,
		},
		{
			name:     "unknown user",
			err:      &pq.Error{Code: "23503"},
			category: repository.CategoryForeignKey,
		},
		{
			name:     "generic failure",
			err:      errors.New("broken pipe"),
			category: repository.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPlaceRepo(db)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO places").WillReturnError(tt.err)
			mock.ExpectRollback()

			place, err := repo.CreatePlace(context.Background(), "Home", 1, 2, 123)

			assert.Nil(t, place)
			var se *repository.StorageError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "create place", se.Op)
			assert.Equal(t, tt.category, se.Category)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPlaceRepo_CreatePlace_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO places").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT (.+) FROM places WHERE id").WillReturnRows(placeRow(7, "Home", 1, 2, 123))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	place, err := repo.CreatePlace(context.Background(), "Home", 1, 2, 123)

	assert.Nil(t, place)
	assert.Error(t, err)
	assert.Equal(t, repository.CategoryOther, repository.CategoryOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepo_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("by id is scoped by user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectQuery("FROM places WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(int64(7), int64(123)).
			WillReturnRows(placeRow(7, "Home", 1, 2, 123))

		place, err := repo.GetPlace(ctx, 7, 123)
		require.NoError(t, err)
		assert.Equal(t, int64(7), place.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by coordinates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectQuery("FROM places WHERE user_id = \\$1 AND lat = \\$2 AND lon = \\$3").
			WithArgs(int64(123), 40.7128, -74.006).
			WillReturnRows(placeRow(7, "Home", 40.7128, -74.006, 123))

		place, err := repo.GetPlaceByCoordinates(ctx, 123, 40.7128, -74.006)
		require.NoError(t, err)
		assert.Equal(t, "Home", place.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by name missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectQuery("FROM places WHERE user_id = \\$1 AND name = \\$2").
			WithArgs(int64(123), "Work").
			WillReturnRows(sqlmock.NewRows(placeCols))

		place, err := repo.GetPlaceByName(ctx, "Work", 123)
		assert.NoError(t, err)
		assert.Nil(t, place)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user places", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		now := time.Now()
		mock.ExpectQuery("FROM places WHERE user_id = \\$1 ORDER BY name").
			WithArgs(int64(123)).
			WillReturnRows(sqlmock.NewRows(placeCols).
				AddRow(1, "Home", 1.0, 2.0, 123, now, now).
				AddRow(2, "Work", 3.0, 4.0, 123, now, now))

		places, err := repo.GetUserPlaces(ctx, 123)
		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "Home", places[0].Name)
		assert.Equal(t, "Work", places[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectQuery("FROM places WHERE user_id").WillReturnError(errors.New("timeout"))

		places, err := repo.GetUserPlaces(ctx, 123)
		assert.Nil(t, places)
		assert.Equal(t, repository.CategoryOther, repository.CategoryOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlaceRepo_UpdatePlaceName(t *testing.T) {
	t.Run("renamed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE places SET name = \\$1, updated_at = CURRENT_TIMESTAMP WHERE id = \\$2 AND user_id = \\$3").
			WithArgs("Office", int64(7), int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM places WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(placeRow(7, "Office", 1, 2, 123))
		mock.ExpectCommit()

		place, err := repo.UpdatePlaceName(context.Background(), 7, 123, "Office")
		require.NoError(t, err)
		assert.Equal(t, "Office", place.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing place", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE places").
			WithArgs("Office", int64(99), int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		place, err := repo.UpdatePlaceName(context.Background(), 99, 123, "Office")
		assert.Nil(t, place)
		assert.True(t, repository.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlaceRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE places").WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		place, err := repo.UpdatePlaceName(context.Background(), 7, 123, "Work")
		assert.Nil(t, place)
		assert.True(t, repository.IsUnique(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlaceRepo_DeletePlace(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		notFound     bool
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "stale id", rowsAffected: 0, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPlaceRepo(db)

			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM places WHERE id = \\$1 AND user_id = \\$2").
				WithArgs(int64(7), int64(123)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			if tt.notFound {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			err := repo.DeletePlace(context.Background(), 7, 123)

			if tt.notFound {
				assert.True(t, repository.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
