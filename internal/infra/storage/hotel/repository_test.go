package hotel

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO hotels \(place_id,name,description,price_per_night,rating,amenities,image_url,contact_info\) VALUES .+ RETURNING id, created_at`).
		WithArgs(int64(1), "Heritage Inn", nil, 100.0, 4.5, "wifi,pool", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	hotel, err := repo.Create(context.Background(), &domain.Hotel{
		PlaceID:       1,
		Name:          "Heritage Inn",
		PricePerNight: 100,
		Rating:        ptr.Ptr(4.5),
		Amenities:     ptr.Ptr("wifi,pool"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), hotel.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM hotels WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestRepository_ListByPlace(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM hotels WHERE place_id = \$1 ORDER BY price_per_night ASC, id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, 1, "Budget Stay", nil, 40.0, nil, nil, nil, nil, now).
			AddRow(1, 1, "Heritage Inn", "old", 100.0, 4.5, "wifi", nil, "+91", now))

	hotels, err := repo.ListByPlace(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Nil(t, hotels[0].Rating)
	assert.Equal(t, ptr.Ptr(4.5), hotels[1].Rating)
	assert.Equal(t, ptr.Ptr("+91"), hotels[1].ContactInfo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM hotels ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(columns))

	hotels, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, hotels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE hotels SET place_id = \$1, .+ WHERE id = \$9`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.Hotel{ID: 3, PlaceID: 1, Name: "Renamed"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM hotels WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrHotelNotFound)
}
