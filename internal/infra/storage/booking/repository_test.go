package booking

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
	travel := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO bookings \(place_id,name,email,phone,travel_date,num_people,special_requests,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) RETURNING id, created_at`).
		WithArgs(int64(1), "Asha", "asha@example.com", "999", travel, 2, nil, "Pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		PlaceID:    1,
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "999",
		TravelDate: travel,
		NumPeople:  2,
		Status:     domain.BookingPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	travel := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(10, 1, "Asha", "asha@example.com", "999", travel, 2, "veg food", "Confirmed", time.Now()))

	booking, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.Equal(t, ptr.Ptr("veg food"), booking.SpecialRequests)
	assert.True(t, booking.TravelDate.Equal(travel))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Exists_DuplicateFilter(t *testing.T) {
	repo, mock := newRepo(t)
	travel := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE email = \$1 AND travel_date = \$2 AND status IN \(\$3,\$4\) LIMIT 1`).
		WithArgs("asha@example.com", travel, "Pending", "Confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), domain.BookingFilter{
		Email:      ptr.Ptr("asha@example.com"),
		TravelDate: &travel,
		Statuses:   domain.ActiveBookingStatuses,
	})

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists_None(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE place_id = \$1 LIMIT 1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.Exists(context.Background(), domain.BookingFilter{PlaceID: ptr.Ptr(int64(3))})

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	travel := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM bookings ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, 1, "B", "b@example.com", "1", travel, 1, nil, "Pending", time.Now()).
			AddRow(1, 1, "A", "a@example.com", "1", travel, 3, nil, "Rejected", time.Now()))

	bookings, err := repo.List(context.Background(), domain.BookingFilter{})

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Nil(t, bookings[0].SpecialRequests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count_Pending(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status IN \(\$1\)`).
		WithArgs("Pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.Count(context.Background(), domain.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingPending},
	})

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WithArgs("Confirmed", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.BookingConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 10, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
