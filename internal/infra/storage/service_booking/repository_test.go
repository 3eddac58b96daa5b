package service_booking

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

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	in, out := day(10), day(13)

	mock.ExpectQuery(`INSERT INTO service_bookings \(main_booking_id,customer_name,.+,status\) VALUES .+ RETURNING id, created_at`).
		WithArgs(nil, "Ravi", "ravi@example.com", "123", int64(1), int64(2), int64(3),
			in, out, 2, 1, 3, nil, 300.0, 100.0, 400.0, "Pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(20, time.Now()))

	booking, err := repo.Create(context.Background(), &domain.ServiceBooking{
		CustomerName:   "Ravi",
		CustomerEmail:  "ravi@example.com",
		CustomerPhone:  "123",
		PlaceID:        1,
		HotelID:        ptr.Ptr(int64(2)),
		TransportID:    ptr.Ptr(int64(3)),
		CheckInDate:    &in,
		CheckOutDate:   &out,
		NumPeople:      2,
		NumRooms:       1,
		NumDays:        3,
		HotelTotal:     300,
		TransportTotal: 100,
		TotalAmount:    400,
		Status:         domain.ServiceBookingPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM service_bookings WHERE id = \$1`).
		WithArgs(int64(20)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			20, nil, "Ravi", "ravi@example.com", nil, 1, nil, 3,
			nil, nil, 2, 1, 1, nil, 0.0, 100.0, 100.0, "Cancelled", time.Now()))

	booking, err := repo.GetByID(context.Background(), 20)

	require.NoError(t, err)
	assert.Nil(t, booking.HotelID)
	assert.Equal(t, ptr.Ptr(int64(3)), booking.TransportID)
	assert.Nil(t, booking.CheckInDate)
	assert.Equal(t, "", booking.CustomerPhone)
	assert.Equal(t, domain.ServiceBookingCancelled, booking.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM service_bookings WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 20)
	assert.ErrorIs(t, err, ErrServiceBookingNotFound)
}

func TestRepository_Exists_HotelOverlap(t *testing.T) {
	repo, mock := newRepo(t)
	in, out := day(10), day(13)

	// пересечение [in, out] с существующим интервалом: check_in <= out AND check_out >= in
	mock.ExpectQuery(`SELECT 1 FROM service_bookings WHERE hotel_id = \$1 AND check_in_date <= \$2 AND check_out_date >= \$3 AND status IN \(\$4,\$5\) LIMIT 1`).
		WithArgs(int64(2), out, in, "Pending", "Confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), domain.ServiceBookingFilter{
		HotelID:           ptr.Ptr(int64(2)),
		CheckInOnOrBefore: &out,
		CheckOutOnOrAfter: &in,
		Statuses:          domain.ActiveServiceBookingStatuses,
	})

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists_TransportToday(t *testing.T) {
	repo, mock := newRepo(t)
	today := day(10)

	mock.ExpectQuery(`SELECT 1 FROM service_bookings WHERE transport_id = \$1 AND customer_email = \$2 AND created_at >= \$3 AND status IN \(\$4,\$5\) LIMIT 1`).
		WithArgs(int64(3), "ravi@example.com", today, "Pending", "Confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.Exists(context.Background(), domain.ServiceBookingFilter{
		TransportID:   ptr.Ptr(int64(3)),
		CustomerEmail: ptr.Ptr("ravi@example.com"),
		CreatedFrom:   &today,
		Statuses:      domain.ActiveServiceBookingStatuses,
	})

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists_AnyStatusForDeletionGuard(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM service_bookings WHERE hotel_id = \$1 LIMIT 1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), domain.ServiceBookingFilter{HotelID: ptr.Ptr(int64(2))})

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE service_bookings SET status = \$1 WHERE id = \$2`).
		WithArgs("Cancelled", int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 20, domain.ServiceBookingCancelled))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ByPlace(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM service_bookings WHERE place_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns))

	bookings, err := repo.List(context.Background(), domain.ServiceBookingFilter{PlaceID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
