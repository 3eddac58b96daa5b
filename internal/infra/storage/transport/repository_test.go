package transport

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

	mock.ExpectQuery(`INSERT INTO transports \(place_id,transport_type,name,.+\) VALUES .+ RETURNING id, created_at`).
		WithArgs(int64(1), "bus", "City Express", nil, 50.0, 40, nil, "06:00-22:00", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))

	transport, err := repo.Create(context.Background(), &domain.Transport{
		PlaceID:        1,
		Type:           domain.TransportBus,
		Name:           "City Express",
		Price:          50,
		Capacity:       ptr.Ptr(40),
		OperatingHours: ptr.Ptr("06:00-22:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), transport.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM transports WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(4, 1, "train", "Shatabdi", nil, 80.0, nil, 2.5, nil, nil, now))

	transport, err := repo.GetByID(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, domain.TransportTrain, transport.Type)
	assert.Nil(t, transport.Capacity)
	assert.Equal(t, ptr.Ptr(2.5), transport.DurationHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM transports WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTransportNotFound)
}

func TestRepository_ListByPlace(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM transports WHERE place_id = \$1 ORDER BY transport_type ASC, price ASC, id ASC`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 2, "bus", "Local", nil, 10.0, nil, nil, nil, nil, now).
			AddRow(2, 2, "cab", "Taxi", nil, 30.0, 4, nil, nil, nil, now))

	transports, err := repo.ListByPlace(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, transports, 2)
	assert.Equal(t, domain.TransportCab, transports[1].Type)
	assert.Equal(t, ptr.Ptr(4), transports[1].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM transports WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
