package place

import (
	"context"
	"database/sql"
	"errors"
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

func placeRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO places \(name,state,city,short_intro,description,culture_description,image_url,video_url,price_per_person,duration_days\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10\) RETURNING id, created_at`).
		WithArgs("Hampi", "Karnataka", "Hospet", "ruins", "desc", "culture", nil, nil, 1500.0, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	place, err := repo.Create(context.Background(), &domain.Place{
		Name:               "Hampi",
		State:              "Karnataka",
		City:               "Hospet",
		ShortIntro:         "ruins",
		Description:        "desc",
		CultureDescription: "culture",
		PricePerPerson:     1500,
		DurationDays:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), place.ID)
	assert.Equal(t, now, place.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM places WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(placeRows().AddRow(3, "Mysore", "Karnataka", "Mysore", "palace", "d", "c",
			"https://img", nil, 900.0, 1, now))

	place, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Mysore", place.Name)
	assert.Equal(t, ptr.Ptr("https://img"), place.ImageURL)
	assert.Nil(t, place.VideoURL)
	assert.Equal(t, 900.0, place.PricePerPerson)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM places WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestRepository_List_FilterByState(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM places WHERE state = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("Tamil Nadu").
		WillReturnRows(placeRows().
			AddRow(2, "Madurai", "Tamil Nadu", "", "temple", "d", "c", nil, nil, 0.0, 1, now).
			AddRow(1, "Thanjavur", "Tamil Nadu", "", "temple", "d", "c", nil, nil, 0.0, 1, now))

	places, err := repo.List(context.Background(), domain.PlaceFilter{State: ptr.Ptr("Tamil Nadu")})

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Madurai", places[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_All(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM places ORDER BY created_at DESC, id DESC`).
		WillReturnRows(placeRows())

	places, err := repo.List(context.Background(), domain.PlaceFilter{})

	require.NoError(t, err)
	assert.Empty(t, places)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE places SET name = \$1, .+ WHERE id = \$11`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Place{ID: 5, Name: "x"})
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM places WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_ExecError(t *testing.T) {
	repo, mock := newRepo(t)
	dbErr := errors.New("connection reset")

	mock.ExpectExec(`DELETE FROM places`).WillReturnError(dbErr)

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM places`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
