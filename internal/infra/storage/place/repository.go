package place

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/dbmetrics"
	"github.com/m04kA/SMC-CulturalTours/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"state",
	"city",
	"short_intro",
	"description",
	"culture_description",
	"image_url",
	"video_url",
	"price_per_person",
	"duration_days",
	"created_at",
}

// Repository репозиторий для работы с направлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория направлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое направление
func (r *Repository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("places").
		Columns(
			"name",
			"state",
			"city",
			"short_intro",
			"description",
			"culture_description",
			"image_url",
			"video_url",
			"price_per_person",
			"duration_days",
		).
		Values(
			place.Name,
			place.State,
			place.City,
			place.ShortIntro,
			place.Description,
			place.CultureDescription,
			place.ImageURL,
			place.VideoURL,
			place.PricePerPerson,
			place.DurationDays,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&place.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	place.CreatedAt = createdAt.Time

	return place, nil
}

// GetByID получает направление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	place, err := scanPlace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan place: %w", ErrScanRow, err)
	}

	return place, nil
}

// List получает направления, сначала новые
// Если filter.State задан, возвращает только направления этого штата
func (r *Repository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("places").
		OrderBy("created_at DESC", "id DESC")

	if filter.State != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": *filter.State})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return places, nil
}

// Update обновляет все редактируемые поля направления
func (r *Repository) Update(ctx context.Context, place *domain.Place) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("places").
		Set("name", place.Name).
		Set("state", place.State).
		Set("city", place.City).
		Set("short_intro", place.ShortIntro).
		Set("description", place.Description).
		Set("culture_description", place.CultureDescription).
		Set("image_url", place.ImageURL).
		Set("video_url", place.VideoURL).
		Set("price_per_person", place.PricePerPerson).
		Set("duration_days", place.DurationDays).
		Where(squirrel.Eq{"id": place.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет направление
// Гостиницы и транспорт направления удаляются каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// Count возвращает общее количество направлений
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("places").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPlace(row scanner) (*domain.Place, error) {
	var place domain.Place
	var createdAt sql.NullTime

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.State,
		&place.City,
		&place.ShortIntro,
		&place.Description,
		&place.CultureDescription,
		&place.ImageURL,
		&place.VideoURL,
		&place.PricePerPerson,
		&place.DurationDays,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	place.CreatedAt = createdAt.Time
	return &place, nil
}
