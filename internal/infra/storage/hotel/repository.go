package hotel

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
	"place_id",
	"name",
	"description",
	"price_per_night",
	"rating",
	"amenities",
	"image_url",
	"contact_info",
	"created_at",
}

// Repository репозиторий для работы с гостиницами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостиниц
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую гостиницу
func (r *Repository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hotels").
		Columns(
			"place_id",
			"name",
			"description",
			"price_per_night",
			"rating",
			"amenities",
			"image_url",
			"contact_info",
		).
		Values(
			hotel.PlaceID,
			hotel.Name,
			hotel.Description,
			hotel.PricePerNight,
			hotel.Rating,
			hotel.Amenities,
			hotel.ImageURL,
			hotel.ContactInfo,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hotel.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	hotel.CreatedAt = createdAt.Time

	return hotel, nil
}

// GetByID получает гостиницу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	hotel, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %w", ErrScanRow, err)
	}

	return hotel, nil
}

// List получает все гостиницы, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Hotel, error) {
	return r.list(ctx, "List", nil)
}

// ListByPlace получает гостиницы направления по возрастанию цены за ночь
func (r *Repository) ListByPlace(ctx context.Context, placeID int64) ([]*domain.Hotel, error) {
	return r.list(ctx, "ListByPlace", &placeID)
}

func (r *Repository) list(ctx context.Context, op string, placeID *int64) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From("hotels")
	if placeID != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"place_id": *placeID}).
			OrderBy("price_per_night ASC", "id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return hotels, nil
}

// Update обновляет все редактируемые поля гостиницы
func (r *Repository) Update(ctx context.Context, hotel *domain.Hotel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hotels").
		Set("place_id", hotel.PlaceID).
		Set("name", hotel.Name).
		Set("description", hotel.Description).
		Set("price_per_night", hotel.PricePerNight).
		Set("rating", hotel.Rating).
		Set("amenities", hotel.Amenities).
		Set("image_url", hotel.ImageURL).
		Set("contact_info", hotel.ContactInfo).
		Where(squirrel.Eq{"id": hotel.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет гостиницу
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// Count возвращает общее количество гостиниц
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("hotels").ToSql()
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
		return ErrHotelNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHotel(row scanner) (*domain.Hotel, error) {
	var hotel domain.Hotel
	var createdAt sql.NullTime

	err := row.Scan(
		&hotel.ID,
		&hotel.PlaceID,
		&hotel.Name,
		&hotel.Description,
		&hotel.PricePerNight,
		&hotel.Rating,
		&hotel.Amenities,
		&hotel.ImageURL,
		&hotel.ContactInfo,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	hotel.CreatedAt = createdAt.Time
	return &hotel, nil
}
