package transport

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
	"transport_type",
	"name",
	"description",
	"price",
	"capacity",
	"duration_hours",
	"operating_hours",
	"contact_info",
	"created_at",
}

// Repository репозиторий для работы с транспортными услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транспорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую транспортную услугу
func (r *Repository) Create(ctx context.Context, transport *domain.Transport) (*domain.Transport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transports").
		Columns(
			"place_id",
			"transport_type",
			"name",
			"description",
			"price",
			"capacity",
			"duration_hours",
			"operating_hours",
			"contact_info",
		).
		Values(
			transport.PlaceID,
			transport.Type,
			transport.Name,
			transport.Description,
			transport.Price,
			transport.Capacity,
			transport.DurationHours,
			transport.OperatingHours,
			transport.ContactInfo,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&transport.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	transport.CreatedAt = createdAt.Time

	return transport, nil
}

// GetByID получает транспортную услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Transport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("transports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	transport, err := scanTransport(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transport: %w", ErrScanRow, err)
	}

	return transport, nil
}

// List получает все транспортные услуги, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Transport, error) {
	return r.list(ctx, "List", nil)
}

// ListByPlace получает транспорт направления, сгруппированный по типу и упорядоченный по цене
func (r *Repository) ListByPlace(ctx context.Context, placeID int64) ([]*domain.Transport, error) {
	return r.list(ctx, "ListByPlace", &placeID)
}

func (r *Repository) list(ctx context.Context, op string, placeID *int64) ([]*domain.Transport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From("transports")
	if placeID != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"place_id": *placeID}).
			OrderBy("transport_type ASC", "price ASC", "id ASC")
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

	transports := make([]*domain.Transport, 0)
	for rows.Next() {
		transport, err := scanTransport(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		transports = append(transports, transport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return transports, nil
}

// Update обновляет все редактируемые поля транспортной услуги
func (r *Repository) Update(ctx context.Context, transport *domain.Transport) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("transports").
		Set("place_id", transport.PlaceID).
		Set("transport_type", transport.Type).
		Set("name", transport.Name).
		Set("description", transport.Description).
		Set("price", transport.Price).
		Set("capacity", transport.Capacity).
		Set("duration_hours", transport.DurationHours).
		Set("operating_hours", transport.OperatingHours).
		Set("contact_info", transport.ContactInfo).
		Where(squirrel.Eq{"id": transport.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет транспортную услугу
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
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
		return ErrTransportNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransport(row scanner) (*domain.Transport, error) {
	var transport domain.Transport
	var createdAt sql.NullTime

	err := row.Scan(
		&transport.ID,
		&transport.PlaceID,
		&transport.Type,
		&transport.Name,
		&transport.Description,
		&transport.Price,
		&transport.Capacity,
		&transport.DurationHours,
		&transport.OperatingHours,
		&transport.ContactInfo,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	transport.CreatedAt = createdAt.Time
	return &transport, nil
}
