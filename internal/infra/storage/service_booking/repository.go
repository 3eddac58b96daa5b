package service_booking

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
	"main_booking_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"place_id",
	"hotel_id",
	"transport_id",
	"check_in_date",
	"check_out_date",
	"num_people",
	"num_rooms",
	"num_days",
	"special_requests",
	"hotel_total",
	"transport_total",
	"total_amount",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями услуг (гостиница и/или транспорт)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование услуг
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.ServiceBooking) (*domain.ServiceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_bookings").
		Columns(
			"main_booking_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"place_id",
			"hotel_id",
			"transport_id",
			"check_in_date",
			"check_out_date",
			"num_people",
			"num_rooms",
			"num_days",
			"special_requests",
			"hotel_total",
			"transport_total",
			"total_amount",
			"status",
		).
		Values(
			booking.MainBookingID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.PlaceID,
			booking.HotelID,
			booking.TransportID,
			booking.CheckInDate,
			booking.CheckOutDate,
			booking.NumPeople,
			booking.NumRooms,
			booking.NumDays,
			booking.SpecialRequests,
			booking.HotelTotal,
			booking.TransportTotal,
			booking.TotalAmount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование услуг по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("service_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanServiceBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования услуг по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.ServiceBookingFilter) ([]*domain.ServiceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select(columns...).From("service_bookings"), filter).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.ServiceBooking, 0)
	for rows.Next() {
		booking, err := scanServiceBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// Exists проверяет, есть ли хотя бы одно бронирование услуг, подходящее под фильтр
//
// Примеры использования:
//
// 1. Гостиница занята на интервал [in, out] (включительно с обеих сторон):
//    filter := domain.ServiceBookingFilter{
//        HotelID: &hotelID, CheckInOnOrBefore: &out, CheckOutOnOrAfter: &in,
//        Statuses: domain.ActiveServiceBookingStatuses,
//    }
//
// 2. Повторное бронирование транспорта за сегодня:
//    filter := domain.ServiceBookingFilter{
//        CustomerEmail: &email, TransportID: &transportID, CreatedFrom: &startOfToday,
//        Statuses: domain.ActiveServiceBookingStatuses,
//    }
//
// 3. Есть ли бронирования гостиницы в любом статусе (проверка перед удалением):
//    filter := domain.ServiceBookingFilter{HotelID: &hotelID}
func (r *Repository) Exists(ctx context.Context, filter domain.ServiceBookingFilter) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("1").From("service_bookings"), filter).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// Count возвращает количество бронирований услуг по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.ServiceBookingFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("service_bookings"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования услуг
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ServiceBookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceBookingNotFound
	}

	return nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.ServiceBookingFilter) squirrel.SelectBuilder {
	if filter.PlaceID != nil {
		b = b.Where(squirrel.Eq{"place_id": *filter.PlaceID})
	}
	if filter.HotelID != nil {
		b = b.Where(squirrel.Eq{"hotel_id": *filter.HotelID})
	}
	if filter.TransportID != nil {
		b = b.Where(squirrel.Eq{"transport_id": *filter.TransportID})
	}
	if filter.CustomerEmail != nil {
		b = b.Where(squirrel.Eq{"customer_email": *filter.CustomerEmail})
	}

	// Даты сравниваются включительно: NULL в колонке не проходит ни одно из условий
	if filter.CheckInDate != nil {
		b = b.Where(squirrel.Eq{"check_in_date": *filter.CheckInDate})
	}
	if filter.CheckInOnOrBefore != nil {
		b = b.Where(squirrel.LtOrEq{"check_in_date": *filter.CheckInOnOrBefore})
	}
	if filter.CheckOutOnOrAfter != nil {
		b = b.Where(squirrel.GtOrEq{"check_out_date": *filter.CheckOutOnOrAfter})
	}
	if filter.CreatedFrom != nil {
		b = b.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(squirrel.Eq{"status": statuses})
	}
	return b
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanServiceBooking(row scanner) (*domain.ServiceBooking, error) {
	var booking domain.ServiceBooking
	var createdAt sql.NullTime
	var name, email, phone sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.MainBookingID,
		&name,
		&email,
		&phone,
		&booking.PlaceID,
		&booking.HotelID,
		&booking.TransportID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.NumPeople,
		&booking.NumRooms,
		&booking.NumDays,
		&booking.SpecialRequests,
		&booking.HotelTotal,
		&booking.TransportTotal,
		&booking.TotalAmount,
		&booking.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CustomerName = name.String
	booking.CustomerEmail = email.String
	booking.CustomerPhone = phone.String
	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
