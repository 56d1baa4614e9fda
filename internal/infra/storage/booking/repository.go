package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/dbmetrics"
	"github.com/sevadoor/booking-service/pkg/psqlbuilder"
	"github.com/sevadoor/booking-service/pkg/types"
)

// Код ошибки PostgreSQL при нарушении уникального ограничения
const pqUniqueViolation = "23505"

// Имена уникальных индексов из миграции 0001_init.sql
const (
	constraintTrackingID    = "uq_bookings_tracking_id"
	constraintWorkerSlot    = "uq_bookings_worker_slot"
	constraintWorkerDateDay = "uq_bookings_worker_date_datelevel"
)

const bookingColumns = "id, tracking_id, worker_id, client_name, client_phone, client_address, " +
	"job_details, booking_date, time_slot, status, deleted_by_worker, deleted_by_customer, " +
	"worker_name, worker_profession, latitude, longitude, google_maps_url, photos, created_at, updated_at"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
//
// Нарушения уникальных индексов переводятся в доменные ошибки:
// - uq_bookings_worker_slot / uq_bookings_worker_date_datelevel -> ErrSlotTaken / ErrDateTaken
//   (финальная защита от гонки в нетранзакционном пути)
// - uq_bookings_tracking_id -> ErrTrackingIDTaken (вызывающий код повторяет
//   с длинным кодом)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var timeSlot *string
	if booking.TimeSlot != nil {
		timeSlot = (*string)(booking.TimeSlot)
	}

	var latitude, longitude *float64
	var mapsURL *string
	if booking.Location != nil {
		latitude = &booking.Location.Latitude
		longitude = &booking.Location.Longitude
		mapsURL = &booking.Location.GoogleMapsURL
	}

	photos := booking.Photos
	if photos == nil {
		photos = []string{}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"tracking_id",
			"worker_id",
			"client_name",
			"client_phone",
			"client_address",
			"job_details",
			"booking_date",
			"time_slot",
			"status",
			"worker_name",
			"worker_profession",
			"latitude",
			"longitude",
			"google_maps_url",
			"photos",
		).
		Values(
			booking.TrackingID,
			booking.WorkerID,
			booking.ClientName,
			booking.ClientPhone,
			booking.ClientAddress,
			booking.JobDetails,
			booking.BookingDate,
			timeSlot,
			booking.Status,
			booking.WorkerName,
			booking.WorkerProfession,
			latitude,
			longitude,
			mapsURL,
			pq.Array(photos),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, query, args, "GetByID")
}

// GetByTrackingID получает бронирование по публичному коду отслеживания
func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"tracking_id": trackingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrackingID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, query, args, "GetByTrackingID")
}

// ExistsByTrackingID проверяет занятость кода отслеживания
// Используется при генерации кода; уникальный индекс остается финальным арбитром
func (r *Repository) ExistsByTrackingID(ctx context.Context, trackingID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"tracking_id": trackingID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTrackingID - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTrackingID - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetActiveForDate получает активные бронирования работника на дату
// timeSlot != nil сужает выборку до конкретного слота
// timeSlot == nil возвращает все активные бронирования на дату (и слотовые, и дневные)
//
// Внутри транзакции добавляет FOR UPDATE: проверка конфликта и запись
// в безопасном пути сериализуются
func (r *Repository) GetActiveForDate(ctx context.Context, workerID string, date time.Time, timeSlot *types.TimeString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		OrderBy("time_slot ASC NULLS FIRST")

	if timeSlot != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"time_slot": timeSlot.String()})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByWorkerID получает бронирования работника для его дашборда
// Скрытые работником (deleted_by_worker) не возвращаются
func (r *Repository) GetByWorkerID(ctx context.Context, workerID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"deleted_by_worker": false}).
		OrderBy("booking_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByClientName получает бронирования клиента
// Скрытые клиентом (deleted_by_customer) не возвращаются
func (r *Repository) GetByClientName(ctx context.Context, clientName string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"client_name": clientName}).
		Where(squirrel.Eq{"deleted_by_customer": false}).
		OrderBy("booking_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
// Смена статуса может нарушить частичный уникальный индекс (например,
// возврат cancelled -> pending на уже занятый слот) - это тоже конфликт
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetDeleted выставляет флаг скрытия бронирования для указанной стороны
func (r *Repository) SetDeleted(ctx context.Context, id int64, actor domain.Actor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	column := "deleted_by_customer"
	if actor == domain.ActorWorker {
		column = "deleted_by_worker"
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set(column, true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDeleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDeleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDeleted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete физически удаляет бронирование (административная операция)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// queryOne выполняет запрос с одной строкой результата
func (r *Repository) queryOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) (*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var timeSlot sql.NullString
		var latitude, longitude sql.NullFloat64
		var mapsURL sql.NullString
		var photos pq.StringArray
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.TrackingID,
			&booking.WorkerID,
			&booking.ClientName,
			&booking.ClientPhone,
			&booking.ClientAddress,
			&booking.JobDetails,
			&booking.BookingDate,
			&timeSlot,
			&booking.Status,
			&booking.Deletion.ByWorker,
			&booking.Deletion.ByCustomer,
			&booking.WorkerName,
			&booking.WorkerProfession,
			&latitude,
			&longitude,
			&mapsURL,
			&photos,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if timeSlot.Valid {
			ts := types.TimeString(timeSlot.String)
			booking.TimeSlot = &ts
		}
		if latitude.Valid && longitude.Valid {
			booking.Location = &domain.Location{
				Latitude:      latitude.Float64,
				Longitude:     longitude.Float64,
				GoogleMapsURL: mapsURL.String,
			}
		}
		booking.Photos = photos
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// mapUniqueViolation переводит нарушение уникального индекса в доменную ошибку
// Возвращает nil для всех остальных ошибок
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pqUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintWorkerSlot:
		return ErrSlotTaken
	case constraintWorkerDateDay:
		return ErrDateTaken
	case constraintTrackingID:
		return ErrTrackingIDTaken
	default:
		return fmt.Errorf("%w: unique violation on %s", ErrExecQuery, pqErr.Constraint)
	}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
