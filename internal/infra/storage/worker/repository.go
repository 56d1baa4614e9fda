package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/dbmetrics"
	"github.com/sevadoor/booking-service/pkg/psqlbuilder"
	"github.com/sevadoor/booking-service/pkg/types"
)

// Код ошибки PostgreSQL при нарушении уникального ограничения
const pqUniqueViolation = "23505"

// Repository репозиторий профилей доступности работников
//
// Все мутации blocked_dates - одиночные атомарные UPDATE с операциями над
// массивом на стороне БД: конкурентные писатели одного профиля не теряют
// обновления друг друга (read-modify-write в приложении не используется)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль доступности
// Используется при ленивом провижининге профиля с дефолтными рабочими часами
func (r *Repository) Create(ctx context.Context, profile *domain.AvailabilityProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("worker_availability").
		Columns("worker_id", "blocked_dates", "work_start", "work_end", "slot_duration_minutes").
		Values(
			profile.WorkerID,
			pq.Array(dateStrings(profile.BlockedDates)),
			profile.WorkingHours.Start.String(),
			profile.WorkingHours.End.String(),
			profile.WorkingHours.SlotDuration,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrProfileExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByWorkerID получает профиль доступности работника
func (r *Repository) GetByWorkerID(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"worker_id",
		"blocked_dates",
		"work_start",
		"work_end",
		"slot_duration_minutes",
	).
		From("worker_availability").
		Where(squirrel.Eq{"worker_id": workerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.AvailabilityProfile
	var blockedDates pq.StringArray
	var workStart, workEnd string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.WorkerID,
		&blockedDates,
		&workStart,
		&workEnd,
		&profile.WorkingHours.SlotDuration,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerID - scan profile: %v", ErrScanRow, err)
	}

	profile.BlockedDates = toDateStrings(blockedDates)
	profile.WorkingHours.Start = types.TimeString(workStart)
	profile.WorkingHours.End = types.TimeString(workEnd)

	return &profile, nil
}

// AddBlockedDates добавляет даты в заблокированные (объединение множеств)
// Повторное добавление уже заблокированной даты - no-op
// Возвращает итоговый список заблокированных дат
func (r *Repository) AddBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Объединение и дедупликация на стороне БД, одним UPDATE
	query, args, err := psqlbuilder.Update("worker_availability").
		Set("blocked_dates", squirrel.Expr(
			"(SELECT COALESCE(array_agg(DISTINCT d ORDER BY d), '{}') FROM unnest(blocked_dates || ?::text[]) AS d)",
			pq.Array(dateStrings(dates)),
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"worker_id": workerID}).
		Suffix("RETURNING blocked_dates").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBlockedDates(ctx, executor, query, args, "AddBlockedDates")
}

// RemoveBlockedDates убирает даты из заблокированных (разность множеств)
// Удаление незаблокированной даты - no-op
func (r *Repository) RemoveBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("worker_availability").
		Set("blocked_dates", squirrel.Expr(
			"(SELECT COALESCE(array_agg(d ORDER BY d), '{}') FROM unnest(blocked_dates) AS d WHERE d <> ALL(?::text[]))",
			pq.Array(dateStrings(dates)),
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"worker_id": workerID}).
		Suffix("RETURNING blocked_dates").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RemoveBlockedDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBlockedDates(ctx, executor, query, args, "RemoveBlockedDates")
}

// ReplaceBlockedDates полностью заменяет список заблокированных дат
func (r *Repository) ReplaceBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("worker_availability").
		Set("blocked_dates", squirrel.Expr(
			"(SELECT COALESCE(array_agg(DISTINCT d ORDER BY d), '{}') FROM unnest(?::text[]) AS d)",
			pq.Array(dateStrings(dates)),
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"worker_id": workerID}).
		Suffix("RETURNING blocked_dates").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceBlockedDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBlockedDates(ctx, executor, query, args, "ReplaceBlockedDates")
}

// SetWorkingHours обновляет рабочие часы работника
// Валидация значений выполняется на уровне сервиса до вызова
func (r *Repository) SetWorkingHours(ctx context.Context, workerID string, hours domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("worker_availability").
		Set("work_start", hours.Start.String()).
		Set("work_end", hours.End.String()).
		Set("slot_duration_minutes", hours.SlotDuration).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"worker_id": workerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetWorkingHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *Repository) scanBlockedDates(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]types.DateString, error) {
	var blockedDates pq.StringArray

	err := executor.QueryRowContext(ctx, query, args...).Scan(&blockedDates)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan blocked_dates: %v", ErrScanRow, op, err)
	}

	return toDateStrings(blockedDates), nil
}

func dateStrings(dates []types.DateString) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = string(d)
	}
	return out
}

func toDateStrings(dates []string) []types.DateString {
	out := make([]types.DateString, len(dates))
	for i, d := range dates {
		out[i] = types.DateString(d)
	}
	return out
}
