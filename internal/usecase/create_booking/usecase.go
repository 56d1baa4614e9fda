package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	bookingRepo "github.com/sevadoor/booking-service/internal/infra/storage/booking"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	availabilitySvc "github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/pkg/simpletxmanager"
	"github.com/sevadoor/booking-service/pkg/trackingid"
	"github.com/sevadoor/booking-service/pkg/types"
)

// Количество попыток подобрать свободный короткий код отслеживания,
// после исчерпания используется длинный код
const trackingIDAttempts = 5

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	availability   AvailabilityProvider
	identityClient IdentityClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityProvider,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		availability:   availability,
		identityClient: identityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет стандартный путь создания бронирования
//
// Шаги не атомарны: гонку двух клиентов за один слот разрешает частичный
// уникальный индекс в хранилище, нарушение которого превращается в конфликт.
// Созданное бронирование получает статус pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: worker=%s, client=%s, date=%s, time=%v",
		req.WorkerID, req.ClientName, req.BookingDate, req.Time)

	date, worker, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	booking, err := uc.admit(ctx, req, date, worker, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d tracking_id=%s",
		booking.ID, booking.TrackingID)
	return toResponse(booking), nil
}

// ExecuteSafe выполняет безопасный путь создания бронирования
//
// Проверки и запись выполняются в одной сериализуемой транзакции, чтение
// конфликтующих бронирований блокирует строки (FOR UPDATE). Созданное
// бронирование получает статус confirmed.
// На развертываниях без поддержки транзакций возвращает
// ErrTransactionsUnsupported - тихого отката на стандартный путь нет
func (uc *UseCase) ExecuteSafe(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBookingSafe: worker=%s, client=%s, date=%s, time=%v",
		req.WorkerID, req.ClientName, req.BookingDate, req.Time)

	date, worker, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	var booking *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.admit(txCtx, req, date, worker, domain.StatusConfirmed)
		if err != nil {
			return err
		}
		booking = created
		return nil
	})

	if err != nil {
		if errors.Is(err, simpletxmanager.ErrTransactionsUnsupported) {
			uc.logger.Warn("CreateBookingSafe: transactions unsupported on this deployment")
			return nil, ErrTransactionsUnsupported
		}
		return nil, err
	}

	uc.logger.Info("CreateBookingSafe: successfully created booking id=%d tracking_id=%s",
		booking.ID, booking.TrackingID)
	return toResponse(booking), nil
}

// prepare выполняет общие для обоих путей шаги до работы с хранилищем:
// валидация, разбор даты, получение карточки работника для денормализации
func (uc *UseCase) prepare(ctx context.Context, req *Request) (time.Time, *identity.Worker, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return time.Time{}, nil, err
	}

	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q: %v", req.BookingDate, err)
		return time.Time{}, nil, err
	}

	// Недоступность IdentityService не блокирует создание бронирования,
	// оно лишь остается без денормализованных данных работника
	worker, err := uc.identityClient.GetWorkerWithGracefulDegradation(ctx, req.WorkerID)
	if err != nil {
		worker = nil
	}

	return date, worker, nil
}

// admit выполняет последовательность допуска: профиль -> вето даты ->
// принадлежность слота сетке -> конфликты -> код отслеживания -> запись
func (uc *UseCase) admit(ctx context.Context, req *Request, date time.Time, worker *identity.Worker, status domain.BookingStatus) (*domain.Booking, error) {
	// 1. Профиль доступности (с ленивым провижинингом)
	profile, err := uc.availability.GetProfile(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, availabilitySvc.ErrWorkerNotFound) {
			uc.logger.Warn("CreateBooking: worker=%s not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get profile for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get availability profile: %v", ErrInternal, err)
	}

	// 2. Вето заблокированной даты - раньше любых проверок слотов
	if profile.IsDateBlocked(types.DateString(date.Format(domain.DateFormat))) {
		uc.logger.Warn("CreateBooking: worker=%s blocked date %s", req.WorkerID, date.Format(domain.DateFormat))
		return nil, ErrDateBlocked
	}

	// 3. Запрошенное время обязано входить в сетку слотов работника
	var timeSlot *types.TimeString
	if req.Time != nil {
		slot := types.TimeString(*req.Time)
		if err := validateSlotMembership(slot, profile.WorkingHours); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, err
		}
		timeSlot = &slot
	}

	// 4. Проверка конфликтов с активными бронированиями
	// Внутри транзакции чтение блокирует строки (FOR UPDATE)
	conflicting, err := uc.bookingRepo.GetActiveForDate(ctx, req.WorkerID, date, timeSlot)
	if err != nil {
		uc.logger.Error("CreateBooking: conflict check failed for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
	// Дневное бронирование конфликтует только с другим дневным:
	// слотовые бронирования на ту же дату ему не мешают
	if timeSlot == nil {
		conflicting = filterDateLevel(conflicting)
	}
	if len(conflicting) > 0 {
		uc.logger.Warn("CreateBooking: worker=%s date=%s time=%v already taken",
			req.WorkerID, date.Format(domain.DateFormat), req.Time)
		return nil, ErrSlotConflict
	}

	// 5. Код отслеживания
	trackingID, err := uc.generateTrackingID(ctx)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		TrackingID:    trackingID,
		WorkerID:      req.WorkerID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientAddress: req.ClientAddress,
		JobDetails:    req.JobDetails,
		BookingDate:   date,
		TimeSlot:      timeSlot,
		Status:        status,
		Location:      req.Location.ToDomainLocation(),
		Photos:        req.Photos,
	}

	if worker != nil {
		booking.WorkerName = &worker.Name
		booking.WorkerProfession = &worker.Profession
	}

	// 6. Запись; уникальные индексы хранилища - финальный арбитр
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		// Коллизия кода отслеживания, подтвержденная ограничением,
		// дает одну повторную попытку с длинным кодом
		if errors.Is(err, bookingRepo.ErrTrackingIDTaken) {
			longID, genErr := trackingid.GenerateLong()
			if genErr != nil {
				return nil, fmt.Errorf("%w: failed to generate tracking id: %v", ErrInternal, genErr)
			}
			booking.TrackingID = longID
			created, err = uc.bookingRepo.Create(ctx, booking)
		}
	}
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken), errors.Is(err, bookingRepo.ErrDateTaken):
			uc.logger.Warn("CreateBooking: storage rejected duplicate slot for worker=%s", req.WorkerID)
			return nil, ErrSlotConflict
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

// filterDateLevel оставляет только бронирования без слота
func filterDateLevel(bookings []*domain.Booking) []*domain.Booking {
	out := bookings[:0]
	for _, b := range bookings {
		if b.IsDateLevel() {
			out = append(out, b)
		}
	}
	return out
}

// generateTrackingID подбирает свободный код отслеживания:
// несколько коротких попыток, затем длинный код без проверки
func (uc *UseCase) generateTrackingID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < trackingIDAttempts; attempt++ {
		id, err := trackingid.Generate()
		if err != nil {
			return "", fmt.Errorf("%w: failed to generate tracking id: %v", ErrInternal, err)
		}

		exists, err := uc.bookingRepo.ExistsByTrackingID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: failed to check tracking id: %v", ErrInternal, err)
		}
		if !exists {
			return id, nil
		}

		uc.logger.Warn("CreateBooking: tracking id collision on attempt %d", attempt+1)
	}

	id, err := trackingid.GenerateLong()
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate tracking id: %v", ErrInternal, err)
	}
	return id, nil
}
