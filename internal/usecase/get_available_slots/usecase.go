package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sevadoor/booking-service/internal/domain"
	availabilitySvc "github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/pkg/types"
)

// UseCase use case расчета свободных слотов работника на дату
type UseCase struct {
	bookingRepo  BookingRepository
	availability AvailabilityProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		logger:       logger,
	}
}

// Execute возвращает свободные слоты работника на дату
//
// Заблокированная дата дает пустой список раньше любых расчетов.
// Иначе из сгенерированной сетки вычитаются слоты активных бронирований;
// отмененные и завершенные слотов не занимают. Дневные бронирования
// без слота на сетку не влияют
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: worker=%s date=%s", req.WorkerID, req.Date)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := types.DateString(req.Date)

	profile, err := uc.availability.GetProfile(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, availabilitySvc.ErrWorkerNotFound) {
			uc.logger.Warn("GetAvailableSlots: worker=%s not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get profile for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get availability profile: %v", ErrInternal, err)
	}

	// Вето заблокированной даты
	if profile.IsDateBlocked(date) {
		uc.logger.Info("GetAvailableSlots: worker=%s blocked date %s", req.WorkerID, req.Date)
		return &Response{
			WorkerID: req.WorkerID,
			Date:     req.Date,
			Blocked:  true,
			Slots:    []string{},
		}, nil
	}

	dateTime, err := date.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	active, err := uc.bookingRepo.GetActiveForDate(ctx, req.WorkerID, dateTime, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Занятые слоты - только у активных бронирований со слотом
	taken := make(map[types.TimeString]struct{}, len(active))
	for _, b := range active {
		if b.TimeSlot != nil {
			taken[*b.TimeSlot] = struct{}{}
		}
	}

	generated := domain.GenerateSlots(
		profile.WorkingHours.Start,
		profile.WorkingHours.End,
		profile.WorkingHours.SlotDuration,
	)

	available := make([]string, 0, len(generated))
	for _, slot := range generated {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot.String())
		}
	}

	uc.logger.Info("GetAvailableSlots: worker=%s date=%s has %d/%d free slots",
		req.WorkerID, req.Date, len(available), len(generated))

	return &Response{
		WorkerID: req.WorkerID,
		Date:     req.Date,
		Blocked:  false,
		Slots:    available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.WorkerID) == "" {
		return fmt.Errorf("%w: workerId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := types.DateString(req.Date).Validate(); err != nil {
		return ErrInvalidDate
	}

	return nil
}
