package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevadoor/booking-service/internal/domain"
	bookingRepo "github.com/sevadoor/booking-service/internal/infra/storage/booking"
	"github.com/sevadoor/booking-service/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByTrackingID получает бронирование по коду отслеживания
// Публичная операция для клиентов, аутентификация не требуется
func (s *Service) GetByTrackingID(ctx context.Context, trackingID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByTrackingID: fetching booking tracking_id=%s", trackingID)

	booking, err := s.bookingRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByTrackingID: tracking_id=%s not found", trackingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByTrackingID: repository error for tracking_id=%s: %v", trackingID, err)
		return nil, fmt.Errorf("%w: GetByTrackingID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetWorkerBookings получает бронирования работника для его дашборда
// Скрытые работником записи не возвращаются
func (s *Service) GetWorkerBookings(ctx context.Context, workerID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetWorkerBookings: fetching bookings for worker=%s", workerID)

	bookings, err := s.bookingRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		s.logger.Error("GetWorkerBookings: repository error for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: GetWorkerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkerBookings: fetched %d bookings for worker=%s", len(bookings), workerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCustomerBookings получает бронирования клиента по имени
// Скрытые клиентом записи не возвращаются
func (s *Service) GetCustomerBookings(ctx context.Context, clientName string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for client=%s", clientName)

	if clientName == "" {
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientName(ctx, clientName)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for client=%s: %v", clientName, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for client=%s", len(bookings), clientName)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования
//
// Правила перехода:
//   - статус вне множества pending|confirmed|completed|cancelled отклоняется
//   - терминальное бронирование (completed, cancelled) заблокировано для переходов
//   - переход в текущий статус - no-op, успех без записи
//   - pending -> completed разрешен: работник закрывает заказ без подтверждения
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, ok := domain.ParseStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Переход в текущий статус - no-op
	if booking.Status == newStatus {
		s.logger.Info("UpdateStatus: booking id=%d already has status=%s", bookingID, newStatus)
		return models.FromDomainBooking(booking), nil
	}

	if booking.IsTerminal() {
		s.logger.Warn("UpdateStatus: booking id=%d is terminal (status=%s), transition denied",
			bookingID, booking.Status)
		return nil, ErrStatusLocked
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		// Частичный уникальный индекс не даст реанимировать бронирование
		// в слот, занятый другим активным бронированием
		case errors.Is(err, bookingRepo.ErrSlotTaken), errors.Is(err, bookingRepo.ErrDateTaken):
			s.logger.Warn("UpdateStatus: booking id=%d cannot take status=%s, slot occupied", bookingID, newStatus)
			return nil, ErrSlotConflict
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// SoftDelete скрывает бронирование из выдачи указанной стороны
// Доступно только для терминальных статусов; работник может скрыть
// только собственное бронирование (подтверждается заголовком X-Worker-ID)
func (s *Service) SoftDelete(ctx context.Context, bookingID int64, actor domain.Actor, actorWorkerID string) error {
	s.logger.Info("SoftDelete: hiding booking id=%d for actor=%s", bookingID, actor)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SoftDelete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	if !booking.IsTerminal() {
		s.logger.Warn("SoftDelete: booking id=%d has active status=%s, deletion denied",
			bookingID, booking.Status)
		return ErrNotDeletable
	}

	if actor == domain.ActorWorker && booking.WorkerID != actorWorkerID {
		s.logger.Warn("SoftDelete: worker=%s does not own booking id=%d", actorWorkerID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.SetDeleted(ctx, bookingID, actor); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SoftDelete: booking id=%d hidden for actor=%s", bookingID, actor)
	return nil
}

// HardDelete физически удаляет бронирование
// Административная операция вне правил мягкого удаления
func (s *Service) HardDelete(ctx context.Context, bookingID int64) error {
	s.logger.Info("HardDelete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("HardDelete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("HardDelete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: HardDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("HardDelete: booking id=%d deleted", bookingID)
	return nil
}
