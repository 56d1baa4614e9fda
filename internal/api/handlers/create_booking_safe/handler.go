package create_booking_safe

import (
	"errors"
	"net/http"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	createBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/create_booking"
	createBooking "github.com/sevadoor/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidInput            = "workerId, clientName, jobDetails and bookingDate are required"
	msgInvalidDate             = "invalid booking date, expected YYYY-MM-DD"
	msgWorkerNotFound          = "worker not found"
	msgDateBlocked             = "worker is not available on this date"
	msgOutOfHours              = "requested time is outside the worker's working hours"
	msgSlotConflict            = "this slot is already booked"
	msgTransactionsUnsupported = "transactions are not supported on this deployment, use POST /api/v1/bookings"
)

// Handler обработчик безопасного пути создания бронирования
// Модели запроса и ответа общие со стандартным путем
type Handler struct {
	useCase CreateBookingSafeUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingSafeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/safe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBookingHandler.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/safe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteSafe(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/safe - Invalid input: worker_id=%s, error=%v", req.WorkerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings/safe - Invalid date: worker_id=%s, date=%s", req.WorkerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrWorkerNotFound):
			h.logger.Warn("POST /bookings/safe - Worker not found: worker_id=%s", req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings/safe - Date blocked: worker_id=%s, date=%s", req.WorkerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings/safe - Out of hours: worker_id=%s, time=%v", req.WorkerID, req.Time)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings/safe - Slot conflict: worker_id=%s, date=%s, time=%v",
				req.WorkerID, req.BookingDate, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrTransactionsUnsupported):
			h.logger.Warn("POST /bookings/safe - Transactions unsupported on this deployment")
			handlers.RespondNotImplemented(w, msgTransactionsUnsupported)

		default:
			h.logger.Error("POST /bookings/safe - Failed to create booking: worker_id=%s, error=%v", req.WorkerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/safe - Booking created: booking_id=%d, tracking_id=%s, worker_id=%s",
		result.ID, result.TrackingID, result.WorkerID)
	handlers.RespondJSON(w, http.StatusCreated, createBookingHandler.FromUseCaseResponse(result))
}
