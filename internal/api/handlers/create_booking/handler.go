package create_booking

import (
	"errors"
	"net/http"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	createBooking "github.com/sevadoor/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "workerId, clientName, jobDetails and bookingDate are required"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgWorkerNotFound     = "worker not found"
	msgDateBlocked        = "worker is not available on this date"
	msgOutOfHours         = "requested time is outside the worker's working hours"
	msgSlotConflict       = "this slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: worker_id=%s, error=%v", req.WorkerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: worker_id=%s, date=%s", req.WorkerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrWorkerNotFound):
			h.logger.Warn("POST /bookings - Worker not found: worker_id=%s", req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: worker_id=%s, date=%s", req.WorkerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of hours: worker_id=%s, time=%v", req.WorkerID, req.Time)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: worker_id=%s, date=%s, time=%v",
				req.WorkerID, req.BookingDate, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: worker_id=%s, error=%v", req.WorkerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, tracking_id=%s, worker_id=%s",
		result.ID, result.TrackingID, result.WorkerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
