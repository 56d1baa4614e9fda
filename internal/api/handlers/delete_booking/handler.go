package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/internal/service/bookings"
)

// HeaderWorkerID заголовок, которым работник подтверждает владение бронированием
const HeaderWorkerID = "X-Worker-ID"

const (
	msgInvalidBookingID = "invalid booking id"
	msgInvalidActor     = "actor query parameter must be worker or customer"
	msgMissingWorkerID  = "X-Worker-ID header is required for worker deletions"
	msgNotFound         = "booking not found"
	msgNotDeletable     = "only completed or cancelled bookings can be deleted"
	msgAccessDenied     = "you can only delete your own bookings"
)

// Handler мягкое удаление: скрывает бронирование из выдачи одной стороны,
// запись в хранилище остается
type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}?actor=worker|customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var actor domain.Actor
	switch r.URL.Query().Get("actor") {
	case string(domain.ActorWorker):
		actor = domain.ActorWorker
	case string(domain.ActorCustomer):
		actor = domain.ActorCustomer
	default:
		h.logger.Warn("DELETE /bookings/{id} - Invalid actor=%q: booking_id=%d", r.URL.Query().Get("actor"), bookingID)
		handlers.RespondBadRequest(w, msgInvalidActor)
		return
	}

	actorWorkerID := r.Header.Get(HeaderWorkerID)
	if actor == domain.ActorWorker && actorWorkerID == "" {
		h.logger.Warn("DELETE /bookings/{id} - Missing %s header: booking_id=%d", HeaderWorkerID, bookingID)
		handlers.RespondBadRequest(w, msgMissingWorkerID)
		return
	}

	if err := h.service.SoftDelete(r.Context(), bookingID, actor, actorWorkerID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotDeletable):
			h.logger.Warn("DELETE /bookings/{id} - Not deletable: booking_id=%d", bookingID)
			handlers.RespondForbidden(w, msgNotDeletable)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, worker_id=%s", bookingID, actorWorkerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking hidden: booking_id=%d, actor=%s", bookingID, actor)
	handlers.RespondNoContent(w)
}
