package track_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/service/bookings"
)

const (
	msgMissingTrackingID = "tracking id is required"
	msgNotFound          = "no booking found for this tracking code"
)

// Handler публичный поиск бронирования по коду отслеживания
// Аутентификации нет: код и есть секрет
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

// Handle GET /api/v1/bookings/track/{trackingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Код отслеживания регистронезависим: клиенты диктуют его по телефону
	trackingID := strings.ToUpper(strings.TrimSpace(vars["trackingId"]))
	if trackingID == "" {
		handlers.RespondBadRequest(w, msgMissingTrackingID)
		return
	}

	booking, err := h.service.GetByTrackingID(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/track/{id} - Not found: tracking_id=%s", trackingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/track/{id} - Failed to track booking: tracking_id=%s, error=%v", trackingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/track/{id} - Booking tracked: tracking_id=%s, booking_id=%d", trackingID, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
