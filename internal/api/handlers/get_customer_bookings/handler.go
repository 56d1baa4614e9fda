package get_customer_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/service/bookings"
)

const msgMissingClientName = "clientName query parameter is required"

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

// Handle GET /api/v1/customers/bookings?clientName=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientName := strings.TrimSpace(r.URL.Query().Get("clientName"))
	if clientName == "" {
		h.logger.Warn("GET /customers/bookings - Missing clientName")
		handlers.RespondBadRequest(w, msgMissingClientName)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), clientName)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingClientName)
			return
		}
		h.logger.Error("GET /customers/bookings - Failed to get bookings: client=%s, error=%v", clientName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/bookings - Retrieved %d bookings: client=%s", len(result.Bookings), clientName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
