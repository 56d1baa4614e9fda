package get_worker_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
)

const msgMissingWorkerID = "worker id is required"

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

// Handle GET /api/v1/workers/{workerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]
	if workerID == "" {
		handlers.RespondBadRequest(w, msgMissingWorkerID)
		return
	}

	result, err := h.service.GetWorkerBookings(r.Context(), workerID)
	if err != nil {
		h.logger.Error("GET /workers/{id}/bookings - Failed to get bookings: worker_id=%s, error=%v", workerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /workers/{id}/bookings - Retrieved %d bookings: worker_id=%s", len(result.Bookings), workerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
