package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/service/availability"
)

const (
	msgMissingWorkerID = "worker id is required"
	msgWorkerNotFound  = "worker not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]
	if workerID == "" {
		handlers.RespondBadRequest(w, msgMissingWorkerID)
		return
	}

	profile, err := h.service.GetAvailability(r.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrWorkerNotFound):
			h.logger.Warn("GET /workers/{id}/availability - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("GET /workers/{id}/availability - Failed to get availability: worker_id=%s, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/availability - Availability retrieved: worker_id=%s", workerID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
