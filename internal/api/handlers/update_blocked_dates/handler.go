package update_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidAction      = "invalid action, expected add, remove or replace"
	msgWorkerNotFound     = "worker not found"
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

// Handle POST /api/v1/workers/{workerId}/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	var req models.UpdateBlockedDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBlockedDates(r.Context(), workerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			h.logger.Warn("POST /workers/{id}/blocked-dates - Invalid dates: worker_id=%s", workerID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /workers/{id}/blocked-dates - Invalid action=%s: worker_id=%s", req.Action, workerID)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, availability.ErrWorkerNotFound):
			h.logger.Warn("POST /workers/{id}/blocked-dates - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("POST /workers/{id}/blocked-dates - Failed to update: worker_id=%s, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/blocked-dates - Updated: worker_id=%s, action=%s, total=%d",
		workerID, req.Action, len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
