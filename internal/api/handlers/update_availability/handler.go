package update_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	"github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidAction       = "invalid action, expected addBlocked, removeBlocked, replaceBlocked or setWorkingHours"
	msgMissingWorkingHours = "workingHours is required for setWorkingHours"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidWorkingHours = "invalid working hours: expected HH:MM bounds, start before end, positive slot duration"
	msgWorkerNotFound      = "worker not found"
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

// Handle POST /api/v1/workers/{workerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Action == ActionSetWorkingHours {
		h.handleWorkingHours(w, r, workerID, &req)
		return
	}

	action := blockedDatesAction(req.Action)
	if action == "" {
		h.logger.Warn("POST /workers/{id}/availability - Invalid action=%s: worker_id=%s", req.Action, workerID)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	result, err := h.service.UpdateBlockedDates(r.Context(), workerID, &models.UpdateBlockedDatesRequest{
		Action: action,
		Dates:  req.Dates,
	})
	if err != nil {
		h.respondServiceError(w, workerID, err)
		return
	}

	h.logger.Info("POST /workers/{id}/availability - Blocked dates updated: worker_id=%s, action=%s, total=%d",
		workerID, req.Action, len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleWorkingHours(w http.ResponseWriter, r *http.Request, workerID string, req *UpdateAvailabilityRequest) {
	if req.WorkingHours == nil {
		h.logger.Warn("POST /workers/{id}/availability - Missing workingHours: worker_id=%s", workerID)
		handlers.RespondBadRequest(w, msgMissingWorkingHours)
		return
	}

	result, err := h.service.SetWorkingHours(r.Context(), workerID, &models.UpdateWorkingHoursRequest{
		Start:        req.WorkingHours.Start,
		End:          req.WorkingHours.End,
		SlotDuration: req.WorkingHours.SlotDuration,
	})
	if err != nil {
		h.respondServiceError(w, workerID, err)
		return
	}

	h.logger.Info("POST /workers/{id}/availability - Working hours updated: worker_id=%s, %s-%s/%d min",
		workerID, req.WorkingHours.Start, req.WorkingHours.End, req.WorkingHours.SlotDuration)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, workerID string, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidDate):
		h.logger.Warn("POST /workers/{id}/availability - Invalid dates: worker_id=%s", workerID)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, availability.ErrInvalidWorkingHours):
		h.logger.Warn("POST /workers/{id}/availability - Invalid working hours: worker_id=%s", workerID)
		handlers.RespondBadRequest(w, msgInvalidWorkingHours)

	case errors.Is(err, availability.ErrInvalidInput):
		h.logger.Warn("POST /workers/{id}/availability - Invalid input: worker_id=%s", workerID)
		handlers.RespondBadRequest(w, msgInvalidAction)

	case errors.Is(err, availability.ErrWorkerNotFound):
		h.logger.Warn("POST /workers/{id}/availability - Worker not found: worker_id=%s", workerID)
		handlers.RespondNotFound(w, msgWorkerNotFound)

	default:
		h.logger.Error("POST /workers/{id}/availability - Failed to update: worker_id=%s, error=%v", workerID, err)
		handlers.RespondInternalError(w)
	}
}
