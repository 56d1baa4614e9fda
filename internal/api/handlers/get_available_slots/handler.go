package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevadoor/booking-service/internal/api/handlers"
	getSlots "github.com/sevadoor/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgWorkerNotFound = "worker not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/availability/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /workers/{id}/availability/slots - Missing date: worker_id=%s", workerID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		WorkerID: workerID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidDate), errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/availability/slots - Invalid request: worker_id=%s, date=%s", workerID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSlots.ErrWorkerNotFound):
			h.logger.Warn("GET /workers/{id}/availability/slots - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("GET /workers/{id}/availability/slots - Failed to get slots: worker_id=%s, date=%s, error=%v",
				workerID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/availability/slots - Slots retrieved: worker_id=%s, date=%s, free=%d",
		workerID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
