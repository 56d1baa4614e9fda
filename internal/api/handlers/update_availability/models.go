package update_availability

import "github.com/sevadoor/booking-service/internal/service/availability/models"

// Действия единого эндпоинта управления доступностью
const (
	ActionAddBlocked      = "addBlocked"
	ActionRemoveBlocked   = "removeBlocked"
	ActionReplaceBlocked  = "replaceBlocked"
	ActionSetWorkingHours = "setWorkingHours"
)

// WorkingHoursPayload конфигурация рабочих часов в запросе
type WorkingHoursPayload struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	SlotDuration int    `json:"slotDuration"`
}

// UpdateAvailabilityRequest HTTP request model единого эндпоинта
type UpdateAvailabilityRequest struct {
	Action       string               `json:"action"`
	Dates        []string             `json:"dates,omitempty"`
	WorkingHours *WorkingHoursPayload `json:"workingHours,omitempty"`
}

// blockedDatesAction транслирует действие единого эндпоинта в действие
// сервиса заблокированных дат; пустая строка - не действие над датами
func blockedDatesAction(action string) string {
	switch action {
	case ActionAddBlocked:
		return models.ActionAdd
	case ActionRemoveBlocked:
		return models.ActionRemove
	case ActionReplaceBlocked:
		return models.ActionReplace
	default:
		return ""
	}
}
