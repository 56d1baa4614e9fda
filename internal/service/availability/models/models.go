package models

import (
	"errors"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/types"
)

var (
	// ErrInvalidDate возвращается при неверном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidAction возвращается при неизвестном действии
	ErrInvalidAction = errors.New("invalid action")
)

// Действия над списком заблокированных дат
const (
	ActionAdd     = "add"
	ActionRemove  = "remove"
	ActionReplace = "replace"
)

// Request модели

// UpdateBlockedDatesRequest запрос на изменение заблокированных дат
type UpdateBlockedDatesRequest struct {
	Action string   `json:"action"` // add | remove | replace
	Dates  []string `json:"dates"`
}

// UpdateWorkingHoursRequest запрос на смену рабочих часов
type UpdateWorkingHoursRequest struct {
	Start        string `json:"start"`        // "09:00"
	End          string `json:"end"`          // "18:00"
	SlotDuration int    `json:"slotDuration"` // минуты
}

// ToDomainDates валидирует и конвертирует список дат
// Любая дата вне формата YYYY-MM-DD отклоняет весь запрос
func ToDomainDates(dates []string) ([]types.DateString, error) {
	out := make([]types.DateString, len(dates))
	for i, d := range dates {
		ds := types.DateString(d)
		if err := ds.Validate(); err != nil {
			return nil, ErrInvalidDate
		}
		out[i] = ds
	}
	return out, nil
}

// ToDomainWorkingHours конвертирует запрос в domain модель без валидации
// содержимого, семантическая проверка - через domain.WorkingHours.Valid()
func (r *UpdateWorkingHoursRequest) ToDomainWorkingHours() domain.WorkingHours {
	return domain.WorkingHours{
		Start:        types.TimeString(r.Start),
		End:          types.TimeString(r.End),
		SlotDuration: r.SlotDuration,
	}
}

// Response модели

// WorkingHoursResponse конфигурация рабочих часов в ответе
type WorkingHoursResponse struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	SlotDuration int    `json:"slotDuration"`
}

// AvailabilityResponse ответ с профилем доступности работника
type AvailabilityResponse struct {
	WorkerID     string               `json:"workerId"`
	BlockedDates []string             `json:"blockedDates"`
	WorkingHours WorkingHoursResponse `json:"workingHours"`
}

// BlockedDatesResponse ответ с итоговым списком заблокированных дат
type BlockedDatesResponse struct {
	WorkerID     string   `json:"workerId"`
	BlockedDates []string `json:"blockedDates"`
}

// Методы конвертации

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.AvailabilityProfile) *AvailabilityResponse {
	if p == nil {
		return nil
	}

	return &AvailabilityResponse{
		WorkerID:     p.WorkerID,
		BlockedDates: fromDomainDates(p.BlockedDates),
		WorkingHours: WorkingHoursResponse{
			Start:        p.WorkingHours.Start.String(),
			End:          p.WorkingHours.End.String(),
			SlotDuration: p.WorkingHours.SlotDuration,
		},
	}
}

// FromDomainBlockedDates конвертирует итоговый список дат в DTO
func FromDomainBlockedDates(workerID string, dates []types.DateString) *BlockedDatesResponse {
	return &BlockedDatesResponse{
		WorkerID:     workerID,
		BlockedDates: fromDomainDates(dates),
	}
}

func fromDomainDates(dates []types.DateString) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = string(d)
	}
	return out
}
