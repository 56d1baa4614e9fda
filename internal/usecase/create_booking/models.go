package create_booking

import (
	"fmt"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/types"
)

// LocationInput географическая точка из запроса
type LocationInput struct {
	Latitude  float64
	Longitude float64
}

// Request модель запроса на создание бронирования
type Request struct {
	WorkerID      string         // ID работника
	ClientName    string         // Имя клиента
	ClientPhone   *string        // Телефон клиента (опционально)
	ClientAddress *string        // Адрес клиента (опционально)
	JobDetails    string         // Описание работы
	BookingDate   string         // Дата: "2025-10-15" или RFC3339
	Time          *string        // Слот "10:00", nil - бронирование на весь день
	Location      *LocationInput // Геоточка (опционально)
	Photos        []string       // Пути к фотографиям (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64  // ID созданного бронирования
	TrackingID string // Код отслеживания для клиента

	WorkerID      string
	ClientName    string
	ClientPhone   *string
	ClientAddress *string
	JobDetails    string

	BookingDate time.Time         // Дата бронирования
	Time        *types.TimeString // Слот, nil для бронирования на весь день
	Status      string            // Статус бронирования

	// Денормализованные данные работника
	WorkerName       *string
	WorkerProfession *string

	Location *domain.Location
	Photos   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToDomainLocation конвертирует входную геоточку, формируя ссылку на карту
func (l *LocationInput) ToDomainLocation() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		GoogleMapsURL: fmt.Sprintf("https://www.google.com/maps?q=%f,%f", l.Latitude, l.Longitude),
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		TrackingID:       b.TrackingID,
		WorkerID:         b.WorkerID,
		ClientName:       b.ClientName,
		ClientPhone:      b.ClientPhone,
		ClientAddress:    b.ClientAddress,
		JobDetails:       b.JobDetails,
		BookingDate:      b.BookingDate,
		Time:             b.TimeSlot,
		Status:           string(b.Status),
		WorkerName:       b.WorkerName,
		WorkerProfession: b.WorkerProfession,
		Location:         b.Location,
		Photos:           b.Photos,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
