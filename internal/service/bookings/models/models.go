package models

import (
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// LocationResponse географическая точка бронирования
type LocationResponse struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	GoogleMapsURL string  `json:"googleMapsUrl"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"trackingId"`

	WorkerID      string  `json:"workerId"`
	ClientName    string  `json:"clientName"`
	ClientPhone   *string `json:"clientPhone,omitempty"`
	ClientAddress *string `json:"clientAddress,omitempty"`
	JobDetails    string  `json:"jobDetails"`

	BookingDate string  `json:"bookingDate"`    // "2025-10-15"
	Time        *string `json:"time,omitempty"` // "10:00", null для бронирования на весь день

	Status string `json:"status"`

	// Денормализованные данные работника
	WorkerName       *string `json:"workerName,omitempty"`
	WorkerProfession *string `json:"workerProfession,omitempty"`

	Location *LocationResponse `json:"location,omitempty"`
	Photos   []string          `json:"photos"`

	DeletedByWorker   bool `json:"deletedByWorker"`
	DeletedByCustomer bool `json:"deletedByCustomer"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		TrackingID:        b.TrackingID,
		WorkerID:          b.WorkerID,
		ClientName:        b.ClientName,
		ClientPhone:       b.ClientPhone,
		ClientAddress:     b.ClientAddress,
		JobDetails:        b.JobDetails,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		Status:            string(b.Status),
		WorkerName:        b.WorkerName,
		WorkerProfession:  b.WorkerProfession,
		Photos:            b.Photos,
		DeletedByWorker:   b.Deletion.ByWorker,
		DeletedByCustomer: b.Deletion.ByCustomer,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.TimeSlot != nil {
		slot := b.TimeSlot.String()
		resp.Time = &slot
	}

	if b.Location != nil {
		resp.Location = &LocationResponse{
			Latitude:      b.Location.Latitude,
			Longitude:     b.Location.Longitude,
			GoogleMapsURL: b.Location.GoogleMapsURL,
		}
	}

	if resp.Photos == nil {
		resp.Photos = []string{}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
