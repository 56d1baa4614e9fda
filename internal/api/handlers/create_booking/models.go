package create_booking

import (
	"encoding/json"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	createBooking "github.com/sevadoor/booking-service/internal/usecase/create_booking"
)

// LocationPayload геоточка из запроса
// Принимает и объект, и JSON-строку с объектом: клиенты с multipart-формами
// исторически передают location сериализованной строкой
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l *LocationPayload) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		data = []byte(raw)
	}

	type plain LocationPayload
	return json.Unmarshal(data, (*plain)(l))
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	WorkerID      string           `json:"workerId"`
	ClientName    string           `json:"clientName"`
	ClientPhone   *string          `json:"clientPhone,omitempty"`
	ClientAddress *string          `json:"clientAddress,omitempty"`
	JobDetails    string           `json:"jobDetails"`
	BookingDate   string           `json:"bookingDate"` // "2025-10-15" или RFC3339
	Time          *string          `json:"time,omitempty"`
	Location      *LocationPayload `json:"location,omitempty"`
	Photos        []string         `json:"photos,omitempty"`
}

// LocationResponse геоточка в ответе
type LocationResponse struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	GoogleMapsURL string  `json:"googleMapsUrl"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64             `json:"id"`
	TrackingID       string            `json:"trackingId"`
	WorkerID         string            `json:"workerId"`
	ClientName       string            `json:"clientName"`
	ClientPhone      *string           `json:"clientPhone,omitempty"`
	ClientAddress    *string           `json:"clientAddress,omitempty"`
	JobDetails       string            `json:"jobDetails"`
	BookingDate      string            `json:"bookingDate"`
	Time             *string           `json:"time,omitempty"`
	Status           string            `json:"status"`
	WorkerName       *string           `json:"workerName,omitempty"`
	WorkerProfession *string           `json:"workerProfession,omitempty"`
	Location         *LocationResponse `json:"location,omitempty"`
	Photos           []string          `json:"photos"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	req := &createBooking.Request{
		WorkerID:      r.WorkerID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientAddress: r.ClientAddress,
		JobDetails:    r.JobDetails,
		BookingDate:   r.BookingDate,
		Time:          r.Time,
		Photos:        r.Photos,
	}

	if r.Location != nil {
		req.Location = &createBooking.LocationInput{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
		}
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:               resp.ID,
		TrackingID:       resp.TrackingID,
		WorkerID:         resp.WorkerID,
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		ClientAddress:    resp.ClientAddress,
		JobDetails:       resp.JobDetails,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		Status:           resp.Status,
		WorkerName:       resp.WorkerName,
		WorkerProfession: resp.WorkerProfession,
		Photos:           resp.Photos,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Time != nil {
		slot := resp.Time.String()
		out.Time = &slot
	}

	if resp.Location != nil {
		out.Location = &LocationResponse{
			Latitude:      resp.Location.Latitude,
			Longitude:     resp.Location.Longitude,
			GoogleMapsURL: resp.Location.GoogleMapsURL,
		}
	}

	if out.Photos == nil {
		out.Photos = []string{}
	}

	return out
}
