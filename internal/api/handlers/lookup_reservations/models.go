package lookup_reservations

import (
	"time"

	lookupReservations "github.com/m04kA/SMC-VisitService/internal/usecase/lookup_reservations"
)

// LookupRequest HTTP request model
type LookupRequest struct {
	GuestPhone    string `json:"guestPhone"`
	GuestPassword string `json:"guestPassword"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64    `json:"id"`
	Category   Category `json:"category"`
	VisitDate  string   `json:"visitDate"`
	VisitTime  int      `json:"visitTime"`
	GuestName  string   `json:"guestName"`
	GuestPhone string   `json:"guestPhone"`
	CreatedAt  string   `json:"createdAt"`
}

// Category категория бронирования
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LookupRequest) ToUseCaseRequest() *lookupReservations.Request {
	return &lookupReservations.Request{
		GuestPhone:    r.GuestPhone,
		GuestPassword: r.GuestPassword,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *lookupReservations.Response) []ReservationResponse {
	result := make([]ReservationResponse, len(resp.Reservations))
	for i, r := range resp.Reservations {
		result[i] = ReservationResponse{
			ID: r.ID,
			Category: Category{
				ID:   r.Category.ID,
				Name: r.Category.Name,
			},
			VisitDate:  r.VisitDate.String(),
			VisitTime:  r.VisitTime,
			GuestName:  r.GuestName,
			GuestPhone: r.GuestPhone,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}
