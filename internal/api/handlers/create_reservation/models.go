package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-VisitService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CategoryID    int64      `json:"categoryId"`
	VisitDate     types.Date `json:"visitDate"` // "2026-10-20"
	VisitTime     int        `json:"visitTime"` // 9..21
	GuestName     string     `json:"guestName"`
	GuestPhone    string     `json:"guestPhone"`
	GuestPassword string     `json:"guestPassword"`
}

// ReservationResponse HTTP response model (PIN не возвращается)
type ReservationResponse struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	VisitDate  string `json:"visitDate"`
	VisitTime  int    `json:"visitTime"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		CategoryID:    r.CategoryID,
		VisitDate:     r.VisitDate,
		VisitTime:     r.VisitTime,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
		GuestPassword: r.GuestPassword,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		CategoryID: resp.CategoryID,
		VisitDate:  resp.VisitDate.String(),
		VisitTime:  resp.VisitTime,
		GuestName:  resp.GuestName,
		GuestPhone: resp.GuestPhone,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
