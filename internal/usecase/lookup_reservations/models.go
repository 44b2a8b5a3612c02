package lookup_reservations

import (
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Request модель запроса поиска бронирований гостя
type Request struct {
	GuestPhone    string
	GuestPassword string
}

// Reservation найденное бронирование с категорией (без PIN)
type Reservation struct {
	ID         int64
	Category   domain.VisitCategory
	VisitDate  types.Date
	VisitTime  int
	GuestName  string
	GuestPhone string
	CreatedAt  time.Time
}

// Response модель ответа: бронирования по дате (новые первыми), внутри дня по часу
type Response struct {
	Reservations []Reservation
}
