package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Reservation occupies one hourly slot on one day.
// ID and CreatedAt are assigned by the store on insert.
type Reservation struct {
	ID            int64
	CategoryID    int64
	VisitDate     types.Date
	VisitTime     int // hour of day, FirstSlotHour..LastSlotHour
	GuestName     string
	GuestPhone    string
	GuestPassword string // 4 digits, stored as plain text
	CreatedAt     time.Time
}

// SlotGuest returns the guest data shown on an occupied slot
func (r *Reservation) SlotGuest() *SlotGuest {
	return &SlotGuest{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
	}
}

// ReservationWithCategory is a reservation joined with its category
type ReservationWithCategory struct {
	Reservation
	Category VisitCategory
}

// IsValidSlotHour returns true if hour is inside the daily slot grid
func IsValidSlotHour(hour int) bool {
	return hour >= FirstSlotHour && hour <= LastSlotHour
}

// SlotLabel formats an hour as "HH:00"
func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
