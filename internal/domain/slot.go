package domain

// SlotGuest is the guest data attached to an occupied slot
type SlotGuest struct {
	GuestName  string
	GuestPhone string
}

// Slot is one hour of the daily grid. Derived on every request, never stored.
type Slot struct {
	Time        int
	IsReserved  bool
	Reservation *SlotGuest // nil when the slot is free
}

// Label returns the slot start as "HH:00"
func (s *Slot) Label() string {
	return SlotLabel(s.Time)
}

// CategorySchedule pairs a category with its slots ordered by hour ascending
type CategorySchedule struct {
	Category VisitCategory
	Slots    []Slot
}

// FreeSlots returns the number of slots that are not reserved
func (s *CategorySchedule) FreeSlots() int {
	free := 0
	for _, slot := range s.Slots {
		if !slot.IsReserved {
			free++
		}
	}
	return free
}
