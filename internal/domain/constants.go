package domain

// Daily slot grid: one-hour slots from 09:00 through 21:00 inclusive
const (
	FirstSlotHour = 9
	LastSlotHour  = 21
	SlotsPerDay   = LastSlotHour - FirstSlotHour + 1
)

// Guest field constraints
const (
	MinGuestNameLength  = 2
	GuestPasswordLength = 4
	GuestPhonePrefix    = "010"
	GuestPhoneLength    = 11
)
