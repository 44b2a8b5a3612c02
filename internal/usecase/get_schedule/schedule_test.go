package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

var (
	testDate       = types.NewDate(2026, time.October, 20)
	testCategories = []domain.VisitCategory{
		{ID: 1, Name: "대심방"},
		{ID: 2, Name: "일반심방"},
		{ID: 3, Name: "병원심방"},
	}
)

func reservationAt(id, categoryID int64, hour int, name string) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		CategoryID: categoryID,
		VisitDate:  testDate,
		VisitTime:  hour,
		GuestName:  name,
		GuestPhone: "0101234567" + string(rune('0'+id%10)),
	}
}

func TestBuildSchedules_GridShape(t *testing.T) {
	schedules := buildSchedules(testCategories, nil)

	require.Len(t, schedules, len(testCategories))
	for i, schedule := range schedules {
		assert.Equal(t, testCategories[i], schedule.Category)
		require.Len(t, schedule.Slots, 13)
		for j, slot := range schedule.Slots {
			assert.Equal(t, 9+j, slot.Time)
			assert.False(t, slot.IsReserved)
			assert.Nil(t, slot.Reservation)
		}
		assert.Equal(t, 13, schedule.FreeSlots())
	}
}

func TestBuildSchedules_NoCategories(t *testing.T) {
	schedules := buildSchedules(nil, []*domain.Reservation{reservationAt(1, 1, 9, "홍길동")})

	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}

func TestBuildSchedules_ReservationBlocksHourForAllCategories(t *testing.T) {
	reservations := []*domain.Reservation{
		reservationAt(1, 2, 10, "홍길동"),
		reservationAt(2, 3, 21, "김철수"),
	}

	schedules := buildSchedules(testCategories, reservations)

	for _, schedule := range schedules {
		for _, slot := range schedule.Slots {
			switch slot.Time {
			case 10:
				assert.True(t, slot.IsReserved, "category %d hour 10", schedule.Category.ID)
				require.NotNil(t, slot.Reservation)
				assert.Equal(t, "홍길동", slot.Reservation.GuestName)
				assert.Equal(t, reservations[0].GuestPhone, slot.Reservation.GuestPhone)
			case 21:
				assert.True(t, slot.IsReserved)
				assert.Equal(t, "김철수", slot.Reservation.GuestName)
			default:
				assert.False(t, slot.IsReserved)
				assert.Nil(t, slot.Reservation)
			}
		}
		assert.Equal(t, 11, schedule.FreeSlots())
	}
}

func TestBuildSchedules_ReservedIffSomeReservationAtHour(t *testing.T) {
	reservations := []*domain.Reservation{
		reservationAt(1, 1, 9, "a"),
		reservationAt(2, 1, 12, "b"),
		reservationAt(3, 2, 15, "c"),
		reservationAt(4, 3, 20, "d"),
	}
	occupied := map[int]bool{9: true, 12: true, 15: true, 20: true}

	for _, schedule := range buildSchedules(testCategories, reservations) {
		for _, slot := range schedule.Slots {
			assert.Equal(t, occupied[slot.Time], slot.IsReserved, "hour %d", slot.Time)
		}
	}
}

func TestBuildSchedules_IgnoresOutOfGridHours(t *testing.T) {
	reservations := []*domain.Reservation{reservationAt(1, 1, 8, "early"), reservationAt(2, 1, 22, "late")}

	schedules := buildSchedules(testCategories[:1], reservations)

	assert.Equal(t, 13, schedules[0].FreeSlots())
}

func TestBuildSchedules_FirstReservationWins(t *testing.T) {
	reservations := []*domain.Reservation{
		reservationAt(1, 1, 11, "first"),
		reservationAt(2, 2, 11, "second"),
	}

	schedules := buildSchedules(testCategories[:1], reservations)

	assert.Equal(t, "first", schedules[0].Slots[2].Reservation.GuestName)
}

func TestBuildSchedules_Deterministic(t *testing.T) {
	reservations := []*domain.Reservation{reservationAt(1, 1, 13, "홍길동"), reservationAt(2, 2, 17, "김철수")}

	first := buildSchedules(testCategories, reservations)
	second := buildSchedules(testCategories, reservations)

	assert.Equal(t, first, second)
}

func TestIndexByHour(t *testing.T) {
	reservations := []*domain.Reservation{
		reservationAt(1, 1, 8, "early"),
		reservationAt(2, 1, 11, "first"),
		reservationAt(3, 2, 11, "second"),
		reservationAt(4, 3, 22, "late"),
	}

	byHour := indexByHour(reservations)

	require.Len(t, byHour, 1)
	assert.Equal(t, int64(2), byHour[11].ID)
}
