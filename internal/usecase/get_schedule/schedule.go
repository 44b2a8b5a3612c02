package get_schedule

import "github.com/m04kA/SMC-VisitService/internal/domain"

// buildSchedules строит сетку из 13 часовых слотов (9..21) для каждой категории.
//
// Слот занят, если на этот час есть ЛЮБОЕ бронирование за день, независимо от
// категории: один час одного дня занимается глобально. К занятому слоту
// прикрепляются имя и телефон гостя первого найденного бронирования.
//
// Чистая функция: результат зависит только от входных данных.
func buildSchedules(categories []domain.VisitCategory, reservations []*domain.Reservation) []domain.CategorySchedule {
	byHour := indexByHour(reservations)
	schedules := make([]domain.CategorySchedule, 0, len(categories))

	for _, category := range categories {
		slots := make([]domain.Slot, 0, domain.SlotsPerDay)

		for hour := domain.FirstSlotHour; hour <= domain.LastSlotHour; hour++ {
			slot := domain.Slot{Time: hour}

			if r, ok := byHour[hour]; ok {
				slot.IsReserved = true
				slot.Reservation = r.SlotGuest()
			}

			slots = append(slots, slot)
		}

		schedules = append(schedules, domain.CategorySchedule{
			Category: category,
			Slots:    slots,
		})
	}

	return schedules
}

// indexByHour раскладывает бронирования по часам сетки.
// На час остается первое бронирование, часы вне сетки отбрасываются.
func indexByHour(reservations []*domain.Reservation) map[int]*domain.Reservation {
	byHour := make(map[int]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		if !domain.IsValidSlotHour(r.VisitTime) {
			continue
		}
		if _, taken := byHour[r.VisitTime]; !taken {
			byHour[r.VisitTime] = r
		}
	}
	return byHour
}
