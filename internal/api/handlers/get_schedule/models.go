package get_schedule

import (
	"github.com/m04kA/SMC-VisitService/internal/domain"
	getSchedule "github.com/m04kA/SMC-VisitService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date      string             `json:"date"`
	PrevDate  string             `json:"prevDate"`
	NextDate  string             `json:"nextDate"`
	Schedules []CategorySchedule `json:"schedules"`
}

// CategorySchedule расписание одной категории
type CategorySchedule struct {
	Category  Category `json:"category"`
	FreeSlots int      `json:"freeSlots"`
	Slots     []Slot   `json:"slots"`
}

// Category модель категории
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Slot часовой слот
type Slot struct {
	Time        int        `json:"time"`
	Label       string     `json:"label"` // "09:00"
	IsReserved  bool       `json:"isReserved"`
	Reservation *SlotGuest `json:"reservation,omitempty"`
}

// SlotGuest гость занятого слота
type SlotGuest struct {
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
}

// ToUseCaseRequest создает запрос use case из query параметра date (пустой - сегодня)
func ToUseCaseRequest(dateStr string) (*getSchedule.Request, error) {
	if dateStr == "" {
		return &getSchedule.Request{}, nil
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getSchedule.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	schedules := make([]CategorySchedule, len(resp.Schedules))
	for i, schedule := range resp.Schedules {
		schedules[i] = fromCategorySchedule(schedule)
	}

	return &ScheduleResponse{
		Date:      resp.Date.String(),
		PrevDate:  resp.PrevDate.String(),
		NextDate:  resp.NextDate.String(),
		Schedules: schedules,
	}
}

func fromCategorySchedule(schedule domain.CategorySchedule) CategorySchedule {
	slots := make([]Slot, len(schedule.Slots))
	for i, slot := range schedule.Slots {
		slots[i] = Slot{
			Time:       slot.Time,
			Label:      slot.Label(),
			IsReserved: slot.IsReserved,
		}
		if slot.Reservation != nil {
			slots[i].Reservation = &SlotGuest{
				GuestName:  slot.Reservation.GuestName,
				GuestPhone: slot.Reservation.GuestPhone,
			}
		}
	}

	return CategorySchedule{
		Category: Category{
			ID:   schedule.Category.ID,
			Name: schedule.Category.Name,
		},
		FreeSlots: schedule.FreeSlots(),
		Slots:     slots,
	}
}
