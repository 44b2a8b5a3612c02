package get_schedule

import (
	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Request модель запроса расписания на день
type Request struct {
	Date types.Date // Дата (нулевая - сегодня)
}

// Response модель ответа с расписанием по категориям
type Response struct {
	Date      types.Date                // Дата расписания
	PrevDate  types.Date                // Предыдущий день (навигация)
	NextDate  types.Date                // Следующий день (навигация)
	Schedules []domain.CategorySchedule // По одному расписанию на категорию, в порядке категорий
}
